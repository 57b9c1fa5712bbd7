package models

import (
	"time"

	"github.com/google/uuid"
)

// JoinRequest is a user's request to become a member of a team.
// At most one pending request exists per (team, user); the partial unique index enforces it.
type JoinRequest struct {
	BaseModel
	TeamID     uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_join_requests_pending,where:status = 'pending'"`
	UserID     uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_join_requests_pending;index"`
	Status     RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ResolvedBy *uuid.UUID    `json:"resolved_by,omitempty" gorm:"type:uuid"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// TableName returns the table name for JoinRequest
func (JoinRequest) TableName() string {
	return "join_requests"
}

// LeaveRequest is a member's request to leave a team
type LeaveRequest struct {
	BaseModel
	TeamID     uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_leave_requests_pending,where:status = 'pending'"`
	UserID     uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_leave_requests_pending;index"`
	Reason     string        `json:"reason" gorm:"not null;size:1000"`
	Status     RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ResolvedBy *uuid.UUID    `json:"resolved_by,omitempty" gorm:"type:uuid"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// TableName returns the table name for LeaveRequest
func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Invitation is a team-scoped invite addressed to one user
type Invitation struct {
	BaseModel
	WorkspaceID uuid.UUID      `json:"workspace_id" gorm:"type:uuid;not null;uniqueIndex:idx_invitations_pending,where:status = 'pending'"`
	InvitedBy   uuid.UUID      `json:"invited_by" gorm:"type:uuid;not null"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_invitations_pending;index"`
	Email       string         `json:"email" gorm:"not null;size:255"`
	Role        InvitationRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Status      RequestStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	RespondedAt *time.Time     `json:"responded_at,omitempty"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// RequestWithUser is a join or leave request joined with the requester's identity
type RequestWithUser struct {
	ID        uuid.UUID     `json:"id"`
	TeamID    uuid.UUID     `json:"team_id"`
	UserID    uuid.UUID     `json:"user_id"`
	UserName  string        `json:"user_name"`
	UserEmail string        `json:"user_email"`
	Reason    string        `json:"reason,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
