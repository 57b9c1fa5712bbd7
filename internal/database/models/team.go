package models

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users; its creator is the sole approver of join and leave requests
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100"`
	Description string     `json:"description" gorm:"size:500"`
	CreatedBy   uuid.UUID  `json:"created_by" gorm:"type:uuid;not null;index"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMembership is one row of the membership ledger
type TeamMembership struct {
	BaseModel
	TeamID uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_user"`
	UserID uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_user;index"`
	Role   MembershipRole   `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Status MembershipStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}

// TeamMemberWithUser is a membership row joined with the member's identity
type TeamMemberWithUser struct {
	TeamID    uuid.UUID        `json:"team_id"`
	UserID    uuid.UUID        `json:"user_id"`
	UserName  string           `json:"user_name"`
	UserEmail string           `json:"user_email"`
	Role      MembershipRole   `json:"role"`
	Status    MembershipStatus `json:"status"`
	JoinedAt  time.Time        `json:"joined_at"`
}

// TeamWithMemberCount is a team annotated with its active member count
type TeamWithMemberCount struct {
	Team
	MemberCount int64 `json:"member_count"`
}
