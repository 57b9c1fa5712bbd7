package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to one user
type Notification struct {
	BaseModel
	UserID  uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	Type    NotificationType  `json:"type" gorm:"type:varchar(50);not null"`
	Message string            `json:"message" gorm:"type:text;not null"`
	Data    map[string]string `json:"data" gorm:"type:jsonb;serializer:json"`
	Read    bool              `json:"read" gorm:"not null;default:false;index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// ActivityLog is an append-only audit entry
type ActivityLog struct {
	ID         uuid.UUID         `json:"id" gorm:"type:uuid;primary_key"`
	ActorID    uuid.UUID         `json:"actor_id" gorm:"type:uuid;not null;index"`
	Action     string            `json:"action" gorm:"not null;size:100"`
	EntityType string            `json:"entity_type" gorm:"not null;size:50"`
	EntityID   uuid.UUID         `json:"entity_id" gorm:"type:uuid;not null"`
	ProjectID  *uuid.UUID        `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Details    map[string]string `json:"details,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time         `json:"created_at" gorm:"index"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// All lists every model managed by AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&Project{},
		&ProjectMember{},
		&Team{},
		&TeamMembership{},
		&JoinRequest{},
		&LeaveRequest{},
		&Invitation{},
		&Task{},
		&Comment{},
		&TimeLog{},
		&Attachment{},
		&Notification{},
		&ActivityLog{},
	}
}
