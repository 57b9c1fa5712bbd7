package models

import (
	"time"

	"github.com/google/uuid"
)

// Project groups tasks; its owner manages membership and settings
type Project struct {
	BaseModel
	Name        string        `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string        `json:"description" gorm:"type:text"`
	OwnerID     uuid.UUID     `json:"owner_id" gorm:"type:uuid;not null;index"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(50);default:'active'"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectMember is one element of a project's member set
type ProjectMember struct {
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;index"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}

// ProjectMemberWithUser is a project member joined with their identity
type ProjectMemberWithUser struct {
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	AddedAt   time.Time `json:"added_at"`
}
