package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work in a project; a non-nil ParentID makes it a subtask
type Task struct {
	BaseModel
	ProjectID      uuid.UUID    `json:"project_id" gorm:"type:uuid;not null;index"`
	ParentID       *uuid.UUID   `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Title          string       `json:"title" gorm:"not null;size:200"`
	Description    string       `json:"description" gorm:"type:text"`
	Status         TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'todo';index"`
	Priority       TaskPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	AssigneeID     *uuid.UUID   `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID    `json:"created_by" gorm:"type:uuid;not null"`
	DueDate        *time.Time   `json:"due_date,omitempty"`
	EstimatedHours float64      `json:"estimated_hours" gorm:"default:0"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsSubtask reports whether the task hangs below another task
func (t *Task) IsSubtask() bool {
	return t.ParentID != nil
}

// Comment is a note left on a task
type Comment struct {
	BaseModel
	TaskID   uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	Body     string    `json:"body" gorm:"type:text;not null"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// TimeLog records minutes spent on a task
type TimeLog struct {
	BaseModel
	TaskID   uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Minutes  int       `json:"minutes" gorm:"not null"`
	Note     string    `json:"note" gorm:"size:500"`
	LoggedAt time.Time `json:"logged_at" gorm:"not null"`
}

// TableName returns the table name for TimeLog
func (TimeLog) TableName() string {
	return "time_logs"
}

// Attachment is the metadata row for a file kept in object storage
type Attachment struct {
	BaseModel
	TaskID      uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	UploadedBy  uuid.UUID `json:"uploaded_by" gorm:"type:uuid;not null"`
	FileName    string    `json:"file_name" gorm:"not null;size:255"`
	ObjectName  string    `json:"object_name" gorm:"not null;size:512;uniqueIndex"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	Size        int64     `json:"size"`
}

// TableName returns the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
