package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentRepository handles database operations for attachment metadata
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create creates a new attachment row
func (r *AttachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	return dbFrom(ctx, r.db).Create(attachment).Error
}

// GetByID retrieves an attachment by ID
func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := dbFrom(ctx, r.db).First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// ListByTask lists a task's attachments
func (r *AttachmentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := dbFrom(ctx, r.db).Where("task_id = ?", taskID).Order("created_at ASC").Find(&attachments).Error
	return attachments, err
}

// ListByTasks lists the attachments of several tasks
func (r *AttachmentRepository) ListByTasks(ctx context.Context, taskIDs []uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if len(taskIDs) == 0 {
		return attachments, nil
	}
	err := dbFrom(ctx, r.db).Where("task_id IN ?", taskIDs).Find(&attachments).Error
	return attachments, err
}

// Delete deletes an attachment row
func (r *AttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&models.Attachment{}, "id = ?", id).Error
}

// DeleteByTasks deletes the attachment rows of the given tasks
func (r *AttachmentRepository) DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Where("task_id IN ?", taskIDs).Delete(&models.Attachment{}).Error
}
