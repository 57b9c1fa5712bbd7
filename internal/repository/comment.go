package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for task comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return dbFrom(ctx, r.db).Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := dbFrom(ctx, r.db).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByTask lists a task's comments oldest first
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := dbFrom(ctx, r.db).Where("task_id = ?", taskID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// Delete deletes a comment
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&models.Comment{}, "id = ?", id).Error
}

// DeleteByTasks deletes all comments of the given tasks
func (r *CommentRepository) DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error
}
