package repository

import (
	"context"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLogRepository stores activity entries in postgres
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new postgres activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create appends an entry
func (r *ActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return dbFrom(ctx, r.db).Create(entry).Error
}

// ListByProject lists a project's newest entries
func (r *ActivityLogRepository) ListByProject(ctx context.Context, projectID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := dbFrom(ctx, r.db).Where("project_id = ?", projectID).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// ListByActor lists an actor's newest entries
func (r *ActivityLogRepository) ListByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := dbFrom(ctx, r.db).Where("actor_id = ?", actorID).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
