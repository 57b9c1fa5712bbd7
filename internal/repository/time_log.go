package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeLogRepository handles database operations for time logs
type TimeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new time log repository
func NewTimeLogRepository(db *gorm.DB) *TimeLogRepository {
	return &TimeLogRepository{db: db}
}

// Create creates a new time log
func (r *TimeLogRepository) Create(ctx context.Context, log *models.TimeLog) error {
	return dbFrom(ctx, r.db).Create(log).Error
}

// GetByID retrieves a time log by ID
func (r *TimeLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TimeLog, error) {
	var log models.TimeLog
	err := dbFrom(ctx, r.db).First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ListByTask lists a task's time logs, most recent first
func (r *TimeLogRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]models.TimeLog, error) {
	var logs []models.TimeLog
	err := dbFrom(ctx, r.db).Where("task_id = ?", taskID).Order("logged_at DESC").Find(&logs).Error
	return logs, err
}

// TotalMinutesByTasks sums logged minutes per task; tasks without logs are absent from the map
func (r *TimeLogRepository) TotalMinutesByTasks(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	totals := make(map[uuid.UUID]int64, len(taskIDs))
	if len(taskIDs) == 0 {
		return totals, nil
	}

	var rows []struct {
		TaskID uuid.UUID
		Total  int64
	}
	err := dbFrom(ctx, r.db).Model(&models.TimeLog{}).
		Select("task_id, SUM(minutes) AS total").
		Where("task_id IN ?", taskIDs).
		Group("task_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		totals[row.TaskID] = row.Total
	}
	return totals, nil
}

// Delete deletes a time log
func (r *TimeLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&models.TimeLog{}, "id = ?", id).Error
}

// DeleteByTasks deletes all time logs of the given tasks
func (r *TimeLogRepository) DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Where("task_id IN ?", taskIDs).Delete(&models.TimeLog{}).Error
}
