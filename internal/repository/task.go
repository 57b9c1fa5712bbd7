package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return dbFrom(ctx, r.db).Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := dbFrom(ctx, r.db).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject lists the project's top-level tasks matching filter
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID, filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task
	query := dbFrom(ctx, r.db).Where("project_id = ? AND parent_id IS NULL", projectID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	err := query.Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

// ListAllByProject lists every task of the project including subtasks
func (r *TaskRepository) ListAllByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := dbFrom(ctx, r.db).Where("project_id = ?", projectID).Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

// ListSubtasks lists direct subtasks of parentID
func (r *TaskRepository) ListSubtasks(ctx context.Context, parentID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := dbFrom(ctx, r.db).Where("parent_id = ?", parentID).Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

// CountByStatus counts the project's tasks grouped by status
func (r *TaskRepository) CountByStatus(ctx context.Context, projectID uuid.UUID) (map[models.TaskStatus]int64, error) {
	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := dbFrom(ctx, r.db).Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskStatus]int64, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Update saves all task fields
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	return dbFrom(ctx, r.db).Save(task).Error
}

// TreeIDs returns id followed by the ids of its subtasks
func (r *TaskRepository) TreeIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	var children []uuid.UUID
	err := dbFrom(ctx, r.db).Model(&models.Task{}).Where("parent_id = ?", id).Pluck("id", &children).Error
	if err != nil {
		return nil, err
	}
	return append([]uuid.UUID{id}, children...), nil
}

// IDsByProject returns the ids of every task in the project
func (r *TaskRepository) IDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := dbFrom(ctx, r.db).Model(&models.Task{}).Where("project_id = ?", projectID).Pluck("id", &ids).Error
	return ids, err
}

// DeleteByIDs deletes the given tasks
func (r *TaskRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Where("id IN ?", ids).Delete(&models.Task{}).Error
}
