package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeLogService handles business logic for time tracking
type TimeLogService struct {
	timeLogRepo repository.TimeLogRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	activity    ActivityRecorder
	validator   *validator.Validate
}

// NewTimeLogService creates a new time log service
func NewTimeLogService(
	timeLogRepo repository.TimeLogRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	activity ActivityRecorder,
	validator *validator.Validate,
) *TimeLogService {
	return &TimeLogService{
		timeLogRepo: timeLogRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		activity:    activity,
		validator:   validator,
	}
}

// CreateTimeLogRequest represents the request to log time on a task
type CreateTimeLogRequest struct {
	Minutes  int        `json:"minutes" validate:"required,min=1,max=1440" example:"90"`
	Note     string     `json:"note" validate:"max=500"`
	LoggedAt *time.Time `json:"logged_at,omitempty"`
}

// TimeLogListResponse holds a task's time logs and their total
type TimeLogListResponse struct {
	TimeLogs     []models.TimeLog `json:"time_logs"`
	TotalMinutes int64            `json:"total_minutes"`
}

// Log records time spent on a task by the actor
func (s *TimeLogService) Log(ctx context.Context, actor Actor, taskID uuid.UUID, req *CreateTimeLogRequest) (*models.TimeLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	task, err := taskForMember(ctx, s.taskRepo, s.projectRepo, taskID, actor.ID)
	if err != nil {
		return nil, err
	}

	loggedAt := time.Now().UTC()
	if req.LoggedAt != nil {
		loggedAt = req.LoggedAt.UTC()
	}

	entry := &models.TimeLog{
		TaskID:   task.ID,
		UserID:   actor.ID,
		Minutes:  req.Minutes,
		Note:     req.Note,
		LoggedAt: loggedAt,
	}
	if err := s.timeLogRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time log: %w", err)
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "time.logged",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"minutes": fmt.Sprint(req.Minutes)},
	})

	return entry, nil
}

// ListByTask lists a task's time logs with the total minutes
func (s *TimeLogService) ListByTask(ctx context.Context, actor Actor, taskID uuid.UUID) (*TimeLogListResponse, error) {
	if _, err := taskForMember(ctx, s.taskRepo, s.projectRepo, taskID, actor.ID); err != nil {
		return nil, err
	}

	logs, err := s.timeLogRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	var total int64
	for _, l := range logs {
		total += int64(l.Minutes)
	}
	return &TimeLogListResponse{TimeLogs: logs, TotalMinutes: total}, nil
}

// Delete removes a time log; author only
func (s *TimeLogService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	entry, err := s.timeLogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTimeLogNotFound
		}
		return fmt.Errorf("failed to get time log: %w", err)
	}
	if entry.UserID != actor.ID {
		return apperrors.ErrNotResourceAuthor
	}
	if err := s.timeLogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time log: %w", err)
	}
	return nil
}
