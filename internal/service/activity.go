package service

import (
	"context"
	"fmt"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/logger"
	"trackflow-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityService writes and reads the activity log
type ActivityService struct {
	repo        repository.ActivityLogRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
}

// NewActivityService creates a new activity service over either activity store
func NewActivityService(repo repository.ActivityLogRepositoryInterface, projectRepo repository.ProjectRepositoryInterface) *ActivityService {
	return &ActivityService{repo: repo, projectRepo: projectRepo}
}

// Record appends entry; a failure is logged and dropped
func (s *ActivityService) Record(ctx context.Context, entry *models.ActivityLog) {
	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"action":      entry.Action,
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID.String(),
		}).Warn("failed to record activity")
	}
}

// ListByProject lists a project's recent activity; project members only
func (s *ActivityService) ListByProject(ctx context.Context, actor Actor, projectID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	if err := requireProjectMember(ctx, s.projectRepo, projectID, actor.ID); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListByProject(ctx, projectID, clampActivityLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

// ListMine lists the actor's recent activity
func (s *ActivityService) ListMine(ctx context.Context, actor Actor, limit int) ([]models.ActivityLog, error) {
	entries, err := s.repo.ListByActor(ctx, actor.ID, clampActivityLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

func clampActivityLimit(limit int) int {
	if limit < 1 {
		return defaultActivityLimit
	}
	if limit > maxActivityLimit {
		return maxActivityLimit
	}
	return limit
}
