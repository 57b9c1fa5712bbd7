package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for task comments
type CommentService struct {
	txm         repository.TransactionManagerInterface
	commentRepo repository.CommentRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	notifier    Notifier
	activity    ActivityRecorder
	validator   *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(
	txm repository.TransactionManagerInterface,
	commentRepo repository.CommentRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	notifier Notifier,
	activity ActivityRecorder,
	validator *validator.Validate,
) *CommentService {
	return &CommentService{
		txm:         txm,
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		notifier:    notifier,
		activity:    activity,
		validator:   validator,
	}
}

// CreateCommentRequest represents the request to comment on a task
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000" example:"Looks good to me"`
}

// Add comments on a task and notifies its assignee
func (s *CommentService) Add(ctx context.Context, actor Actor, taskID uuid.UUID, req *CreateCommentRequest) (*models.Comment, error) {
	req.Body = strings.TrimSpace(req.Body)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	task, err := taskForMember(ctx, s.taskRepo, s.projectRepo, taskID, actor.ID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TaskID:   task.ID,
		AuthorID: actor.ID,
		Body:     req.Body,
	}

	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.commentRepo.Create(ctx, comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		if task.AssigneeID == nil || *task.AssigneeID == actor.ID {
			return nil
		}
		return s.notifier.Notify(ctx, *task.AssigneeID, models.NotificationCommentAdded,
			fmt.Sprintf("%s commented on %q", actor.Name, task.Title),
			map[string]string{
				"task_id":    task.ID.String(),
				"comment_id": comment.ID.String(),
			})
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "comment.added",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"comment_id": comment.ID.String()},
	})

	return comment, nil
}

// List lists a task's comments
func (s *CommentService) List(ctx context.Context, actor Actor, taskID uuid.UUID) ([]models.Comment, error) {
	if _, err := taskForMember(ctx, s.taskRepo, s.projectRepo, taskID, actor.ID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment; author only
func (s *CommentService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.AuthorID != actor.ID {
		return apperrors.ErrNotResourceAuthor
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
