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

// TaskService handles business logic for tasks and subtasks
type TaskService struct {
	txm            repository.TransactionManagerInterface
	taskRepo       repository.TaskRepositoryInterface
	projectRepo    repository.ProjectRepositoryInterface
	commentRepo    repository.CommentRepositoryInterface
	timeLogRepo    repository.TimeLogRepositoryInterface
	attachmentRepo repository.AttachmentRepositoryInterface
	storage        ObjectStorage
	notifier       Notifier
	activity       ActivityRecorder
	validator      *validator.Validate
}

// TaskRepositories bundles the repositories a TaskService needs
type TaskRepositories struct {
	Tasks       repository.TaskRepositoryInterface
	Projects    repository.ProjectRepositoryInterface
	Comments    repository.CommentRepositoryInterface
	TimeLogs    repository.TimeLogRepositoryInterface
	Attachments repository.AttachmentRepositoryInterface
}

// NewTaskService creates a new task service
func NewTaskService(txm repository.TransactionManagerInterface, repos TaskRepositories, storage ObjectStorage, notifier Notifier, activity ActivityRecorder, validator *validator.Validate) *TaskService {
	return &TaskService{
		txm:            txm,
		taskRepo:       repos.Tasks,
		projectRepo:    repos.Projects,
		commentRepo:    repos.Comments,
		timeLogRepo:    repos.TimeLogs,
		attachmentRepo: repos.Attachments,
		storage:        storage,
		notifier:       notifier,
		activity:       activity,
		validator:      validator,
	}
}

// CreateTaskRequest represents the request to create a task or subtask
type CreateTaskRequest struct {
	Title          string              `json:"title" validate:"required,min=1,max=200" example:"Draft landing page"`
	Description    string              `json:"description"`
	ParentID       *uuid.UUID          `json:"parent_id,omitempty"`
	Status         models.TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress review done"`
	Priority       models.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID     *uuid.UUID          `json:"assignee_id,omitempty"`
	DueDate        *time.Time          `json:"due_date,omitempty"`
	EstimatedHours float64             `json:"estimated_hours" validate:"gte=0"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title          *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string              `json:"description,omitempty"`
	Status         *models.TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress review done"`
	Priority       *models.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID     *uuid.UUID           `json:"assignee_id,omitempty"`
	DueDate        *time.Time           `json:"due_date,omitempty"`
	EstimatedHours *float64             `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
}

// Create adds a task to a project. A parent must be a top-level task of the same project.
func (s *TaskService) Create(ctx context.Context, actor Actor, projectID uuid.UUID, req *CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := getProject(ctx, s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, projectID, actor.ID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.getTask(ctx, *req.ParentID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.ErrInvalidParentTask
			}
			return nil, err
		}
		if parent.ProjectID != projectID || parent.IsSubtask() {
			return nil, apperrors.ErrInvalidParentTask
		}
	}

	if req.AssigneeID != nil {
		if err := s.requireAssignee(ctx, projectID, *req.AssigneeID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		ProjectID:      projectID,
		ParentID:       req.ParentID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		AssigneeID:     req.AssigneeID,
		CreatedBy:      actor.ID,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}

	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return s.notifyAssignee(ctx, actor, task)
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "task.created",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"title": task.Title},
	})

	return task, nil
}

// GetByID retrieves a task; project members only
func (s *TaskService) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*models.Task, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, task.ProjectID, actor.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// ListByProject lists a project's top-level tasks, optionally filtered
func (s *TaskService) ListByProject(ctx context.Context, actor Actor, projectID uuid.UUID, status models.TaskStatus, assigneeID *uuid.UUID) ([]models.Task, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of: todo, in_progress, review, done")
	}
	if _, err := getProject(ctx, s.projectRepo, projectID); err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, projectID, actor.ID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID, repository.TaskFilter{Status: status, AssigneeID: assigneeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListSubtasks lists the subtasks of a task
func (s *TaskService) ListSubtasks(ctx context.Context, actor Actor, taskID uuid.UUID) ([]models.Task, error) {
	if _, err := s.GetByID(ctx, actor, taskID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListSubtasks(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update; a new assignee is notified
func (s *TaskService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	task, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	reassigned := false
	if req.AssigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *req.AssigneeID) {
		if err := s.requireAssignee(ctx, task.ProjectID, *req.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = req.AssigneeID
		reassigned = true
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = *req.EstimatedHours
	}

	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Update(ctx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if reassigned {
			return s.notifyAssignee(ctx, actor, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "task.updated",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"status": string(task.Status)},
	})

	return task, nil
}

// Delete removes a task, its subtasks and everything attached to them.
// Allowed for the task creator and the project owner.
func (s *TaskService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return err
	}
	project, err := getProject(ctx, s.projectRepo, task.ProjectID)
	if err != nil {
		return err
	}
	if task.CreatedBy != actor.ID && project.OwnerID != actor.ID {
		return apperrors.ErrNotResourceAuthor
	}

	var attachments []models.Attachment
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		ids, err := s.taskRepo.TreeIDs(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list subtasks: %w", err)
		}
		if attachments, err = s.attachmentRepo.ListByTasks(ctx, ids); err != nil {
			return fmt.Errorf("failed to list attachments: %w", err)
		}
		if err := deleteTaskChildren(ctx, ids, s.commentRepo, s.timeLogRepo, s.attachmentRepo); err != nil {
			return err
		}
		if err := s.taskRepo.DeleteByIDs(ctx, ids); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	removeObjects(ctx, s.storage, attachments)

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "task.deleted",
		EntityType: "task",
		EntityID:   task.ID,
		ProjectID:  &task.ProjectID,
		Details:    map[string]string{"title": task.Title},
	})
	return nil
}

func (s *TaskService) requireAssignee(ctx context.Context, projectID, assigneeID uuid.UUID) error {
	member, err := s.projectRepo.IsMember(ctx, projectID, assigneeID)
	if err != nil {
		return fmt.Errorf("failed to check assignee: %w", err)
	}
	if !member {
		return apperrors.NewValidationError("assignee_id", "assignee must be a member of the project")
	}
	return nil
}

func (s *TaskService) notifyAssignee(ctx context.Context, actor Actor, task *models.Task) error {
	if task.AssigneeID == nil || *task.AssigneeID == actor.ID {
		return nil
	}
	return s.notifier.Notify(ctx, *task.AssigneeID, models.NotificationTaskAssigned,
		fmt.Sprintf("%s assigned you the task %q", actor.Name, task.Title),
		map[string]string{
			"task_id":    task.ID.String(),
			"project_id": task.ProjectID.String(),
		})
}

func (s *TaskService) getTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return getTask(ctx, s.taskRepo, id)
}

func getTask(ctx context.Context, repo repository.TaskRepositoryInterface, id uuid.UUID) (*models.Task, error) {
	task, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// taskForMember loads a task and checks the actor belongs to its project
func taskForMember(ctx context.Context, tasks repository.TaskRepositoryInterface, projects repository.ProjectRepositoryInterface, taskID, userID uuid.UUID) (*models.Task, error) {
	task, err := getTask(ctx, tasks, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, projects, task.ProjectID, userID); err != nil {
		return nil, err
	}
	return task, nil
}
