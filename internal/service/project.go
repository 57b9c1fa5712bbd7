package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/logger"
	"trackflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	txm            repository.TransactionManagerInterface
	projectRepo    repository.ProjectRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	taskRepo       repository.TaskRepositoryInterface
	commentRepo    repository.CommentRepositoryInterface
	timeLogRepo    repository.TimeLogRepositoryInterface
	attachmentRepo repository.AttachmentRepositoryInterface
	storage        ObjectStorage
	activity       ActivityRecorder
	validator      *validator.Validate
}

// ProjectRepositories bundles the repositories a ProjectService needs
type ProjectRepositories struct {
	Projects    repository.ProjectRepositoryInterface
	Teams       repository.TeamRepositoryInterface
	Users       repository.UserRepositoryInterface
	Tasks       repository.TaskRepositoryInterface
	Comments    repository.CommentRepositoryInterface
	TimeLogs    repository.TimeLogRepositoryInterface
	Attachments repository.AttachmentRepositoryInterface
}

// NewProjectService creates a new project service. storage may be nil when
// attachments are disabled.
func NewProjectService(txm repository.TransactionManagerInterface, repos ProjectRepositories, storage ObjectStorage, activity ActivityRecorder, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		txm:            txm,
		projectRepo:    repos.Projects,
		teamRepo:       repos.Teams,
		userRepo:       repos.Users,
		taskRepo:       repos.Tasks,
		commentRepo:    repos.Comments,
		timeLogRepo:    repos.TimeLogs,
		attachmentRepo: repos.Attachments,
		storage:        storage,
		activity:       activity,
		validator:      validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200" example:"Website relaunch"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name        *string               `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string               `json:"description,omitempty"`
	Status      *models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=active on_hold completed archived"`
	StartDate   *time.Time            `json:"start_date,omitempty"`
	DueDate     *time.Time            `json:"due_date,omitempty"`
}

// AddProjectMemberRequest is the body of a project member addition
type AddProjectMemberRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// Create creates a project owned by the actor, who becomes its first member
func (s *ProjectService) Create(ctx context.Context, actor Actor, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.StartDate != nil && req.DueDate != nil && req.DueDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("due_date", "must not be before start_date")
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor.ID,
		Status:      models.ProjectStatusActive,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
	}

	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		if err := s.projectRepo.AddMember(ctx, project.ID, actor.ID); err != nil {
			return fmt.Errorf("failed to add project owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "project.created",
		EntityType: "project",
		EntityID:   project.ID,
		ProjectID:  &project.ID,
		Details:    map[string]string{"name": project.Name},
	})

	return project, nil
}

// GetByID retrieves a project; project members only
func (s *ProjectService) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*models.Project, error) {
	project, err := getProject(ctx, s.projectRepo, id)
	if err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, id, actor.ID); err != nil {
		return nil, err
	}
	return project, nil
}

// ListMine lists the projects the actor belongs to
func (s *ProjectService) ListMine(ctx context.Context, actor Actor) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByMember(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Update applies a partial update; owner only
func (s *ProjectService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	project, err := s.ownedProject(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		project.DueDate = req.DueDate
	}
	if project.StartDate != nil && project.DueDate != nil && project.DueDate.Before(*project.StartDate) {
		return nil, apperrors.NewValidationError("due_date", "must not be before start_date")
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "project.updated",
		EntityType: "project",
		EntityID:   project.ID,
		ProjectID:  &project.ID,
	})

	return project, nil
}

// Delete removes a project with its tasks, comments, time logs, attachments
// and members, and unlinks its teams; owner only
func (s *ProjectService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	project, err := s.ownedProject(ctx, actor, id)
	if err != nil {
		return err
	}

	var attachments []models.Attachment
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		taskIDs, err := s.taskRepo.IDsByProject(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list project tasks: %w", err)
		}
		if attachments, err = s.attachmentRepo.ListByTasks(ctx, taskIDs); err != nil {
			return fmt.Errorf("failed to list attachments: %w", err)
		}
		if err := deleteTaskChildren(ctx, taskIDs, s.commentRepo, s.timeLogRepo, s.attachmentRepo); err != nil {
			return err
		}
		if err := s.taskRepo.DeleteByIDs(ctx, taskIDs); err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if err := s.projectRepo.DeleteMembers(ctx, id); err != nil {
			return fmt.Errorf("failed to delete project members: %w", err)
		}
		if err := s.teamRepo.ClearProject(ctx, id); err != nil {
			return fmt.Errorf("failed to unlink teams: %w", err)
		}
		if err := s.projectRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	removeObjects(ctx, s.storage, attachments)

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "project.deleted",
		EntityType: "project",
		EntityID:   project.ID,
		ProjectID:  &project.ID,
		Details:    map[string]string{"name": project.Name},
	})
	return nil
}

// AddMember adds userID to the project; owner only, adding twice is a no-op
func (s *ProjectService) AddMember(ctx context.Context, actor Actor, id, userID uuid.UUID) error {
	if _, err := s.ownedProject(ctx, actor, id); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.projectRepo.AddMember(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to add project member: %w", err)
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "project.member_added",
		EntityType: "project",
		EntityID:   id,
		ProjectID:  &id,
		Details:    map[string]string{"user_id": userID.String()},
	})
	return nil
}

// ListMembers lists the project's members; project members only
func (s *ProjectService) ListMembers(ctx context.Context, actor Actor, id uuid.UUID) ([]models.ProjectMemberWithUser, error) {
	if _, err := getProject(ctx, s.projectRepo, id); err != nil {
		return nil, err
	}
	if err := requireProjectMember(ctx, s.projectRepo, id, actor.ID); err != nil {
		return nil, err
	}
	members, err := s.projectRepo.ListMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	return members, nil
}

func (s *ProjectService) ownedProject(ctx context.Context, actor Actor, id uuid.UUID) (*models.Project, error) {
	project, err := getProject(ctx, s.projectRepo, id)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != actor.ID {
		return nil, apperrors.ErrNotProjectOwner
	}
	return project, nil
}

func requireProjectMember(ctx context.Context, repo repository.ProjectRepositoryInterface, projectID, userID uuid.UUID) error {
	member, err := repo.IsMember(ctx, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to check project membership: %w", err)
	}
	if !member {
		return apperrors.ErrNotProjectMember
	}
	return nil
}

func deleteTaskChildren(ctx context.Context, taskIDs []uuid.UUID, comments repository.CommentRepositoryInterface, timeLogs repository.TimeLogRepositoryInterface, attachments repository.AttachmentRepositoryInterface) error {
	if err := comments.DeleteByTasks(ctx, taskIDs); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	if err := timeLogs.DeleteByTasks(ctx, taskIDs); err != nil {
		return fmt.Errorf("failed to delete time logs: %w", err)
	}
	if err := attachments.DeleteByTasks(ctx, taskIDs); err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}

// removeObjects deletes stored attachment bytes after their rows are gone
func removeObjects(ctx context.Context, storage ObjectStorage, attachments []models.Attachment) {
	if storage == nil {
		return
	}
	for _, a := range attachments {
		if err := storage.Remove(ctx, a.ObjectName); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("object", a.ObjectName).Warn("failed to remove attachment object")
		}
	}
}
