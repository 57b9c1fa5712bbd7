package service

import (
	"context"
	"errors"
	"fmt"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	txm         repository.TransactionManagerInterface
	teamRepo    repository.TeamRepositoryInterface
	memberRepo  repository.MembershipRepositoryInterface
	joinRepo    repository.JoinRequestRepositoryInterface
	leaveRepo   repository.LeaveRequestRepositoryInterface
	invRepo     repository.InvitationRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	activity    ActivityRecorder
	validator   *validator.Validate
}

// TeamRepositories bundles the repositories a TeamService needs
type TeamRepositories struct {
	Teams         repository.TeamRepositoryInterface
	Memberships   repository.MembershipRepositoryInterface
	JoinRequests  repository.JoinRequestRepositoryInterface
	LeaveRequests repository.LeaveRequestRepositoryInterface
	Invitations   repository.InvitationRepositoryInterface
	Projects      repository.ProjectRepositoryInterface
}

// NewTeamService creates a new team service
func NewTeamService(txm repository.TransactionManagerInterface, repos TeamRepositories, activity ActivityRecorder, validator *validator.Validate) *TeamService {
	return &TeamService{
		txm:         txm,
		teamRepo:    repos.Teams,
		memberRepo:  repos.Memberships,
		joinRepo:    repos.JoinRequests,
		leaveRepo:   repos.LeaveRequests,
		invRepo:     repos.Invitations,
		projectRepo: repos.Projects,
		activity:    activity,
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100" example:"Platform"`
	Description string     `json:"description" validate:"max=500"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
}

// Create creates a team; the creator becomes its leader
func (s *TeamService) Create(ctx context.Context, actor Actor, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if req.ProjectID != nil {
		if _, err := getProject(ctx, s.projectRepo, *req.ProjectID); err != nil {
			return nil, err
		}
		member, err := s.projectRepo.IsMember(ctx, *req.ProjectID, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check project membership: %w", err)
		}
		if !member {
			return nil, apperrors.ErrNotProjectMember
		}
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   actor.ID,
		ProjectID:   req.ProjectID,
	}

	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		if err := s.memberRepo.AddMember(ctx, team.ID, actor.ID, models.MembershipRoleLeader); err != nil {
			return fmt.Errorf("failed to add team leader: %w", err)
		}
		if team.ProjectID != nil {
			if err := s.projectRepo.AddMember(ctx, *team.ProjectID, actor.ID); err != nil {
				return fmt.Errorf("failed to add project member: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "team.created",
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"name": team.Name},
	})

	return team, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return getTeam(ctx, s.teamRepo, id)
}

// ListMine lists the teams the actor is an active member of
func (s *TeamService) ListMine(ctx context.Context, actor Actor) ([]models.TeamWithMemberCount, error) {
	teams, err := s.teamRepo.ListByMember(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// ListMembers lists a team's members; visible to members and the creator
func (s *TeamService) ListMembers(ctx context.Context, actor Actor, teamID uuid.UUID) ([]models.TeamMemberWithUser, error) {
	team, err := getTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return nil, err
	}

	if team.CreatedBy != actor.ID {
		member, err := s.memberRepo.IsMember(ctx, teamID, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		if !member {
			return nil, apperrors.ErrNotTeamVisible
		}
	}

	members, err := s.memberRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// Delete removes a team together with its memberships, requests and invitations
func (s *TeamService) Delete(ctx context.Context, actor Actor, teamID uuid.UUID) error {
	team, err := getTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return err
	}
	if team.CreatedBy != actor.ID {
		return apperrors.ErrNotTeamCreator
	}

	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.memberRepo.DeleteByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("failed to delete team memberships: %w", err)
		}
		if err := s.joinRepo.DeleteByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("failed to delete join requests: %w", err)
		}
		if err := s.leaveRepo.DeleteByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("failed to delete leave requests: %w", err)
		}
		if err := s.invRepo.DeleteByWorkspace(ctx, teamID); err != nil {
			return fmt.Errorf("failed to delete invitations: %w", err)
		}
		if err := s.teamRepo.Delete(ctx, teamID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "team.deleted",
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"name": team.Name},
	})
	return nil
}

func getProject(ctx context.Context, repo repository.ProjectRepositoryInterface, id uuid.UUID) (*models.Project, error) {
	project, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}
