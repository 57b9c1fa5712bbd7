package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRequestService runs the join request state machine
type JoinRequestService struct {
	txm         repository.TransactionManagerInterface
	teamRepo    repository.TeamRepositoryInterface
	joinRepo    repository.JoinRequestRepositoryInterface
	memberRepo  repository.MembershipRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	notifier    Notifier
	activity    ActivityRecorder
}

// NewJoinRequestService creates a new join request service
func NewJoinRequestService(
	txm repository.TransactionManagerInterface,
	teamRepo repository.TeamRepositoryInterface,
	joinRepo repository.JoinRequestRepositoryInterface,
	memberRepo repository.MembershipRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	notifier Notifier,
	activity ActivityRecorder,
) *JoinRequestService {
	return &JoinRequestService{
		txm:         txm,
		teamRepo:    teamRepo,
		joinRepo:    joinRepo,
		memberRepo:  memberRepo,
		projectRepo: projectRepo,
		notifier:    notifier,
		activity:    activity,
	}
}

// ResolveRequest is the body of a join or leave request resolution
type ResolveRequest struct {
	Status models.RequestStatus `json:"status" example:"accepted"`
}

// JoinRequestResolution is the outcome of Resolve. AlreadyProcessed is set
// when the request had been resolved before this call; nothing was written.
type JoinRequestResolution struct {
	Request          *models.JoinRequest `json:"request"`
	AlreadyProcessed bool                `json:"already_processed"`
}

// Submit creates a pending join request and notifies the team creator
func (s *JoinRequestService) Submit(ctx context.Context, actor Actor, teamID uuid.UUID) (*models.JoinRequest, error) {
	team, err := getTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.memberRepo.IsMember(ctx, teamID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, apperrors.ErrAlreadyTeamMember
	}

	pending, err := s.joinRepo.HasPending(ctx, teamID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending join requests: %w", err)
	}
	if pending {
		return nil, apperrors.ErrJoinRequestPending
	}

	req := &models.JoinRequest{
		TeamID: teamID,
		UserID: actor.ID,
		Status: models.RequestStatusPending,
	}

	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.joinRepo.Create(ctx, req); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrJoinRequestPending
			}
			return fmt.Errorf("failed to create join request: %w", err)
		}
		return s.notifier.Notify(ctx, team.CreatedBy, models.NotificationJoinRequest,
			fmt.Sprintf("%s has requested to join your team %s", actor.Name, team.Name),
			map[string]string{
				"request_id": req.ID.String(),
				"team_id":    team.ID.String(),
				"user_id":    actor.ID.String(),
			})
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "join_request.submitted",
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"request_id": req.ID.String()},
	})

	return req, nil
}

// ListByTeam lists a team's join requests; only the team creator may see them
func (s *JoinRequestService) ListByTeam(ctx context.Context, actor Actor, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of: pending, accepted, declined")
	}

	team, err := getTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy != actor.ID {
		return nil, apperrors.ErrNotTeamCreator
	}

	reqs, err := s.joinRepo.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return reqs, nil
}

// ListMine lists the actor's own join requests
func (s *JoinRequestService) ListMine(ctx context.Context, actor Actor) ([]models.JoinRequest, error) {
	reqs, err := s.joinRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return reqs, nil
}

// Resolve accepts or declines a pending join request. The status change is
// conditional on the request still being pending, and runs in one
// transaction with the membership insert and the requester notification.
func (s *JoinRequestService) Resolve(ctx context.Context, actor Actor, requestID uuid.UUID, decision models.RequestStatus) (*JoinRequestResolution, error) {
	if !decision.IsDecision() {
		return nil, apperrors.ErrInvalidStatus
	}

	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	team, err := getTeam(ctx, s.teamRepo, req.TeamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy != actor.ID {
		return nil, apperrors.ErrNotTeamCreator
	}

	if !req.Status.CanTransitionTo(decision) {
		return &JoinRequestResolution{Request: req, AlreadyProcessed: true}, nil
	}

	now := time.Now().UTC()
	applied := false
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.joinRepo.Resolve(ctx, req.ID, decision, actor.ID, now)
		if err != nil {
			return fmt.Errorf("failed to update join request: %w", err)
		}
		if !ok {
			return nil
		}
		applied = true

		if decision == models.RequestStatusAccepted {
			if err := s.memberRepo.AddMember(ctx, team.ID, req.UserID, models.MembershipRoleMember); err != nil {
				return fmt.Errorf("failed to add team member: %w", err)
			}
			if team.ProjectID != nil {
				if err := s.projectRepo.AddMember(ctx, *team.ProjectID, req.UserID); err != nil {
					return fmt.Errorf("failed to add project member: %w", err)
				}
			}
		}

		return s.notifier.Notify(ctx, req.UserID, models.NotificationJoinRequestResponse,
			fmt.Sprintf("Your request to join %s has been %s", team.Name, decision),
			map[string]string{
				"request_id": req.ID.String(),
				"team_id":    team.ID.String(),
				"status":     string(decision),
			})
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		current, err := s.getRequest(ctx, requestID)
		if err != nil {
			return nil, err
		}
		return &JoinRequestResolution{Request: current, AlreadyProcessed: true}, nil
	}

	req.Status = decision
	req.ResolvedBy = &actor.ID
	req.ResolvedAt = &now

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "join_request." + string(decision),
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"request_id": req.ID.String(), "user_id": req.UserID.String()},
	})

	return &JoinRequestResolution{Request: req}, nil
}

func (s *JoinRequestService) getRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	req, err := s.joinRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	return req, nil
}

func getTeam(ctx context.Context, repo repository.TeamRepositoryInterface, id uuid.UUID) (*models.Team, error) {
	team, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}
