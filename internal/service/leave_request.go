package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const minLeaveReasonLength = 5

// LeaveRequestService runs the leave request state machine
type LeaveRequestService struct {
	txm        repository.TransactionManagerInterface
	teamRepo   repository.TeamRepositoryInterface
	leaveRepo  repository.LeaveRequestRepositoryInterface
	memberRepo repository.MembershipRepositoryInterface
	notifier   Notifier
	activity   ActivityRecorder
}

// NewLeaveRequestService creates a new leave request service
func NewLeaveRequestService(
	txm repository.TransactionManagerInterface,
	teamRepo repository.TeamRepositoryInterface,
	leaveRepo repository.LeaveRequestRepositoryInterface,
	memberRepo repository.MembershipRepositoryInterface,
	notifier Notifier,
	activity ActivityRecorder,
) *LeaveRequestService {
	return &LeaveRequestService{
		txm:        txm,
		teamRepo:   teamRepo,
		leaveRepo:  leaveRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
		activity:   activity,
	}
}

// CreateLeaveRequest is the body of a leave request submission
type CreateLeaveRequest struct {
	Reason string `json:"reason" example:"Moving to the platform team"`
}

// LeaveRequestResolution is the outcome of Resolve
type LeaveRequestResolution struct {
	Request          *models.LeaveRequest `json:"request"`
	AlreadyProcessed bool                 `json:"already_processed"`
}

// Submit creates a pending leave request and notifies the team creator
func (s *LeaveRequestService) Submit(ctx context.Context, actor Actor, teamID uuid.UUID, reason string) (*models.LeaveRequest, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minLeaveReasonLength {
		return nil, apperrors.ErrReasonTooShort
	}

	team, err := getTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatedBy == actor.ID {
		return nil, apperrors.ErrLeaderCannotLeave
	}

	isMember, err := s.memberRepo.IsMember(ctx, teamID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, apperrors.ErrNotTeamMember
	}

	pending, err := s.leaveRepo.HasPending(ctx, teamID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending leave requests: %w", err)
	}
	if pending {
		return nil, apperrors.ErrLeaveRequestPending
	}

	req := &models.LeaveRequest{
		TeamID: teamID,
		UserID: actor.ID,
		Reason: reason,
		Status: models.RequestStatusPending,
	}

	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.leaveRepo.Create(ctx, req); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrLeaveRequestPending
			}
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return s.notifier.Notify(ctx, team.CreatedBy, models.NotificationLeaveRequest,
			fmt.Sprintf("%s has requested to leave your team %s. Reason: %s", actor.Name, team.Name, reason),
			map[string]string{
				"request_id": req.ID.String(),
				"team_id":    team.ID.String(),
				"user_id":    actor.ID.String(),
				"reason":     reason,
			})
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "leave_request.submitted",
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"request_id": req.ID.String()},
	})

	return req, nil
}

// ListByTeam lists a team's leave requests; only the team creator may see them
func (s *LeaveRequestService) ListByTeam(ctx context.Context, actor Actor, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error) {
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

	reqs, err := s.leaveRepo.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return reqs, nil
}

// Resolve accepts or declines a pending leave request. Acceptance removes
// exactly the requester's membership of the team.
func (s *LeaveRequestService) Resolve(ctx context.Context, actor Actor, requestID uuid.UUID, decision models.RequestStatus) (*LeaveRequestResolution, error) {
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
		return &LeaveRequestResolution{Request: req, AlreadyProcessed: true}, nil
	}

	now := time.Now().UTC()
	applied := false
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.leaveRepo.Resolve(ctx, req.ID, decision, actor.ID, now)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if !ok {
			return nil
		}
		applied = true

		if decision == models.RequestStatusAccepted {
			if _, err := s.memberRepo.RemoveMember(ctx, team.ID, req.UserID); err != nil {
				return fmt.Errorf("failed to remove team member: %w", err)
			}
		}

		return s.notifier.Notify(ctx, req.UserID, models.NotificationLeaveRequestResponse,
			fmt.Sprintf("Your request to leave %s has been %s", team.Name, decision),
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
		return &LeaveRequestResolution{Request: current, AlreadyProcessed: true}, nil
	}

	req.Status = decision
	req.ResolvedBy = &actor.ID
	req.ResolvedAt = &now

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "leave_request." + string(decision),
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"request_id": req.ID.String(), "user_id": req.UserID.String()},
	})

	return &LeaveRequestResolution{Request: req}, nil
}

func (s *LeaveRequestService) getRequest(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}
