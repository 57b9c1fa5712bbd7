package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationService runs the invitation state machine. The workspace of an
// invitation is a team.
type InvitationService struct {
	txm        repository.TransactionManagerInterface
	teamRepo   repository.TeamRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	invRepo    repository.InvitationRepositoryInterface
	memberRepo repository.MembershipRepositoryInterface
	notifier   Notifier
	activity   ActivityRecorder
	validator  *validator.Validate
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	txm repository.TransactionManagerInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	invRepo repository.InvitationRepositoryInterface,
	memberRepo repository.MembershipRepositoryInterface,
	notifier Notifier,
	activity ActivityRecorder,
	validator *validator.Validate,
) *InvitationService {
	return &InvitationService{
		txm:        txm,
		teamRepo:   teamRepo,
		userRepo:   userRepo,
		invRepo:    invRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
		activity:   activity,
		validator:  validator,
	}
}

// CreateInvitationRequest is the body of an invitation
type CreateInvitationRequest struct {
	Email  string                `json:"email" validate:"required,email" example:"dev@example.com"`
	UserID uuid.UUID             `json:"user_id" validate:"required"`
	Role   models.InvitationRole `json:"role" validate:"required,oneof=admin member" example:"member"`
}

// RespondInvitationRequest is the body of an invitation response
type RespondInvitationRequest struct {
	Status models.RequestStatus `json:"status" example:"accepted"`
}

// InvitationResponse is the outcome of Respond
type InvitationResponse struct {
	Invitation       *models.Invitation `json:"invitation"`
	AlreadyProcessed bool               `json:"already_processed"`
}

// Invite creates a pending invitation into workspaceID and notifies the invitee
func (s *InvitationService) Invite(ctx context.Context, actor Actor, workspaceID uuid.UUID, req *CreateInvitationRequest) (*models.Invitation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if workspaceID == uuid.Nil {
		return nil, apperrors.NewValidationError("workspace_id", "is required")
	}

	team, err := s.teamRepo.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("workspace_id", "workspace does not exist")
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	inviterIsMember, err := s.memberRepo.IsMember(ctx, team.ID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !inviterIsMember {
		return nil, apperrors.ErrNotTeamMember
	}

	invitee, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("user_id", "user does not exist")
		}
		return nil, fmt.Errorf("failed to get invitee: %w", err)
	}
	if !strings.EqualFold(invitee.Email, req.Email) {
		return nil, apperrors.NewValidationError("email", "does not match the invited user")
	}

	isMember, err := s.memberRepo.IsMember(ctx, team.ID, invitee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember {
		return nil, apperrors.ErrAlreadyTeamMember
	}

	pending, err := s.invRepo.HasPending(ctx, team.ID, invitee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending {
		return nil, apperrors.ErrInvitationPending
	}

	inv := &models.Invitation{
		WorkspaceID: team.ID,
		InvitedBy:   actor.ID,
		UserID:      invitee.ID,
		Email:       invitee.Email,
		Role:        req.Role,
		Status:      models.RequestStatusPending,
	}

	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.invRepo.Create(ctx, inv); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrInvitationPending
			}
			return fmt.Errorf("failed to create invitation: %w", err)
		}
		return s.notifier.Notify(ctx, invitee.ID, models.NotificationTeamInvitation,
			fmt.Sprintf("%s invited you to join %s as %s", actor.Name, team.Name, req.Role),
			map[string]string{
				"invitation_id": inv.ID.String(),
				"team_id":       team.ID.String(),
				"role":          string(req.Role),
			})
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "invitation.created",
		EntityType: "team",
		EntityID:   team.ID,
		ProjectID:  team.ProjectID,
		Details:    map[string]string{"invitation_id": inv.ID.String(), "user_id": invitee.ID.String()},
	})

	return inv, nil
}

// ListMine lists invitations addressed to the actor
func (s *InvitationService) ListMine(ctx context.Context, actor Actor, status models.RequestStatus) ([]models.Invitation, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of: pending, accepted, declined")
	}
	invs, err := s.invRepo.ListByUser(ctx, actor.ID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invs, nil
}

// Respond accepts or declines an invitation addressed to the actor.
// Acceptance adds an active membership with the invitation role.
func (s *InvitationService) Respond(ctx context.Context, actor Actor, invitationID uuid.UUID, status models.RequestStatus) (*InvitationResponse, error) {
	if !status.IsDecision() {
		return nil, apperrors.ErrInvalidStatus
	}

	inv, err := s.getInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.UserID != actor.ID {
		return nil, apperrors.ErrNotInvitee
	}

	if !inv.Status.CanTransitionTo(status) {
		return &InvitationResponse{Invitation: inv, AlreadyProcessed: true}, nil
	}

	now := time.Now().UTC()
	applied := false
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.invRepo.Respond(ctx, inv.ID, status, now)
		if err != nil {
			return fmt.Errorf("failed to update invitation: %w", err)
		}
		if !ok {
			return nil
		}
		applied = true

		if status == models.RequestStatusAccepted {
			if err := s.memberRepo.AddMember(ctx, inv.WorkspaceID, inv.UserID, inv.Role.MembershipRole()); err != nil {
				return fmt.Errorf("failed to add team member: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		current, err := s.getInvitation(ctx, invitationID)
		if err != nil {
			return nil, err
		}
		return &InvitationResponse{Invitation: current, AlreadyProcessed: true}, nil
	}

	inv.Status = status
	inv.RespondedAt = &now

	s.activity.Record(ctx, &models.ActivityLog{
		ActorID:    actor.ID,
		Action:     "invitation." + string(status),
		EntityType: "team",
		EntityID:   inv.WorkspaceID,
		Details:    map[string]string{"invitation_id": inv.ID.String()},
	})

	return &InvitationResponse{Invitation: inv}, nil
}

func (s *InvitationService) getInvitation(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	inv, err := s.invRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return inv, nil
}
