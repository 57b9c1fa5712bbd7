package repository

import (
	"context"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	return dbFrom(ctx, r.db).Create(inv).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	var inv models.Invitation
	err := dbFrom(ctx, r.db).First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// HasPending reports whether a pending invitation exists for (workspace, user)
func (r *InvitationRepository) HasPending(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	return hasPending(dbFrom(ctx, r.db), &models.Invitation{}, "workspace_id", workspaceID, userID)
}

// ListByUser lists invitations addressed to userID; empty status lists all
func (r *InvitationRepository) ListByUser(ctx context.Context, userID uuid.UUID, status models.RequestStatus) ([]models.Invitation, error) {
	var invs []models.Invitation
	query := dbFrom(ctx, r.db).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&invs).Error
	return invs, err
}

// Respond moves a pending invitation to status "to"; false means it was already answered
func (r *InvitationRepository) Respond(ctx context.Context, id uuid.UUID, to models.RequestStatus, at time.Time) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       to,
			"responded_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteByWorkspace deletes all invitations of a workspace
func (r *InvitationRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return dbFrom(ctx, r.db).Where("workspace_id = ?", workspaceID).Delete(&models.Invitation{}).Error
}
