package repository

import (
	"context"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRequestRepository handles database operations for join requests
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// Create creates a new join request
func (r *JoinRequestRepository) Create(ctx context.Context, req *models.JoinRequest) error {
	return dbFrom(ctx, r.db).Create(req).Error
}

// GetByID retrieves a join request by ID
func (r *JoinRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := dbFrom(ctx, r.db).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// HasPending reports whether a pending request exists for (team, user)
func (r *JoinRequestRepository) HasPending(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	return hasPending(dbFrom(ctx, r.db), &models.JoinRequest{}, "team_id", teamID, userID)
}

// ListByTeam lists a team's join requests joined with requester identity; empty status lists all
func (r *JoinRequestRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error) {
	return listRequestsWithUser(dbFrom(ctx, r.db), "join_requests", "''", teamID, status)
}

// ListByUser lists a user's own join requests, newest first
func (r *JoinRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JoinRequest, error) {
	var reqs []models.JoinRequest
	err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// Resolve moves a pending request to status "to". It returns false when the
// request was no longer pending, in which case nothing was written.
func (r *JoinRequestRepository) Resolve(ctx context.Context, id uuid.UUID, to models.RequestStatus, resolvedBy uuid.UUID, at time.Time) (bool, error) {
	return resolvePending(dbFrom(ctx, r.db), &models.JoinRequest{}, id, to, resolvedBy, at)
}

// DeleteByTeam deletes all join requests of a team
func (r *JoinRequestRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return dbFrom(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.JoinRequest{}).Error
}

func hasPending(db *gorm.DB, model interface{}, scopeColumn string, scopeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(model).
		Where(scopeColumn+" = ? AND user_id = ? AND status = ?", scopeID, userID, models.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

func resolvePending(db *gorm.DB, model interface{}, id uuid.UUID, to models.RequestStatus, resolvedBy uuid.UUID, at time.Time) (bool, error) {
	result := db.Model(model).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":      to,
			"resolved_by": resolvedBy,
			"resolved_at": at,
			"updated_at":  at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func listRequestsWithUser(db *gorm.DB, table, reasonColumn string, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error) {
	var rows []models.RequestWithUser
	query := db.Table(table+" r").
		Select("r.id, r.team_id, r.user_id, u.name AS user_name, u.email AS user_email, "+reasonColumn+" AS reason, r.status, r.created_at").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.team_id = ?", teamID)
	if status != "" {
		query = query.Where("r.status = ?", status)
	}
	err := query.Order("r.created_at DESC").Scan(&rows).Error
	return rows, err
}
