package repository

import (
	"context"
	"time"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveRequestRepository handles database operations for leave requests
type LeaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

// Create creates a new leave request
func (r *LeaveRequestRepository) Create(ctx context.Context, req *models.LeaveRequest) error {
	return dbFrom(ctx, r.db).Create(req).Error
}

// GetByID retrieves a leave request by ID
func (r *LeaveRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	err := dbFrom(ctx, r.db).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// HasPending reports whether a pending request exists for (team, user)
func (r *LeaveRequestRepository) HasPending(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	return hasPending(dbFrom(ctx, r.db), &models.LeaveRequest{}, "team_id", teamID, userID)
}

// ListByTeam lists a team's leave requests joined with requester identity; empty status lists all
func (r *LeaveRequestRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, status models.RequestStatus) ([]models.RequestWithUser, error) {
	return listRequestsWithUser(dbFrom(ctx, r.db), "leave_requests", "r.reason", teamID, status)
}

// Resolve moves a pending request to status "to"; false means it was already resolved
func (r *LeaveRequestRepository) Resolve(ctx context.Context, id uuid.UUID, to models.RequestStatus, resolvedBy uuid.UUID, at time.Time) (bool, error) {
	return resolvePending(dbFrom(ctx, r.db), &models.LeaveRequest{}, id, to, resolvedBy, at)
}

// DeleteByTeam deletes all leave requests of a team
func (r *LeaveRequestRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return dbFrom(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.LeaveRequest{}).Error
}
