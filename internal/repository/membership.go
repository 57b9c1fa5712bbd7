package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository is the team membership ledger
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// AddMember inserts an active membership; an existing (team, user) row is left as is
func (r *MembershipRepository) AddMember(ctx context.Context, teamID, userID uuid.UUID, role models.MembershipRole) error {
	membership := &models.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
		Status: models.MembershipStatusActive,
	}
	return dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(membership).Error
}

// RemoveMember deletes the (team, user) row and reports how many rows went away
func (r *MembershipRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (int64, error) {
	result := dbFrom(ctx, r.db).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMembership{})
	return result.RowsAffected, result.Error
}

// ListByTeam lists the team's memberships joined with user identity
func (r *MembershipRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]models.TeamMemberWithUser, error) {
	var members []models.TeamMemberWithUser
	err := dbFrom(ctx, r.db).
		Table("team_memberships m").
		Select("m.team_id, m.user_id, u.name AS user_name, u.email AS user_email, m.role, m.status, m.created_at AS joined_at").
		Joins("JOIN users u ON u.id = m.user_id").
		Where("m.team_id = ?", teamID).
		Order("m.created_at ASC").
		Scan(&members).Error
	return members, err
}

// CountByTeam counts active memberships of a team
func (r *MembershipRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&models.TeamMembership{}).
		Where("team_id = ? AND status = ?", teamID, models.MembershipStatusActive).
		Count(&count).Error
	return count, err
}

// IsMember reports whether userID holds an active membership in teamID
func (r *MembershipRepository) IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&models.TeamMembership{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, models.MembershipStatusActive).
		Count(&count).Error
	return count > 0, err
}

// DeleteByTeam deletes all memberships of a team
func (r *MembershipRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return dbFrom(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.TeamMembership{}).Error
}
