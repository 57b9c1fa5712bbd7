package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return dbFrom(ctx, r.db).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := dbFrom(ctx, r.db).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByMember retrieves the teams where userID has an active membership, with member counts
func (r *TeamRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]models.TeamWithMemberCount, error) {
	var teams []models.TeamWithMemberCount
	err := dbFrom(ctx, r.db).
		Table("teams").
		Select("teams.*, (SELECT COUNT(*) FROM team_memberships tm WHERE tm.team_id = teams.id AND tm.status = ?) AS member_count", models.MembershipStatusActive).
		Joins("JOIN team_memberships m ON m.team_id = teams.id").
		Where("m.user_id = ? AND m.status = ?", userID, models.MembershipStatusActive).
		Order("teams.name ASC").
		Scan(&teams).Error
	return teams, err
}

// ClearProject unlinks every team from projectID
func (r *TeamRepository) ClearProject(ctx context.Context, projectID uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&models.Team{}).
		Where("project_id = ?", projectID).
		Update("project_id", nil).Error
}

// Delete deletes a team row
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&models.Team{}, "id = ?", id).Error
}
