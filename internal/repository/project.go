package repository

import (
	"context"

	"trackflow-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and their member sets
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return dbFrom(ctx, r.db).Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := dbFrom(ctx, r.db).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByMember retrieves projects that userID belongs to
func (r *ProjectRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := dbFrom(ctx, r.db).
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

// Update saves all project fields
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return dbFrom(ctx, r.db).Save(project).Error
}

// Delete deletes a project row
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&models.Project{}, "id = ?", id).Error
}

// AddMember adds userID to the project's member set; adding twice is a no-op
func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	return dbFrom(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ProjectMember{ProjectID: projectID, UserID: userID}).Error
}

// IsMember reports whether userID is in the project's member set
func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListMembers lists the project's members joined with user identity
func (r *ProjectRepository) ListMembers(ctx context.Context, projectID uuid.UUID) ([]models.ProjectMemberWithUser, error) {
	var members []models.ProjectMemberWithUser
	err := dbFrom(ctx, r.db).
		Table("project_members pm").
		Select("pm.project_id, pm.user_id, u.name AS user_name, u.email AS user_email, pm.added_at").
		Joins("JOIN users u ON u.id = pm.user_id").
		Where("pm.project_id = ?", projectID).
		Order("pm.added_at ASC").
		Scan(&members).Error
	return members, err
}

// DeleteMembers empties the project's member set
func (r *ProjectRepository) DeleteMembers(ctx context.Context, projectID uuid.UUID) error {
	return dbFrom(ctx, r.db).Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error
}
