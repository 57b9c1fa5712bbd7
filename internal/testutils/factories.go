package testutils

import (
	"fmt"
	"time"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/service"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test User",
		Email:        fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoO5lPqK2sGkqN0oQz4Pq3vZbS4t0K7F1e",
	}
}

// WithName creates a test User with the given display name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team created by creatorID
func (f *TeamFactory) Create(creatorID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A test team",
		CreatedBy:   creatorID,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project owned by ownerID
func (f *ProjectFactory) Create(ownerID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Project",
		OwnerID: ownerID,
		Status:  models.ProjectStatusActive,
	}
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a top-level test Task in projectID
func (f *TaskFactory) Create(projectID, creatorID uuid.UUID) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: projectID,
		Title:     "Test Task",
		Status:    models.TaskStatusTodo,
		Priority:  models.TaskPriorityMedium,
		CreatedBy: creatorID,
	}
}

// Subtask creates a test Task below parent
func (f *TaskFactory) Subtask(parent *models.Task) *models.Task {
	task := f.Create(parent.ProjectID, parent.CreatedBy)
	task.Title = "Test Subtask"
	task.ParentID = &parent.ID
	return task
}

// FactorySet provides easy access to all factories
type FactorySet struct {
	User    *UserFactory
	Team    *TeamFactory
	Project *ProjectFactory
	Task    *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Team:    NewTeamFactory(),
		Project: NewProjectFactory(),
		Task:    NewTaskFactory(),
	}
}

// ActorFor returns the service actor for user
func ActorFor(user *models.User) service.Actor {
	return service.Actor{ID: user.ID, Name: user.Name, Email: user.Email}
}
