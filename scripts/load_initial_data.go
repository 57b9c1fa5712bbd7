package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trackflow-backend/internal/config"
	"trackflow-backend/internal/database"
	"trackflow-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed records as they appear in scripts/data
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type ProjectData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Owner       string   `yaml:"owner"`
	Status      string   `yaml:"status"`
	Members     []string `yaml:"members,omitempty"`
}

type TeamData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Creator     string            `yaml:"creator"`
	Project     string            `yaml:"project,omitempty"`
	Members     map[string]string `yaml:"members,omitempty"` // email -> role
}

type TaskData struct {
	Title    string     `yaml:"title"`
	Project  string     `yaml:"project"`
	Creator  string     `yaml:"creator"`
	Assignee string     `yaml:"assignee,omitempty"`
	Status   string     `yaml:"status"`
	Priority string     `yaml:"priority"`
	Subtasks []TaskData `yaml:"subtasks,omitempty"`
}

// SeedFile is the layout shared by every yaml file; each file fills some sections
type SeedFile struct {
	Users    []UserData    `yaml:"users"`
	Projects []ProjectData `yaml:"projects"`
	Teams    []TeamData    `yaml:"teams"`
	Tasks    []TaskData    `yaml:"tasks"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return loadData(tx, seed)
	}); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	all := &SeedFile{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all.Users = append(all.Users, file.Users...)
		all.Projects = append(all.Projects, file.Projects...)
		all.Teams = append(all.Teams, file.Teams...)
		all.Tasks = append(all.Tasks, file.Tasks...)
		return nil
	})
	return all, err
}

func loadData(db *gorm.DB, seed *SeedFile) error {
	users := make(map[string]*models.User)
	created := 0
	for _, data := range seed.Users {
		user, isNew, err := createUser(db, data)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.Email, err)
		}
		users[user.Email] = user
		if isNew {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(seed.Users))

	projects := make(map[string]*models.Project)
	created = 0
	for _, data := range seed.Projects {
		project, isNew, err := createProject(db, data, users)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", data.Name, err)
		}
		projects[project.Name] = project
		if isNew {
			created++
		}
	}
	log.Printf("Projects: %d created, %d total", created, len(seed.Projects))

	created = 0
	for _, data := range seed.Teams {
		isNew, err := createTeam(db, data, users, projects)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", data.Name, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Teams: %d created, %d total", created, len(seed.Teams))

	created = 0
	for _, data := range seed.Tasks {
		n, err := createTask(db, data, nil, users, projects)
		if err != nil {
			return fmt.Errorf("failed to create task %s: %w", data.Title, err)
		}
		created += n
	}
	log.Printf("Tasks: %d created", created)

	return nil
}

func lookupUser(users map[string]*models.User, email string) (*models.User, error) {
	user, ok := users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, fmt.Errorf("unknown user %q", email)
	}
	return user, nil
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}
	user = models.User{Name: data.Name, Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createProject(db *gorm.DB, data ProjectData, users map[string]*models.User) (*models.Project, bool, error) {
	owner, err := lookupUser(users, data.Owner)
	if err != nil {
		return nil, false, err
	}

	var project models.Project
	err = db.Where("name = ? AND owner_id = ?", data.Name, owner.ID).First(&project).Error
	if err == nil {
		return &project, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query project: %w", err)
	}

	status := models.ProjectStatus(data.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}
	project = models.Project{
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     owner.ID,
		Status:      status,
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, false, err
	}

	memberEmails := append([]string{data.Owner}, data.Members...)
	for _, email := range memberEmails {
		member, err := lookupUser(users, email)
		if err != nil {
			return nil, false, err
		}
		if err := db.Where(models.ProjectMember{ProjectID: project.ID, UserID: member.ID}).
			FirstOrCreate(&models.ProjectMember{ProjectID: project.ID, UserID: member.ID}).Error; err != nil {
			return nil, false, fmt.Errorf("failed to add project member: %w", err)
		}
	}
	return &project, true, nil
}

func createTeam(db *gorm.DB, data TeamData, users map[string]*models.User, projects map[string]*models.Project) (bool, error) {
	creator, err := lookupUser(users, data.Creator)
	if err != nil {
		return false, err
	}

	var team models.Team
	err = db.Where("name = ? AND created_by = ?", data.Name, creator.ID).First(&team).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{Name: data.Name, Description: data.Description, CreatedBy: creator.ID}
	if data.Project != "" {
		project, ok := projects[data.Project]
		if !ok {
			return false, fmt.Errorf("unknown project %q", data.Project)
		}
		team.ProjectID = &project.ID
	}
	if err := db.Create(&team).Error; err != nil {
		return false, err
	}

	roles := make(map[string]models.MembershipRole, len(data.Members)+1)
	for email, role := range data.Members {
		r := models.MembershipRole(role)
		if !r.IsValid() {
			return false, fmt.Errorf("invalid role %q for %s", role, email)
		}
		roles[strings.ToLower(email)] = r
	}
	// The creator always leads
	roles[strings.ToLower(data.Creator)] = models.MembershipRoleLeader
	for email, role := range roles {
		member, err := lookupUser(users, email)
		if err != nil {
			return false, err
		}
		membership := models.TeamMembership{
			TeamID: team.ID,
			UserID: member.ID,
			Role:   role,
			Status: models.MembershipStatusActive,
		}
		if err := db.Create(&membership).Error; err != nil {
			return false, fmt.Errorf("failed to add team member: %w", err)
		}
	}
	return true, nil
}

func createTask(db *gorm.DB, data TaskData, parent *models.Task, users map[string]*models.User, projects map[string]*models.Project) (int, error) {
	var project *models.Project
	if parent != nil {
		project = &models.Project{BaseModel: models.BaseModel{ID: parent.ProjectID}}
	} else {
		p, ok := projects[data.Project]
		if !ok {
			return 0, fmt.Errorf("unknown project %q", data.Project)
		}
		project = p
	}
	creator, err := lookupUser(users, data.Creator)
	if err != nil {
		return 0, err
	}

	query := db.Where("project_id = ? AND title = ?", project.ID, data.Title)
	if parent != nil {
		query = query.Where("parent_id = ?", parent.ID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	var task models.Task
	err = query.First(&task).Error
	switch {
	case err == nil:
		return 0, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, fmt.Errorf("failed to query task: %w", err)
	}

	task = models.Task{
		ProjectID: project.ID,
		Title:     data.Title,
		Status:    models.TaskStatus(data.Status),
		Priority:  models.TaskPriority(data.Priority),
		CreatedBy: creator.ID,
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if parent != nil {
		task.ParentID = &parent.ID
	}
	if data.Assignee != "" {
		assignee, err := lookupUser(users, data.Assignee)
		if err != nil {
			return 0, err
		}
		task.AssigneeID = &assignee.ID
	}
	if err := db.Create(&task).Error; err != nil {
		return 0, err
	}

	created := 1
	// Subtasks only go one level deep
	if parent == nil {
		for _, sub := range data.Subtasks {
			n, err := createTask(db, sub, &task, users, projects)
			if err != nil {
				return created, err
			}
			created += n
		}
	}
	return created, nil
}
