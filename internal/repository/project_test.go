//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"
	"time"
	"trackflow-backend/internal/repository"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProjectRepositoryTestSuite tests projects, their tasks and time logs
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repo          *repository.ProjectRepository
	tasks         *repository.TaskRepository
	timeLogs      *repository.TimeLogRepository
	factories     *testutils.FactorySet

	owner   *models.User
	project *models.Project
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	suite.repo = repository.NewProjectRepository(suite.baseTestSuite.DB)
	suite.tasks = repository.NewTaskRepository(suite.baseTestSuite.DB)
	suite.timeLogs = repository.NewTimeLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates an owner and a project with the owner as its only member
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.owner = suite.createUser("Alice")
	suite.project = suite.factories.Project.Create(suite.owner.ID)
	suite.project.Name = "Website Relaunch"
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.project))
	suite.Require().NoError(suite.repo.AddMember(suite.ctx, suite.project.ID, suite.owner.ID))
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) createUser(name string) *models.User {
	user := suite.factories.User.WithName(name)
	suite.Require().NoError(repository.NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, user))
	return user
}

func (suite *ProjectRepositoryTestSuite) createTask(title string, status models.TaskStatus) *models.Task {
	task := suite.factories.Task.Create(suite.project.ID, suite.owner.ID)
	task.Title = title
	task.Status = status
	suite.Require().NoError(suite.tasks.Create(suite.ctx, task))
	return task
}

func (suite *ProjectRepositoryTestSuite) TestAddMemberIsIdempotent() {
	bob := suite.createUser("Bob")

	suite.NoError(suite.repo.AddMember(suite.ctx, suite.project.ID, bob.ID))
	suite.NoError(suite.repo.AddMember(suite.ctx, suite.project.ID, bob.ID))

	members, err := suite.repo.ListMembers(suite.ctx, suite.project.ID)
	suite.NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal("Alice", members[0].UserName)
	suite.Equal("Bob", members[1].UserName)
	suite.Equal(bob.Email, members[1].UserEmail)
}

func (suite *ProjectRepositoryTestSuite) TestListByMember() {
	bob := suite.createUser("Bob")
	other := suite.factories.Project.Create(bob.ID)
	other.Name = "Mobile App"
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))
	suite.Require().NoError(suite.repo.AddMember(suite.ctx, other.ID, bob.ID))

	projects, err := suite.repo.ListByMember(suite.ctx, suite.owner.ID)
	suite.NoError(err)
	suite.Require().Len(projects, 1)
	suite.Equal("Website Relaunch", projects[0].Name)

	isMember, err := suite.repo.IsMember(suite.ctx, other.ID, suite.owner.ID)
	suite.NoError(err)
	suite.False(isMember)
}

func (suite *ProjectRepositoryTestSuite) TestDeleteMembers() {
	suite.NoError(suite.repo.DeleteMembers(suite.ctx, suite.project.ID))

	members, err := suite.repo.ListMembers(suite.ctx, suite.project.ID)
	suite.NoError(err)
	suite.Empty(members)
}

func (suite *ProjectRepositoryTestSuite) TestListByProjectExcludesSubtasks() {
	parent := suite.createTask("Design", models.TaskStatusInProgress)
	suite.createTask("Deploy", models.TaskStatusTodo)
	sub := suite.factories.Task.Subtask(parent)
	suite.Require().NoError(suite.tasks.Create(suite.ctx, sub))

	all, err := suite.tasks.ListByProject(suite.ctx, suite.project.ID, repository.TaskFilter{})
	suite.NoError(err)
	suite.Len(all, 2)

	inProgress, err := suite.tasks.ListByProject(suite.ctx, suite.project.ID, repository.TaskFilter{Status: models.TaskStatusInProgress})
	suite.NoError(err)
	suite.Require().Len(inProgress, 1)
	suite.Equal("Design", inProgress[0].Title)

	unassigned := uuid.New()
	none, err := suite.tasks.ListByProject(suite.ctx, suite.project.ID, repository.TaskFilter{AssigneeID: &unassigned})
	suite.NoError(err)
	suite.Empty(none)

	everything, err := suite.tasks.ListAllByProject(suite.ctx, suite.project.ID)
	suite.NoError(err)
	suite.Len(everything, 3)

	subtasks, err := suite.tasks.ListSubtasks(suite.ctx, parent.ID)
	suite.NoError(err)
	suite.Require().Len(subtasks, 1)
	suite.Equal(sub.ID, subtasks[0].ID)
}

func (suite *ProjectRepositoryTestSuite) TestTreeIDsAndDelete() {
	parent := suite.createTask("Design", models.TaskStatusTodo)
	sub := suite.factories.Task.Subtask(parent)
	suite.Require().NoError(suite.tasks.Create(suite.ctx, sub))

	ids, err := suite.tasks.TreeIDs(suite.ctx, parent.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{parent.ID, sub.ID}, ids)

	suite.NoError(suite.tasks.DeleteByIDs(suite.ctx, ids))

	remaining, err := suite.tasks.IDsByProject(suite.ctx, suite.project.ID)
	suite.NoError(err)
	suite.Empty(remaining)
}

func (suite *ProjectRepositoryTestSuite) TestCountByStatusFillsZeros() {
	suite.createTask("Design", models.TaskStatusDone)
	suite.createTask("Build", models.TaskStatusDone)
	suite.createTask("Deploy", models.TaskStatusTodo)

	counts, err := suite.tasks.CountByStatus(suite.ctx, suite.project.ID)

	suite.NoError(err)
	suite.Len(counts, len(models.TaskStatuses))
	suite.Equal(int64(2), counts[models.TaskStatusDone])
	suite.Equal(int64(1), counts[models.TaskStatusTodo])
	suite.Equal(int64(0), counts[models.TaskStatusReview])
}

func (suite *ProjectRepositoryTestSuite) TestTotalMinutesByTasks() {
	design := suite.createTask("Design", models.TaskStatusTodo)
	build := suite.createTask("Build", models.TaskStatusTodo)
	for _, minutes := range []int{30, 45} {
		suite.Require().NoError(suite.timeLogs.Create(suite.ctx, &models.TimeLog{
			TaskID:   design.ID,
			UserID:   suite.owner.ID,
			Minutes:  minutes,
			LoggedAt: time.Now(),
		}))
	}

	totals, err := suite.timeLogs.TotalMinutesByTasks(suite.ctx, []uuid.UUID{design.ID, build.ID})

	suite.NoError(err)
	suite.Equal(int64(75), totals[design.ID])
	suite.Zero(totals[build.ID])
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
