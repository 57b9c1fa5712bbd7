//go:build integration
// +build integration

package repository_test

import (
	"context"
	"testing"
	"trackflow-backend/internal/repository"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository and the membership ledger
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repo          *repository.TeamRepository
	memberships   *repository.MembershipRepository
	users         *repository.UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	suite.repo = repository.NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberships = repository.NewMembershipRepository(suite.baseTestSuite.DB)
	suite.users = repository.NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createUser(name string) *models.User {
	user := suite.factories.User.WithName(name)
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	return user
}

func (suite *TeamRepositoryTestSuite) createTeam(creator *models.User, name string) *models.Team {
	team := suite.factories.Team.Create(creator.ID)
	team.Name = name
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))
	suite.Require().NoError(suite.memberships.AddMember(suite.ctx, team.ID, creator.ID, models.MembershipRoleLeader))
	return team
}

func (suite *TeamRepositoryTestSuite) TestCreateAndGet() {
	creator := suite.createUser("Alice")
	team := suite.createTeam(creator, "Platform")

	found, err := suite.repo.GetByID(suite.ctx, team.ID)

	suite.NoError(err)
	suite.Equal("Platform", found.Name)
	suite.Equal(creator.ID, found.CreatedBy)
	suite.Nil(found.ProjectID)
}

func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestListByMemberCountsActiveMembers() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")
	carol := suite.createUser("Carol")

	platform := suite.createTeam(alice, "Platform")
	suite.createTeam(carol, "Apps")
	suite.Require().NoError(suite.memberships.AddMember(suite.ctx, platform.ID, bob.ID, models.MembershipRoleMember))

	teams, err := suite.repo.ListByMember(suite.ctx, bob.ID)

	suite.NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("Platform", teams[0].Name)
	suite.Equal(int64(2), teams[0].MemberCount)
}

func (suite *TeamRepositoryTestSuite) TestAddMemberIsIdempotent() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")
	team := suite.createTeam(alice, "Platform")

	suite.NoError(suite.memberships.AddMember(suite.ctx, team.ID, bob.ID, models.MembershipRoleMember))
	suite.NoError(suite.memberships.AddMember(suite.ctx, team.ID, bob.ID, models.MembershipRoleAdmin))

	count, err := suite.memberships.CountByTeam(suite.ctx, team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	members, err := suite.memberships.ListByTeam(suite.ctx, team.ID)
	suite.NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal(models.MembershipRoleLeader, members[0].Role)
	suite.Equal("Bob", members[1].UserName)
	// The first insert wins
	suite.Equal(models.MembershipRoleMember, members[1].Role)
}

func (suite *TeamRepositoryTestSuite) TestRemoveMember() {
	alice := suite.createUser("Alice")
	bob := suite.createUser("Bob")
	team := suite.createTeam(alice, "Platform")
	suite.Require().NoError(suite.memberships.AddMember(suite.ctx, team.ID, bob.ID, models.MembershipRoleMember))

	removed, err := suite.memberships.RemoveMember(suite.ctx, team.ID, bob.ID)
	suite.NoError(err)
	suite.Equal(int64(1), removed)

	removed, err = suite.memberships.RemoveMember(suite.ctx, team.ID, bob.ID)
	suite.NoError(err)
	suite.Equal(int64(0), removed)

	isMember, err := suite.memberships.IsMember(suite.ctx, team.ID, bob.ID)
	suite.NoError(err)
	suite.False(isMember)
}

func (suite *TeamRepositoryTestSuite) TestClearProject() {
	alice := suite.createUser("Alice")
	project := suite.factories.Project.Create(alice.ID)
	suite.Require().NoError(repository.NewProjectRepository(suite.baseTestSuite.DB).Create(suite.ctx, project))

	team := suite.factories.Team.Create(alice.ID)
	team.ProjectID = &project.ID
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))

	suite.NoError(suite.repo.ClearProject(suite.ctx, project.ID))

	found, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.NoError(err)
	suite.Nil(found.ProjectID)
}

func (suite *TeamRepositoryTestSuite) TestTransactionRollsBack() {
	alice := suite.createUser("Alice")
	team := suite.factories.Team.Create(alice.ID)
	txm := repository.NewTransactionManager(suite.baseTestSuite.DB)

	err := txm.WithinTransaction(suite.ctx, func(ctx context.Context) error {
		if err := suite.repo.Create(ctx, team); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	suite.ErrorIs(err, gorm.ErrInvalidData)

	_, err = suite.repo.GetByID(suite.ctx, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
