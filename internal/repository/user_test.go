//go:build integration
// +build integration

package repository_test

import (
	"context"
	"strings"
	"testing"
	"trackflow-backend/internal/repository"

	"trackflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repo          *repository.UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	suite.repo = repository.NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.factories.User.WithName("Alice")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByID(suite.ctx, user.ID)

	suite.NoError(err)
	suite.Equal("Alice", found.Name)
	suite.Equal(user.Email, found.Email)
}

func (suite *UserRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByEmail(suite.ctx, strings.ToUpper(user.Email))

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail(suite.ctx, "nobody@example.com")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestDuplicateEmail() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	twin := suite.factories.User.Create()
	twin.Email = user.Email

	suite.ErrorIs(suite.repo.Create(suite.ctx, twin), gorm.ErrDuplicatedKey)
}

func (suite *UserRepositoryTestSuite) TestGetByIDs() {
	alice := suite.factories.User.WithName("Alice")
	bob := suite.factories.User.WithName("Bob")
	suite.Require().NoError(suite.repo.Create(suite.ctx, alice))
	suite.Require().NoError(suite.repo.Create(suite.ctx, bob))

	users, err := suite.repo.GetByIDs(suite.ctx, []uuid.UUID{alice.ID, bob.ID, uuid.New()})
	suite.NoError(err)
	suite.Len(users, 2)

	none, err := suite.repo.GetByIDs(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(none)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
