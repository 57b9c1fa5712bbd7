//go:build integration
// +build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"trackflow-backend/internal/repository"

	"trackflow-backend/internal/database/models"
	"trackflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	repo          *repository.NotificationRepository
	user          *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()
	suite.repo = repository.NewNotificationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates the recipient with three notifications
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = testutils.NewUserFactory().Create()
	suite.Require().NoError(repository.NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.user))

	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.ctx, &models.Notification{
			UserID:  suite.user.ID,
			Type:    models.NotificationJoinRequest,
			Message: fmt.Sprintf("request %d", i),
			Data:    map[string]string{"team_id": "t1"},
		}))
	}
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) TestListByUserPaginates() {
	page, total, err := suite.repo.ListByUser(suite.ctx, suite.user.ID, false, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 2)
	suite.Equal("t1", page[0].Data["team_id"])

	rest, _, err := suite.repo.ListByUser(suite.ctx, suite.user.ID, false, 2, 2)
	suite.NoError(err)
	suite.Len(rest, 1)
}

func (suite *NotificationRepositoryTestSuite) TestMarkRead() {
	page, _, err := suite.repo.ListByUser(suite.ctx, suite.user.ID, false, 1, 0)
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)

	suite.NoError(suite.repo.MarkRead(suite.ctx, page[0].ID))

	unread, err := suite.repo.CountUnread(suite.ctx, suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(2), unread)

	found, err := suite.repo.GetByID(suite.ctx, page[0].ID)
	suite.NoError(err)
	suite.True(found.Read)

	_, total, err := suite.repo.ListByUser(suite.ctx, suite.user.ID, true, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

func (suite *NotificationRepositoryTestSuite) TestMarkAllRead() {
	marked, err := suite.repo.MarkAllRead(suite.ctx, suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(3), marked)

	marked, err = suite.repo.MarkAllRead(suite.ctx, suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(0), marked)

	unread, err := suite.repo.CountUnread(suite.ctx, suite.user.ID)
	suite.NoError(err)
	suite.Zero(unread)
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
