package handlers_test

import (
	"net/http"
	"testing"

	"trackflow-backend/internal/api/handlers"
	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/mocks"
	"trackflow-backend/internal/service"
	"trackflow-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	actor       service.Actor
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.actor = service.Actor{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	handler := handlers.NewNotificationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.actor)
	notifications := suite.httpSuite.Router.Group("/api/v1/notifications")
	{
		notifications.GET("", handler.ListNotifications)
		notifications.GET("/unread-count", handler.UnreadCount)
		notifications.PUT("/read-all", handler.MarkAllRead)
		notifications.PUT("/:id/read", handler.MarkRead)
	}
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestListDefaults() {
	suite.mockService.EXPECT().ListMine(gomock.Any(), suite.actor, false, 1, 20).Return(&service.NotificationListResponse{
		Notifications: []models.Notification{{Type: models.NotificationJoinRequest, Message: "Bob wants to join Platform"}},
		Total:         1,
		Page:          1,
		PageSize:      20,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)

	var response service.NotificationListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Notifications, 1)
	suite.Equal(models.NotificationJoinRequest, response.Notifications[0].Type)
}

func (suite *NotificationHandlerTestSuite) TestListUnreadPage() {
	suite.mockService.EXPECT().ListMine(gomock.Any(), suite.actor, true, 2, 5).Return(&service.NotificationListResponse{Page: 2, PageSize: 5}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications?unread_only=true&page=2&page_size=5", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestListInvalidParams() {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"page", "?page=first", "invalid page"},
		{"page size", "?page_size=big", "invalid page_size"},
		{"unread only", "?unread_only=maybe", "invalid unread_only"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications"+tt.query, nil)
			testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, tt.want)
		})
	}
}

func (suite *NotificationHandlerTestSuite) TestUnreadCount() {
	suite.mockService.EXPECT().UnreadCount(gomock.Any(), suite.actor).Return(int64(4), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil)

	var response handlers.UnreadCountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(4), response.Count)
}

func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()
	suite.mockService.EXPECT().MarkRead(gomock.Any(), suite.actor, id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/notifications/"+id.String()+"/read", nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *NotificationHandlerTestSuite) TestMarkReadNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().MarkRead(gomock.Any(), suite.actor, id).Return(apperrors.ErrNotificationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/notifications/"+id.String()+"/read", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "notification not found")
}

func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.mockService.EXPECT().MarkAllRead(gomock.Any(), suite.actor).Return(int64(7), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/notifications/read-all", nil)

	var response handlers.MarkAllReadResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(7), response.Updated)
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
