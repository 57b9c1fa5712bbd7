package service_test

import (
	"context"
	"testing"

	"trackflow-backend/internal/database/models"
	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/mocks"
	"trackflow-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestNotificationServiceNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
	svc := service.NewNotificationService(repo)

	userID := uuid.New()
	data := map[string]string{"team_id": uuid.NewString()}
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Notification) error {
		assert.Equal(t, userID, n.UserID)
		assert.Equal(t, models.NotificationJoinRequest, n.Type)
		assert.Equal(t, "hello", n.Message)
		assert.Equal(t, data, n.Data)
		assert.False(t, n.Read)
		return nil
	})

	require.NoError(t, svc.Notify(context.Background(), userID, models.NotificationJoinRequest, "hello", data))
}

func TestNotificationServiceListMinePagination(t *testing.T) {
	testCases := []struct {
		name           string
		page           int
		pageSize       int
		expectedLimit  int
		expectedOffset int
		expectedPage   int
	}{
		{name: "defaults", page: 0, pageSize: 0, expectedLimit: 20, expectedOffset: 0, expectedPage: 1},
		{name: "third page", page: 3, pageSize: 10, expectedLimit: 10, expectedOffset: 20, expectedPage: 3},
		{name: "oversized page falls back to default", page: 1, pageSize: 500, expectedLimit: 20, expectedOffset: 0, expectedPage: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
			svc := service.NewNotificationService(repo)
			actor := service.Actor{ID: uuid.New()}

			repo.EXPECT().ListByUser(gomock.Any(), actor.ID, true, tc.expectedLimit, tc.expectedOffset).
				Return([]models.Notification{}, int64(42), nil)

			resp, err := svc.ListMine(context.Background(), actor, true, tc.page, tc.pageSize)

			require.NoError(t, err)
			assert.Equal(t, int64(42), resp.Total)
			assert.Equal(t, tc.expectedPage, resp.Page)
			assert.Equal(t, tc.expectedLimit, resp.PageSize)
		})
	}
}

func TestNotificationServiceMarkRead(t *testing.T) {
	actor := service.Actor{ID: uuid.New()}

	t.Run("own unread notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
		svc := service.NewNotificationService(repo)
		n := &models.Notification{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: actor.ID}

		repo.EXPECT().GetByID(gomock.Any(), n.ID).Return(n, nil)
		repo.EXPECT().MarkRead(gomock.Any(), n.ID).Return(nil)

		assert.NoError(t, svc.MarkRead(context.Background(), actor, n.ID))
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
		svc := service.NewNotificationService(repo)
		n := &models.Notification{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: actor.ID, Read: true}

		repo.EXPECT().GetByID(gomock.Any(), n.ID).Return(n, nil)

		assert.NoError(t, svc.MarkRead(context.Background(), actor, n.ID))
	})

	t.Run("another user's notification reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
		svc := service.NewNotificationService(repo)
		n := &models.Notification{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: uuid.New()}

		repo.EXPECT().GetByID(gomock.Any(), n.ID).Return(n, nil)

		err := svc.MarkRead(context.Background(), actor, n.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})

	t.Run("unknown notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
		svc := service.NewNotificationService(repo)
		id := uuid.New()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		err := svc.MarkRead(context.Background(), actor, id)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestNotificationServiceMarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepositoryInterface(ctrl)
	svc := service.NewNotificationService(repo)
	actor := service.Actor{ID: uuid.New()}

	repo.EXPECT().MarkAllRead(gomock.Any(), actor.ID).Return(int64(3), nil)

	updated, err := svc.MarkAllRead(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
