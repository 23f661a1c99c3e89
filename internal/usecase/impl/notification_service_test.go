package impl

import (
	"context"
	"testing"
	"time"

	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	mockRepo "subtrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()
	userID := uuid.New()
	unread := entity.NotificationFilter{IsRead: lo.ToPtr(false), Page: 2, PerPage: 100}
	notifications := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

	mockNotificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, unread).
		Return(notifications, int64(101), nil)

	page, err := service.ListNotifications(ctx, userID, entity.NotificationFilter{IsRead: lo.ToPtr(false), Page: 2, PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, notifications, page.Notifications)
	assert.Equal(t, int64(101), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 100, page.PerPage)
}

func TestNotificationService_ListNotifications_Error(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	mockNotificationRepo.EXPECT().
		FindNotificationsByUser(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("db down"))

	_, err := service.ListNotifications(context.Background(), uuid.New(), entity.NotificationFilter{})
	require.Error(t, err)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)
	readAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	service.(*notificationService).now = fixedClock(readAt)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID}

	mockNotificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil).Twice()
	mockNotificationRepo.EXPECT().MarkAsRead(ctx, notification.ID, readAt).Return(nil).Once()

	got, err := service.MarkAsRead(ctx, userID, notification.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.Equal(t, readAt, *got.ReadAt)

	// Marking twice keeps the first read time.
	got, err = service.MarkAsRead(ctx, userID, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, readAt, *got.ReadAt)
}

func TestNotificationService_MarkAsRead_NotOwned(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), UserID: uuid.New()}
	mockNotificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)

	_, err := service.MarkAsRead(ctx, uuid.New(), notification.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAsRead_Missing(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()
	id := uuid.New()
	mockNotificationRepo.EXPECT().FindNotificationByID(ctx, id).Return(nil, repository.ErrNotificationNotFound)

	_, err := service.MarkAsRead(ctx, uuid.New(), id)
	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
