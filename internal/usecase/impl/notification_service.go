package impl

import (
	"context"
	"time"

	"subtrack/internal/domain/constants"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// ListNotifications lists the user's notifications newest first
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) (*usecase.NotificationPage, error) {
	filter.Page, filter.PerPage = normalizePagination(filter.Page, filter.PerPage)

	notifications, total, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		Total:         total,
		Page:          filter.Page,
		PerPage:       filter.PerPage,
	}, nil
}

// MarkAsRead marks one of the user's notifications as read
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	if notification.UserID != userID {
		return nil, domainerrors.ErrNotificationNotFound
	}

	if notification.IsRead {
		return notification, nil
	}

	readAt := s.now()
	if err := s.notificationRepo.MarkAsRead(ctx, notificationID, readAt); err != nil {
		return nil, errors.Wrap(err, "failed to mark notification as read")
	}

	notification.IsRead = true
	notification.ReadAt = &readAt

	return notification, nil
}

// normalizePagination applies the list defaults to a requested page.
func normalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = constants.DefaultPerPage
	}
	if perPage > constants.MaxPerPage {
		perPage = constants.MaxPerPage
	}

	return page, perPage
}
