package usecase

import (
	"context"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationPage is one page of a user's notification inbox.
type NotificationPage struct {
	Notifications []*entity.Notification
	Total         int64
	Page          int
	PerPage       int
}

// NotificationUsecase defines the inbox use cases.
type NotificationUsecase interface {
	// ListNotifications lists the user's notifications newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) (*NotificationPage, error)

	// MarkAsRead marks one of the user's notifications as read.
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error)
}
