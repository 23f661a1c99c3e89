// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification audit records.
type NotificationRepository interface {
	// CreateNotification persists a new audit record.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByUser lists a user's notifications newest first and returns the unpaged total.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) ([]*entity.Notification, int64, error)

	// MarkAsRead transitions a notification to read. Already-read notifications keep their ReadAt.
	MarkAsRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
}
