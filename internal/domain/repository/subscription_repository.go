// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found or was deleted.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for subscription database operations.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription.
	CreateSubscription(ctx context.Context, sub *entity.Subscription) error

	// FindSubscriptionByID retrieves a non-deleted subscription by ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionsByUser lists a user's subscriptions page by page and returns the unpaged total.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID, filter entity.SubscriptionFilter) ([]*entity.Subscription, int64, error)

	// FindActiveSubscriptionsByUser retrieves every non-cancelled subscription of a user.
	FindActiveSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// FindActiveSubscriptions retrieves every non-cancelled subscription in the system.
	FindActiveSubscriptions(ctx context.Context) ([]*entity.Subscription, error)

	// CountSubscriptionsByUser counts the non-deleted subscriptions of a user.
	CountSubscriptionsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// UpdateSubscription overwrites the editable fields of a subscription.
	UpdateSubscription(ctx context.Context, sub *entity.Subscription) error

	// CancelSubscription marks a subscription cancelled at the given time.
	CancelSubscription(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error

	// DeleteSubscription soft-deletes a subscription.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error
}
