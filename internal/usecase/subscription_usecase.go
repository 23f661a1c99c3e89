package usecase

import (
	"context"
	"time"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionInput carries the fields of a new subscription.
type SubscriptionInput struct {
	Name               string
	IconURL            string
	Price              decimal.Decimal
	CurrencyCode       string
	StartDate          time.Time
	BillingCycleCount  int
	BillingCyclePeriod string
	Category           string
	Notes              string
}

// SubscriptionUpdate carries a partial update. Nil fields are left unchanged.
type SubscriptionUpdate struct {
	Name               *string
	IconURL            *string
	Price              *decimal.Decimal
	CurrencyCode       *string
	StartDate          *time.Time
	BillingCycleCount  *int
	BillingCyclePeriod *string
	Category           *string
	Notes              *string
}

// SubscriptionPage is one page of a subscription listing.
type SubscriptionPage struct {
	Subscriptions []*entity.Subscription
	Total         int64
	Page          int
	PerPage       int
}

// SubscriptionUsecase defines the owner-facing subscription use cases.
type SubscriptionUsecase interface {
	// CreateSubscription adds a subscription, enforcing the owner's tier limit.
	CreateSubscription(ctx context.Context, userID uuid.UUID, input *SubscriptionInput) (*entity.Subscription, error)

	// ListSubscriptions lists the owner's subscriptions.
	ListSubscriptions(ctx context.Context, userID uuid.UUID, filter entity.SubscriptionFilter) (*SubscriptionPage, error)

	// GetSubscription returns one subscription of the owner.
	GetSubscription(ctx context.Context, userID, id uuid.UUID) (*entity.Subscription, error)

	// UpdateSubscription applies a partial update.
	UpdateSubscription(ctx context.Context, userID, id uuid.UUID, input *SubscriptionUpdate) (*entity.Subscription, error)

	// DeleteSubscription soft-deletes a subscription.
	DeleteSubscription(ctx context.Context, userID, id uuid.UUID) error

	// CancelSubscription stops reminders for a subscription.
	CancelSubscription(ctx context.Context, userID, id uuid.UUID) (*entity.Subscription, error)

	// GetStats summarises the owner's spending in the current month.
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionStats, error)

	// GetCalendar groups the active subscriptions billed in the given month by day.
	GetCalendar(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.CalendarDay, error)
}
