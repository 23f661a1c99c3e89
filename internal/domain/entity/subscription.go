// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"subtrack/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is a recurring payment tracked by a user.
type Subscription struct {
	ID                 uuid.UUID       `json:"id"`                   // The Global Unique Identifier (GUID) for the subscription.
	UserID             uuid.UUID       `json:"user_id"`              // The owner of the subscription.
	Name               string          `json:"name"`                 // Display name, e.g. "Netflix".
	IconURL            string          `json:"icon_url"`             // Optional icon shown by clients.
	Price              decimal.Decimal `json:"price"`                // Amount charged per billing cycle.
	CurrencyCode       string          `json:"currency_code"`        // ISO 4217 currency code.
	StartDate          time.Time       `json:"start_date"`           // First billing date, time component zeroed.
	BillingCycleCount  int             `json:"billing_cycle_count"`  // Number of periods per cycle.
	BillingCyclePeriod billing.Period  `json:"billing_cycle_period"` // Unit of the cycle.
	Category           string          `json:"category"`             // Free-form grouping label.
	Notes              string          `json:"notes"`                // Free-form notes.
	IsCancelled        bool            `json:"is_cancelled"`         // Cancelled subscriptions are never reminded.
	CancelledAt        *time.Time      `json:"cancelled_at"`         // When the subscription was cancelled.
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// BillingStart implements billing.Schedulable.
func (s *Subscription) BillingStart() time.Time {
	return s.StartDate
}

// BillingCycle implements billing.Schedulable.
func (s *Subscription) BillingCycle() billing.Cycle {
	return billing.Cycle{Count: s.BillingCycleCount, Period: s.BillingCyclePeriod}
}

// NextBillingDate returns the next pending billing date as seen at now. A billing date of today is still pending.
func (s *Subscription) NextBillingDate(now time.Time) time.Time {
	return billing.NextDueDate(s, now)
}

// MonthlyCost returns the price normalised to one month.
func (s *Subscription) MonthlyCost() decimal.Decimal {
	return s.BillingCycle().MonthlyCost(s.Price)
}

// SubscriptionFilter narrows a subscription listing.
type SubscriptionFilter struct {
	Category    string
	IsCancelled *bool
	Page        int
	PerPage     int
}

// SubscriptionStats summarises a user's spending for the current month.
type SubscriptionStats struct {
	TotalMonthlyCost    decimal.Decimal `json:"total_monthly_cost"`
	PaidAmount          decimal.Decimal `json:"paid_amount"`
	RemainingAmount     decimal.Decimal `json:"remaining_amount"`
	ActiveSubscriptions int             `json:"active_subscriptions"`
}

// CalendarDay groups the subscriptions billed on one day of a month.
type CalendarDay struct {
	Date          string          `json:"date"`
	Subscriptions []*Subscription `json:"subscriptions"`
}
