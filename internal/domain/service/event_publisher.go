package service

import (
	"context"
)

// RenewalDueEvent asks the renewal worker to remind the owner of one subscription.
type RenewalDueEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	SubscriptionID string `json:"subscription_id"`
	UserID         string `json:"user_id"`
	DaysAhead      int    `json:"days_ahead"`
	DueDate        string `json:"due_date"` // YYYY-MM-DD in the scheduler location
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRenewalDue publishes a renewal event for async processing
	PublishRenewalDue(ctx context.Context, event *RenewalDueEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
