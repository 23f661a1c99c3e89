// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies audit records.
type NotificationType string

const (
	NotificationTypeRenewal NotificationType = "renewal"
	NotificationTypePayment NotificationType = "payment"
	NotificationTypeSystem  NotificationType = "system"
)

// Notification is the audit record of a reminder shown in the user's inbox.
// Records are immutable except for the unread to read transition.
type Notification struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	SubscriptionID *uuid.UUID       `json:"subscription_id"` // Cleared when the subscription is removed.
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"notification_type"`
	IsRead         bool             `json:"is_read"`
	ReadAt         *time.Time       `json:"read_at"`
	CreatedAt      time.Time        `json:"created_at"`
}

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	IsRead  *bool
	Page    int
	PerPage int
}

// PushMessage is the payload handed to the push gateway.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
