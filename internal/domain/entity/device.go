// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device types reported by clients.
const (
	DeviceTypeAndroid = "android"
	DeviceTypeIOS     = "ios"
	DeviceTypeWeb     = "web"
)

// DeviceToken represents a push endpoint registered by a user. A token string belongs to at most one user.
type DeviceToken struct {
	ID         uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID  `json:"user_id"`      // The ID of the user who currently owns this token.
	FCMToken   string     `json:"fcm_token"`    // Firebase Cloud Messaging token for push notifications.
	DeviceType string     `json:"device_type"`  // android, ios, web or empty.
	DeviceName string     `json:"device_name"`  // Human readable device label.
	AppVersion string     `json:"app_version"`  // Client version that registered the token.
	IsActive   bool       `json:"is_active"`    // Inactive devices are skipped by the dispatcher.
	LastUsedAt *time.Time `json:"last_used_at"` // Last successful delivery or registration.
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// DeviceRegistration is the outcome of registering a token.
type DeviceRegistration string

const (
	DeviceRegistrationCreated    DeviceRegistration = "created"
	DeviceRegistrationUpdated    DeviceRegistration = "updated"
	DeviceRegistrationReassigned DeviceRegistration = "reassigned"
)
