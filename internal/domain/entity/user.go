// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tier names.
const (
	TierFree = "free"
	TierPro  = "pro"
)

// User is the account that owns subscriptions and devices.
type User struct {
	ID                   uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email                string     // Empty for guest accounts.
	FullName             string     // The user's display name.
	IsGuest              bool       // Guest accounts have no email.
	FCMToken             string     // Legacy single-device push token, superseded by DeviceToken.
	NotificationsEnabled bool       // Master switch for renewal reminders.
	Locale               string     // Preferred language, e.g. "en".
	CurrencyCode         string     // Preferred display currency.
	Tier                 string     // free or pro.
	TierExpiresAt        *time.Time // End of a paid tier, nil when not applicable.
	IsAdmin              bool       // Grants access to the admin API.
	CreatedAt            time.Time  // Timestamp of when this user account was created.
	UpdatedAt            time.Time  // Timestamp of the last modification to this user's data.
}

// EffectiveTier returns the tier in force at now; an expired paid tier falls back to free.
func (u *User) EffectiveTier(now time.Time) string {
	if u.Tier == TierPro && (u.TierExpiresAt == nil || u.TierExpiresAt.After(now)) {
		return TierPro
	}

	return TierFree
}

// UserPreferences carries the user-editable settings. Nil fields are left unchanged.
type UserPreferences struct {
	NotificationsEnabled *bool
	Locale               *string
	CurrencyCode         *string
}
