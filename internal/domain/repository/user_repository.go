// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindUserByID retrieves a single user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdatePreferences applies the non-nil preference fields.
	UpdatePreferences(ctx context.Context, id uuid.UUID, prefs entity.UserPreferences) error

	// UpdateFCMToken sets the legacy single-device token. An empty token clears it.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error
}
