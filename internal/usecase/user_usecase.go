package usecase

import (
	"context"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the account use cases available to an authenticated user.
type UserUsecase interface {
	// GetProfile returns the user's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdatePreferences applies the non-nil preference fields and returns the updated account.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entity.UserPreferences) (*entity.User, error)

	// UpdateFCMToken sets the legacy single-device push token.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
