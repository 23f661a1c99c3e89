// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"subtrack/internal/domain/entity"
	"subtrack/internal/domain/repository"
	"subtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a single user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// UpdatePreferences applies the non-nil preference fields.
func (repo *userRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs entity.UserPreferences) error {
	updates := make(map[string]any, 3)
	if prefs.NotificationsEnabled != nil {
		updates["notifications_enabled"] = *prefs.NotificationsEnabled
	}
	if prefs.Locale != nil {
		updates["locale"] = *prefs.Locale
	}
	if prefs.CurrencyCode != nil {
		updates["currency_code"] = *prefs.CurrencyCode
	}
	if len(updates) == 0 {
		return nil
	}

	return repo.update(ctx, id, updates)
}

// UpdateFCMToken sets or clears the legacy single-device token.
func (repo *userRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	return repo.update(ctx, id, map[string]any{"fcm_token": lo.EmptyableToPtr(fcmToken)})
}

func (repo *userRepository) update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		Email:                lo.FromPtr(data.Email),
		FullName:             data.FullName,
		IsGuest:              data.IsGuest,
		FCMToken:             lo.FromPtr(data.FCMToken),
		NotificationsEnabled: data.NotificationsEnabled,
		Locale:               data.Locale,
		CurrencyCode:         data.CurrencyCode,
		Tier:                 data.Tier,
		TierExpiresAt:        data.TierExpiresAt,
		IsAdmin:              data.IsAdmin,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
