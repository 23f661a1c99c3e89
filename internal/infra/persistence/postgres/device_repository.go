// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device token.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.DeviceToken) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.DeviceToken, error) {
	var deviceM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByToken retrieves a device by its FCM token.
func (repo *deviceRepository) FindDeviceByToken(ctx context.Context, fcmToken string) (*entity.DeviceToken, error) {
	var deviceM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("fcm_token = ?", fcmToken).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by token")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices for a user, most recently used first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_used_at DESC NULLS LAST").
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByUser retrieves all active devices for a user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindActiveDevicesByUsers retrieves all active devices owned by any of the given users.
func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceToken, error) {
	if len(userIDs) == 0 {
		return []*entity.DeviceToken{}, nil
	}

	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", lo.Uniq(userIDs), true).
		Order("user_id, created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	return toDeviceDomains(deviceModels), nil
}

// FindAllActiveDevices retrieves every active device.
func (repo *deviceRepository) FindAllActiveDevices(ctx context.Context) ([]*entity.DeviceToken, error) {
	var deviceModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("user_id, created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	return toDeviceDomains(deviceModels), nil
}

// UpdateDevice overwrites owner, metadata and activity of an existing device.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.DeviceToken) error {
	deviceM := fromDeviceDomain(device)

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"user_id":      deviceM.UserID,
			"device_type":  deviceM.DeviceType,
			"device_name":  deviceM.DeviceName,
			"app_version":  deviceM.AppVersion,
			"is_active":    deviceM.IsActive,
			"last_used_at": deviceM.LastUsedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// TouchDevice records a successful delivery.
func (repo *deviceRepository) TouchDevice(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	return repo.updateColumn(ctx, id, "last_used_at", usedAt)
}

// SetDeviceActive flips the active flag of a device.
func (repo *deviceRepository) SetDeviceActive(ctx context.Context, id uuid.UUID, active bool) error {
	return repo.updateColumn(ctx, id, "is_active", active)
}

func (repo *deviceRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update device %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomains(models []*model.DeviceTokenModel) []*entity.DeviceToken {
	return lo.Map(models, func(deviceM *model.DeviceTokenModel, _ int) *entity.DeviceToken {
		return toDeviceDomain(deviceM)
	})
}

// toDeviceDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		DeviceType: lo.FromPtr(data.DeviceType),
		DeviceName: lo.FromPtr(data.DeviceName),
		AppVersion: lo.FromPtr(data.AppVersion),
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		DeviceType: lo.EmptyableToPtr(data.DeviceType),
		DeviceName: lo.EmptyableToPtr(data.DeviceName),
		AppVersion: lo.EmptyableToPtr(data.AppVersion),
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
