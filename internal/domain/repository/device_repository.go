// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device whose token already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device token database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device token.
	CreateDevice(ctx context.Context, device *entity.DeviceToken) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.DeviceToken, error)

	// FindDeviceByToken retrieves a device by its FCM token, regardless of owner.
	FindDeviceByToken(ctx context.Context, fcmToken string) (*entity.DeviceToken, error)

	// FindDevicesByUser retrieves all devices for a user (including inactive), most recently used first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// FindActiveDevicesByUsers retrieves all active devices owned by any of the given users.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceToken, error)

	// FindAllActiveDevices retrieves every active device.
	FindAllActiveDevices(ctx context.Context) ([]*entity.DeviceToken, error)

	// UpdateDevice overwrites owner, metadata and activity of an existing device.
	UpdateDevice(ctx context.Context, device *entity.DeviceToken) error

	// TouchDevice records a successful delivery at the given time.
	TouchDevice(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// SetDeviceActive flips the active flag of a device.
	SetDeviceActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
