package usecase

import (
	"context"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken   string `json:"fcm_token"`
	DeviceType string `json:"device_type"`
	DeviceName string `json:"device_name"`
	AppVersion string `json:"app_version"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a token for the user, taking it over if another user owned it
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.DeviceToken, entity.DeviceRegistration, error)

	// GetUserDevices retrieves all devices for a user, most recently used first
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteDevice removes a device of the user
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	// DeleteDeviceByToken removes the user's device holding the token
	DeleteDeviceByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error

	// DeactivateDevice stops deliveries to a device without removing it
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceToken, error)

	// ActivateDevice resumes deliveries to a device
	ActivateDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceToken, error)
}
