package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new token, refreshes a known one or takes it over from its previous owner.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.DeviceToken, entity.DeviceRegistration, error) {
	var (
		device  *entity.DeviceToken
		outcome entity.DeviceRegistration
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()
		now := s.now()

		existing, err := deviceRepo.FindDeviceByToken(ctx, deviceInfo.FCMToken)
		if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(err, "failed to find device by token")
		}

		if existing == nil {
			device = &entity.DeviceToken{
				ID:         uuid.New(),
				UserID:     userID,
				FCMToken:   deviceInfo.FCMToken,
				DeviceType: deviceInfo.DeviceType,
				DeviceName: deviceInfo.DeviceName,
				AppVersion: deviceInfo.AppVersion,
				IsActive:   true,
				LastUsedAt: &now,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			outcome = entity.DeviceRegistrationCreated

			if err := deviceRepo.CreateDevice(ctx, device); err != nil {
				if errors.Is(err, repository.ErrDuplicateDevice) {
					return domainerrors.ErrConflict.WrapMessage("device token registered concurrently")
				}

				return errors.Wrap(err, "failed to create device")
			}

			return nil
		}

		outcome = entity.DeviceRegistrationUpdated
		if existing.UserID != userID {
			s.log(ctx).Info("Reassigning device token to new owner",
				slog.String("deviceID", existing.ID.String()),
				slog.String("previousUserID", existing.UserID.String()),
				slog.String("userID", userID.String()))

			existing.UserID = userID
			outcome = entity.DeviceRegistrationReassigned
		}

		if deviceInfo.DeviceType != "" {
			existing.DeviceType = deviceInfo.DeviceType
		}
		if deviceInfo.DeviceName != "" {
			existing.DeviceName = deviceInfo.DeviceName
		}
		if deviceInfo.AppVersion != "" {
			existing.AppVersion = deviceInfo.AppVersion
		}
		existing.IsActive = true
		existing.LastUsedAt = &now
		existing.UpdatedAt = now
		device = existing

		return errors.Wrap(deviceRepo.UpdateDevice(ctx, device), "failed to update device")
	})
	if err != nil {
		return nil, "", err
	}

	return device, outcome, nil
}

// GetUserDevices retrieves all devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// findOwned fetches a device and verifies ownership
func (s *deviceService) findOwned(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceToken, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	return device, nil
}

// DeleteDevice removes a device of the user
func (s *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// DeleteDeviceByToken removes the user's device holding the token
func (s *deviceService) DeleteDeviceByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	device, err := s.deviceRepo.FindDeviceByToken(ctx, fcmToken)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by token")
	}

	// Another user's token is reported as missing.
	if device.UserID != userID {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// DeactivateDevice stops deliveries to a device
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceToken, error) {
	return s.setActive(ctx, userID, deviceID, false)
}

// ActivateDevice resumes deliveries to a device
func (s *deviceService) ActivateDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceToken, error) {
	return s.setActive(ctx, userID, deviceID, true)
}

func (s *deviceService) setActive(ctx context.Context, userID, deviceID uuid.UUID, active bool) (*entity.DeviceToken, error) {
	device, err := s.findOwned(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.SetDeviceActive(ctx, deviceID, active); err != nil {
		return nil, errors.Wrap(err, "failed to update device status")
	}

	device.IsActive = active
	device.UpdatedAt = s.now()

	return device, nil
}
