package impl

import (
	"context"
	"testing"
	"time"

	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	mockRepo "subtrack/internal/mocks/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	txDevice    *mockRepo.MockDeviceRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	now         time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	txDevice := mockRepo.NewMockDeviceRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	service := NewDeviceService(DeviceServiceParams{
		TxManager:  txManager,
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})
	service.(*deviceService).now = fixedClock(now)

	return deviceServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		txDevice:    txDevice,
		deviceRepo:  deviceRepo,
		now:         now,
	}
}

func (fx deviceServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewDeviceRepository().Return(fx.txDevice)
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken:   "test-fcm-token",
		DeviceType: entity.DeviceTypeIOS,
		DeviceName: "iPhone",
		AppVersion: "1.2.0",
	}
	fx.expectTransaction(ctx)

	fx.txDevice.EXPECT().
		FindDeviceByToken(ctx, deviceInfo.FCMToken).
		Return(nil, repository.ErrDeviceNotFound)

	fx.txDevice.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(nil)

	device, outcome, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceRegistrationCreated, outcome)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, entity.DeviceTypeIOS, device.DeviceType)
	assert.True(t, device.IsActive)
	require.NotNil(t, device.LastUsedAt)
	assert.Equal(t, fx.now, *device.LastUsedAt)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.DeviceToken{
		ID:         uuid.New(),
		UserID:     userID,
		FCMToken:   "same-token",
		DeviceType: entity.DeviceTypeAndroid,
		DeviceName: "Pixel",
		IsActive:   false,
	}
	fx.expectTransaction(ctx)

	fx.txDevice.EXPECT().FindDeviceByToken(ctx, "same-token").Return(existing, nil)
	fx.txDevice.EXPECT().UpdateDevice(ctx, existing).Return(nil)

	device, outcome, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "same-token", AppVersion: "2.0.0"})
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceRegistrationUpdated, outcome)
	assert.True(t, device.IsActive)
	assert.Equal(t, "Pixel", device.DeviceName)
	assert.Equal(t, "2.0.0", device.AppVersion)
}

func TestDeviceService_RegisterDevice_ReassignFromOtherUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	previousOwner := uuid.New()
	newOwner := uuid.New()
	existing := &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   previousOwner,
		FCMToken: "shared-token",
		IsActive: true,
	}
	fx.expectTransaction(ctx)

	fx.txDevice.EXPECT().FindDeviceByToken(ctx, "shared-token").Return(existing, nil)
	fx.txDevice.EXPECT().
		UpdateDevice(ctx, mock.MatchedBy(func(d *entity.DeviceToken) bool {
			return d.ID == existing.ID && d.UserID == newOwner
		})).
		Return(nil)

	device, outcome, err := fx.service.RegisterDevice(ctx, newOwner, &usecase.DeviceInfo{FCMToken: "shared-token"})
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceRegistrationReassigned, outcome)
	assert.Equal(t, newOwner, device.UserID)
	assert.Equal(t, existing.ID, device.ID)
}

func TestDeviceService_RegisterDevice_LookupError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.txDevice.EXPECT().FindDeviceByToken(ctx, "token").Return(nil, errors.New("db down"))

	device, outcome, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "token"})
	require.Error(t, err)
	assert.Nil(t, device)
	assert.Empty(t, outcome)
}

func TestDeviceService_RegisterDevice_ConcurrentCreate(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.expectTransaction(ctx)
	fx.txDevice.EXPECT().FindDeviceByToken(ctx, "token").Return(nil, repository.ErrDeviceNotFound)
	fx.txDevice.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, _, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "token"})
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.DeviceToken{{ID: uuid.New(), UserID: userID}, {ID: uuid.New(), UserID: userID}}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_DeleteDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device := &entity.DeviceToken{ID: uuid.New(), UserID: userID}
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

		require.NoError(t, fx.service.DeleteDevice(ctx, userID, device.ID))
	})

	t.Run("other owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device := &entity.DeviceToken{ID: uuid.New(), UserID: uuid.New()}
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

		err := fx.service.DeleteDevice(ctx, userID, device.ID)
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestDeviceService(t)
		id := uuid.New()
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.DeleteDevice(ctx, userID, id)
		require.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_DeleteDeviceByToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device := &entity.DeviceToken{ID: uuid.New(), UserID: userID, FCMToken: "token"}
		fx.deviceRepo.EXPECT().FindDeviceByToken(ctx, "token").Return(device, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

		require.NoError(t, fx.service.DeleteDeviceByToken(ctx, userID, "token"))
	})

	t.Run("token of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		device := &entity.DeviceToken{ID: uuid.New(), UserID: uuid.New(), FCMToken: "token"}
		fx.deviceRepo.EXPECT().FindDeviceByToken(ctx, "token").Return(device, nil)

		err := fx.service.DeleteDeviceByToken(ctx, userID, "token")
		require.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_DeactivateAndActivate(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.DeviceToken{ID: uuid.New(), UserID: userID, IsActive: true}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil).Twice()
	fx.deviceRepo.EXPECT().SetDeviceActive(ctx, device.ID, false).Return(nil).Once()
	fx.deviceRepo.EXPECT().SetDeviceActive(ctx, device.ID, true).Return(nil).Once()

	got, err := fx.service.DeactivateDevice(ctx, userID, device.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = fx.service.ActivateDevice(ctx, userID, device.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}
