package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/constants"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/domain/service"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/fx"
)

const defaultDispatchConcurrency = 8

// deliveryTarget is one token to push to. device is nil for the legacy user token.
type deliveryTarget struct {
	device *entity.DeviceToken
	token  string
}

type dispatchService struct {
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	pushService      service.PushService
	maxConcurrency   int
	logger           *slog.Logger
	now              func() time.Time
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
	PushService      service.PushService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDispatchService creates the notification dispatcher.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	maxConcurrency := defaultDispatchConcurrency
	if params.Config != nil && params.Config.Dispatch != nil && params.Config.Dispatch.MaxConcurrency > 0 {
		maxConcurrency = params.Config.Dispatch.MaxConcurrency
	}

	return &dispatchService{
		userRepo:         params.UserRepo,
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
		pushService:      params.PushService,
		maxConcurrency:   maxConcurrency,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// DispatchRenewal reminds the owner of sub on every device and records one audit notification.
func (s *dispatchService) DispatchRenewal(ctx context.Context, sub *entity.Subscription, daysAhead int) (*usecase.DispatchResult, error) {
	user, err := s.userRepo.FindUserByID(ctx, sub.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(fmt.Sprintf("owner %s of subscription %s", sub.UserID, sub.ID))
		}

		return nil, errors.Wrap(err, "failed to find subscription owner")
	}

	if !user.NotificationsEnabled {
		s.log(ctx).Debug("Owner disabled notifications, skipping renewal reminder",
			slog.String("subscriptionID", sub.ID.String()),
			slog.String("userID", user.ID.String()))

		return &usecase.DispatchResult{Skipped: true, FailedDevices: []usecase.FailedDevice{}}, nil
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	targets := renewalTargets(user, devices)
	msg := renderRenewalMessage(sub, daysAhead)

	var result *usecase.DispatchResult
	if len(targets) == 0 {
		result = &usecase.DispatchResult{NoRecipients: true, FailedDevices: []usecase.FailedDevice{}}
	} else {
		result = s.deliver(ctx, targets, msg)
	}

	s.recordRenewal(ctx, sub, msg)

	return result, nil
}

// renewalTargets returns the active device tokens of user plus its legacy token when that token
// is not registered as a device.
func renewalTargets(user *entity.User, devices []*entity.DeviceToken) []deliveryTarget {
	targets := make([]deliveryTarget, 0, len(devices)+1)

	registered := lo.SliceToMap(devices, func(d *entity.DeviceToken) (string, struct{}) {
		return d.FCMToken, struct{}{}
	})
	if user.FCMToken != "" {
		if _, ok := registered[user.FCMToken]; !ok {
			targets = append(targets, deliveryTarget{token: user.FCMToken})
		}
	}

	for _, device := range devices {
		if device.IsActive {
			targets = append(targets, deliveryTarget{device: device, token: device.FCMToken})
		}
	}

	return targets
}

func (s *dispatchService) recordRenewal(ctx context.Context, sub *entity.Subscription, msg *entity.PushMessage) {
	subscriptionID := sub.ID
	notification := &entity.Notification{
		ID:             uuid.New(),
		UserID:         sub.UserID,
		SubscriptionID: &subscriptionID,
		Title:          msg.Title,
		Message:        msg.Body,
		Type:           entity.NotificationTypeRenewal,
		CreatedAt:      s.now(),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.log(ctx).Error("Renewal reminder delivered but unrecorded",
			slog.String("subscriptionID", sub.ID.String()),
			slog.String("userID", sub.UserID.String()),
			slog.Any("error", err))
	}
}

// DispatchToUser sends msg to every active device of one user.
func (s *dispatchService) DispatchToUser(ctx context.Context, userID uuid.UUID, msg *entity.PushMessage) (*usecase.DispatchResult, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return s.broadcast(ctx, devices, msg), nil
}

// DispatchToUsers sends msg to every active device of the given users.
func (s *dispatchService) DispatchToUsers(ctx context.Context, userIDs []uuid.UUID, msg *entity.PushMessage) (*usecase.DispatchResult, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, lo.Uniq(userIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by users")
	}

	return s.broadcast(ctx, devices, msg), nil
}

// DispatchToAll sends msg to every active device.
func (s *dispatchService) DispatchToAll(ctx context.Context, msg *entity.PushMessage) (*usecase.DispatchResult, error) {
	devices, err := s.deviceRepo.FindAllActiveDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all active devices")
	}

	return s.broadcast(ctx, devices, msg), nil
}

func (s *dispatchService) broadcast(ctx context.Context, devices []*entity.DeviceToken, msg *entity.PushMessage) *usecase.DispatchResult {
	if len(devices) == 0 {
		return &usecase.DispatchResult{NoRecipients: true, FailedDevices: []usecase.FailedDevice{}}
	}

	targets := lo.Map(devices, func(d *entity.DeviceToken, _ int) deliveryTarget {
		return deliveryTarget{device: d, token: d.FCMToken}
	})

	return s.deliver(ctx, targets, msg)
}

// deliver pushes msg to every target with bounded concurrency. A failed device is deactivated and a
// delivered one is touched; neither affects the other targets.
func (s *dispatchService) deliver(ctx context.Context, targets []deliveryTarget, msg *entity.PushMessage) *usecase.DispatchResult {
	type failure struct {
		index  int
		device usecase.FailedDevice
	}

	var (
		mu        sync.Mutex
		succeeded int
		failures  []failure
	)

	p := pool.New().WithMaxGoroutines(s.maxConcurrency)
	for i, target := range targets {
		p.Go(func() {
			err := s.pushService.Send(ctx, target.token, msg.Title, msg.Body, msg.Data)
			if err != nil {
				s.handleFailedDelivery(ctx, target, err)

				mu.Lock()
				failures = append(failures, failure{index: i, device: failedDevice(target, err)})
				mu.Unlock()

				return
			}

			s.handleDelivered(ctx, target)

			mu.Lock()
			succeeded++
			mu.Unlock()
		})
	}
	p.Wait()

	slices.SortFunc(failures, func(a, b failure) int { return a.index - b.index })

	return &usecase.DispatchResult{
		TotalDevices:  len(targets),
		SuccessCount:  succeeded,
		FailedCount:   len(failures),
		FailedDevices: lo.Map(failures, func(f failure, _ int) usecase.FailedDevice { return f.device }),
	}
}

func (s *dispatchService) handleFailedDelivery(ctx context.Context, target deliveryTarget, sendErr error) {
	if target.device == nil {
		s.log(ctx).Warn("Push to legacy token failed", slog.Any("error", sendErr))

		return
	}

	s.log(ctx).Warn("Push to device failed, deactivating",
		slog.String("deviceID", target.device.ID.String()),
		slog.Any("error", sendErr))

	if err := s.deviceRepo.SetDeviceActive(ctx, target.device.ID, false); err != nil {
		s.log(ctx).Error("Failed to deactivate device",
			slog.String("deviceID", target.device.ID.String()),
			slog.Any("error", err))
	}
}

func (s *dispatchService) handleDelivered(ctx context.Context, target deliveryTarget) {
	if target.device == nil {
		return
	}

	if err := s.deviceRepo.TouchDevice(ctx, target.device.ID, s.now()); err != nil {
		s.log(ctx).Warn("Failed to record device usage",
			slog.String("deviceID", target.device.ID.String()),
			slog.Any("error", err))
	}
}

func failedDevice(target deliveryTarget, err error) usecase.FailedDevice {
	failed := usecase.FailedDevice{Token: target.token, Error: err.Error()}
	if target.device != nil {
		failed.DeviceID = lo.ToPtr(target.device.ID)
	}

	return failed
}

// renderRenewalMessage builds the reminder for sub due in daysAhead days.
func renderRenewalMessage(sub *entity.Subscription, daysAhead int) *entity.PushMessage {
	var title, when string
	switch daysAhead {
	case 0:
		title, when = "Renewal Due Today", "today"
	case 1:
		title, when = "Renewal Due Tomorrow", "tomorrow"
	default:
		title = fmt.Sprintf("Renewal Due in %d Days", daysAhead)
		when = fmt.Sprintf("in %d days", daysAhead)
	}

	return &entity.PushMessage{
		Title: title,
		Body:  fmt.Sprintf("%s renewal of %s %s is due %s.", sub.Name, sub.CurrencyCode, sub.Price.StringFixed(2), when),
		Data: map[string]string{
			constants.PushDataSubscriptionID: sub.ID.String(),
			constants.PushDataType:           string(entity.NotificationTypeRenewal),
			constants.PushDataDaysAhead:      strconv.Itoa(daysAhead),
		},
	}
}
