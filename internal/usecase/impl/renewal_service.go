package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/domain/service"
	"subtrack/internal/usecase"
	"subtrack/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const (
	dueDateLayout = "2006-01-02"

	// runWarnThreshold is the interval between two runs of the same trigger.
	runWarnThreshold = 24 * time.Hour
)

type renewalService struct {
	subscriptionRepo repository.SubscriptionRepository
	dispatcher       usecase.DispatchUsecase
	publisher        service.EventPublisher
	mode             string
	location         *time.Location
	logger           *slog.Logger
	now              func() time.Time

	mu       sync.Mutex
	runLocks map[int]*sync.Mutex
}

// RenewalServiceParams holds dependencies for RenewalService, injected by Fx.
type RenewalServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Dispatcher       usecase.DispatchUsecase
	Publisher        service.EventPublisher `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewRenewalService creates the renewal run driver.
func NewRenewalService(params RenewalServiceParams) (usecase.RenewalUsecase, error) {
	mode := config.SchedulerModeInline
	location := time.UTC
	if params.Config != nil && params.Config.Scheduler != nil {
		if params.Config.Scheduler.Mode != "" {
			mode = params.Config.Scheduler.Mode
		}

		loc, err := params.Config.Scheduler.LoadLocation()
		if err != nil {
			return nil, err
		}
		location = loc
	}

	switch mode {
	case config.SchedulerModeInline:
	case config.SchedulerModeQueued:
		if params.Publisher == nil {
			return nil, errors.New("queued renewal mode requires an event publisher")
		}
	default:
		return nil, errors.Errorf("unknown scheduler mode %q", mode)
	}

	return &renewalService{
		subscriptionRepo: params.SubscriptionRepo,
		dispatcher:       params.Dispatcher,
		publisher:        params.Publisher,
		mode:             mode,
		location:         location,
		logger:           params.Logger,
		now:              time.Now,
		runLocks:         make(map[int]*sync.Mutex),
	}, nil
}

func (s *renewalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *renewalService) runLock(daysAhead int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.runLocks[daysAhead]
	if !ok {
		lock = &sync.Mutex{}
		s.runLocks[daysAhead] = lock
	}

	return lock
}

// Run reminds the owners of every subscription due in daysAhead days.
func (s *renewalService) Run(ctx context.Context, daysAhead int) (*usecase.RunReport, error) {
	if daysAhead < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("days ahead must not be negative")
	}

	lock := s.runLock(daysAhead)
	if !lock.TryLock() {
		s.log(ctx).Warn("Renewal run already in progress, skipping", slog.Int("daysAhead", daysAhead))

		return nil, domainerrors.ErrRenewalRunInProgress
	}
	defer lock.Unlock()

	now := s.now().In(s.location)
	report := &usecase.RunReport{
		DaysAhead:  daysAhead,
		TargetDate: billing.TargetDate(now, daysAhead).Format(dueDateLayout),
		Mode:       s.mode,
		StartedAt:  now,
	}

	s.log(ctx).Info("Starting renewal run",
		slog.Int("daysAhead", daysAhead),
		slog.String("targetDate", report.TargetDate),
		slog.String("mode", s.mode))

	subs, err := s.subscriptionRepo.FindActiveSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions")
	}

	active := lo.Filter(subs, func(sub *entity.Subscription, _ int) bool { return !sub.IsCancelled })
	due := billing.FindDue(active, daysAhead, now)
	report.Candidates = len(active)
	report.Due = len(due)

	for _, sub := range due {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "renewal run interrupted")
		}

		if s.mode == config.SchedulerModeQueued {
			s.publish(ctx, sub, daysAhead, report)

			continue
		}

		s.dispatch(ctx, sub, daysAhead, report)
	}

	report.Duration = s.now().Sub(report.StartedAt)

	logger := s.log(ctx).With(
		slog.Int("daysAhead", daysAhead),
		slog.Int("candidates", report.Candidates),
		slog.Int("due", report.Due),
		slog.Int("dispatched", report.Dispatched),
		slog.Int("published", report.Published),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("devicesSucceeded", report.DevicesSucceeded),
		slog.Int("devicesFailed", report.DevicesFailed),
		slog.Duration("duration", report.Duration),
	)
	if report.Duration > runWarnThreshold {
		logger.Warn("Renewal run took longer than the trigger interval",
			slog.String("elapsed", util.FormatDuration(report.Duration)),
		)
	} else {
		logger.Info("Renewal run completed")
	}

	return report, nil
}

func (s *renewalService) dispatch(ctx context.Context, sub *entity.Subscription, daysAhead int, report *usecase.RunReport) {
	result, err := s.dispatcher.DispatchRenewal(ctx, sub, daysAhead)
	if err != nil {
		report.Failed++
		s.log(ctx).Error("Failed to dispatch renewal reminder",
			slog.String("subscriptionID", sub.ID.String()),
			slog.Any("error", err))

		return
	}

	switch {
	case result.Skipped:
		report.Skipped++
	case result.NoRecipients:
		report.NoRecipients++
	default:
		report.Dispatched++
	}
	report.DevicesSucceeded += result.SuccessCount
	report.DevicesFailed += result.FailedCount
}

func (s *renewalService) publish(ctx context.Context, sub *entity.Subscription, daysAhead int, report *usecase.RunReport) {
	event := &service.RenewalDueEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		SubscriptionID: sub.ID.String(),
		UserID:         sub.UserID.String(),
		DaysAhead:      daysAhead,
		DueDate:        report.TargetDate,
	}

	if err := s.publisher.PublishRenewalDue(ctx, event); err != nil {
		report.Failed++
		s.log(ctx).Error("Failed to publish renewal event",
			slog.String("subscriptionID", sub.ID.String()),
			slog.Any("error", err))

		return
	}

	report.Published++
}

// ProcessRenewalEvent reloads the subscription named by event and reminds its owner when the
// subscription still renews on the event's due date.
func (s *renewalService) ProcessRenewalEvent(ctx context.Context, event *service.RenewalDueEvent) (*usecase.DispatchResult, error) {
	subscriptionID, err := uuid.Parse(event.SubscriptionID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid subscription_id in renewal event")
	}

	dueDate, err := time.ParseInLocation(dueDateLayout, event.DueDate, s.location)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid due_date in renewal event")
	}

	if event.DaysAhead < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("days ahead must not be negative")
	}

	logger := s.log(ctx).With(
		slog.String("subscriptionID", event.SubscriptionID),
		slog.String("dueDate", event.DueDate),
		slog.Int("daysAhead", event.DaysAhead),
	)

	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			logger.Info("Subscription removed before the reminder was processed, dropping event")

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	if sub.IsCancelled {
		logger.Info("Subscription cancelled before the reminder was processed, dropping event")

		return nil, nil
	}

	next := sub.BillingCycle().NextOccurrence(sub.BillingStart(), dueDate.Add(-time.Nanosecond))
	if !billing.SameDate(next, dueDate) {
		logger.Info("Subscription no longer renews on the due date, dropping event",
			slog.String("nextBillingDate", next.Format(dueDateLayout)))

		return nil, nil
	}

	return s.dispatcher.DispatchRenewal(ctx, sub, event.DaysAhead)
}
