package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	tierLimits       config.TierLimitsConfig
	location         *time.Location
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) (usecase.SubscriptionUsecase, error) {
	srv := &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		location:         time.UTC,
		logger:           params.Logger,
		now:              time.Now,
	}

	if params.Config != nil {
		if params.Config.TierLimits != nil {
			srv.tierLimits = *params.Config.TierLimits
		}
		if params.Config.Scheduler != nil {
			loc, err := params.Config.Scheduler.LoadLocation()
			if err != nil {
				return nil, err
			}
			srv.location = loc
		}
	}

	return srv, nil
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// tierLimit returns the subscription cap of tier; zero means unlimited.
func (s *subscriptionService) tierLimit(tier string) int {
	if tier == entity.TierPro {
		return s.tierLimits.Pro
	}

	return s.tierLimits.Free
}

// CreateSubscription adds a subscription for the user unless the tier limit is reached.
func (s *subscriptionService) CreateSubscription(ctx context.Context, userID uuid.UUID, input *usecase.SubscriptionInput) (*entity.Subscription, error) {
	period, err := billing.ParsePeriod(input.BillingCyclePeriod)
	if err != nil {
		return nil, domainerrors.ErrInvalidBillingCycle
	}
	if err := (billing.Cycle{Count: input.BillingCycleCount, Period: period}).Validate(); err != nil {
		return nil, domainerrors.ErrInvalidBillingCycle
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	now := s.now()
	sub := &entity.Subscription{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               strings.TrimSpace(input.Name),
		IconURL:            input.IconURL,
		Price:              input.Price,
		CurrencyCode:       strings.ToUpper(input.CurrencyCode),
		StartDate:          calendarDate(input.StartDate),
		BillingCycleCount:  input.BillingCycleCount,
		BillingCyclePeriod: period,
		Category:           input.Category,
		Notes:              input.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		subscriptionRepo := repoFactory.NewSubscriptionRepository()
		if limit := s.tierLimit(user.EffectiveTier(now)); limit > 0 {
			count, err := subscriptionRepo.CountSubscriptionsByUser(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to count subscriptions")
			}
			if count >= int64(limit) {
				return domainerrors.ErrSubscriptionLimitReached
			}
		}

		return errors.Wrap(subscriptionRepo.CreateSubscription(ctx, sub), "failed to create subscription")
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Subscription created",
		slog.String("subscriptionID", sub.ID.String()),
		slog.String("userID", userID.String()))

	return sub, nil
}

// ListSubscriptions lists the user's subscriptions page by page.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID, filter entity.SubscriptionFilter) (*usecase.SubscriptionPage, error) {
	filter.Page, filter.PerPage = normalizePagination(filter.Page, filter.PerPage)

	subs, total, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return &usecase.SubscriptionPage{
		Subscriptions: subs,
		Total:         total,
		Page:          filter.Page,
		PerPage:       filter.PerPage,
	}, nil
}

// GetSubscription returns one of the user's subscriptions.
func (s *subscriptionService) GetSubscription(ctx context.Context, userID, id uuid.UUID) (*entity.Subscription, error) {
	return s.findOwned(ctx, userID, id)
}

// findOwned loads a subscription and hides it from anyone but its owner.
func (s *subscriptionService) findOwned(ctx context.Context, userID, id uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	if sub.UserID != userID {
		return nil, domainerrors.ErrSubscriptionNotFound
	}

	return sub, nil
}

// UpdateSubscription applies the non-nil fields of input.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, userID, id uuid.UUID, input *usecase.SubscriptionUpdate) (*entity.Subscription, error) {
	sub, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sub.Name = strings.TrimSpace(*input.Name)
	}
	if input.IconURL != nil {
		sub.IconURL = *input.IconURL
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		sub.Price = *input.Price
	}
	if input.CurrencyCode != nil {
		sub.CurrencyCode = strings.ToUpper(*input.CurrencyCode)
	}
	if input.StartDate != nil {
		sub.StartDate = calendarDate(*input.StartDate)
	}
	if input.BillingCycleCount != nil {
		sub.BillingCycleCount = *input.BillingCycleCount
	}
	if input.BillingCyclePeriod != nil {
		period, err := billing.ParsePeriod(*input.BillingCyclePeriod)
		if err != nil {
			return nil, domainerrors.ErrInvalidBillingCycle
		}
		sub.BillingCyclePeriod = period
	}
	if input.Category != nil {
		sub.Category = *input.Category
	}
	if input.Notes != nil {
		sub.Notes = *input.Notes
	}

	if err := sub.BillingCycle().Validate(); err != nil {
		return nil, domainerrors.ErrInvalidBillingCycle
	}

	sub.UpdatedAt = s.now()
	if err := s.subscriptionRepo.UpdateSubscription(ctx, sub); err != nil {
		return nil, errors.Wrap(err, "failed to update subscription")
	}

	return sub, nil
}

// DeleteSubscription soft-deletes one of the user's subscriptions.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// CancelSubscription marks the subscription cancelled so it is never reminded again.
func (s *subscriptionService) CancelSubscription(ctx context.Context, userID, id uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if sub.IsCancelled {
		return nil, domainerrors.ErrSubscriptionAlreadyCancelled
	}

	cancelledAt := s.now()
	if err := s.subscriptionRepo.CancelSubscription(ctx, id, cancelledAt); err != nil {
		return nil, errors.Wrap(err, "failed to cancel subscription")
	}

	sub.IsCancelled = true
	sub.CancelledAt = &cancelledAt
	sub.UpdatedAt = cancelledAt

	return sub, nil
}

// GetStats pro-rates the monthly cost of the active subscriptions over the current month.
func (s *subscriptionService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionStats, error) {
	subs, err := s.subscriptionRepo.FindActiveSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by user")
	}

	return buildStats(subs, s.now().In(s.location)), nil
}

func buildStats(subs []*entity.Subscription, now time.Time) *entity.SubscriptionStats {
	total := decimal.Zero
	for _, sub := range subs {
		total = total.Add(sub.MonthlyCost())
	}

	day := now.Day()
	daysInMonth := billing.DaysInMonth(now.Year(), now.Month())
	daily := total.Div(decimal.NewFromInt(int64(daysInMonth)))

	return &entity.SubscriptionStats{
		TotalMonthlyCost:    total.Round(2),
		PaidAmount:          daily.Mul(decimal.NewFromInt(int64(day))).Round(2),
		RemainingAmount:     daily.Mul(decimal.NewFromInt(int64(daysInMonth - day))).Round(2),
		ActiveSubscriptions: len(subs),
	}
}

// GetCalendar groups the active subscriptions whose next billing date falls in year/month by day.
func (s *subscriptionService) GetCalendar(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*entity.CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("month must be between 1 and 12")
	}

	subs, err := s.subscriptionRepo.FindActiveSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by user")
	}

	return buildCalendar(subs, year, month, s.now().In(s.location)), nil
}

func buildCalendar(subs []*entity.Subscription, year int, month time.Month, now time.Time) []*entity.CalendarDay {
	byDay := make(map[int]*entity.CalendarDay)
	for _, sub := range subs {
		next := sub.NextBillingDate(now)
		if next.Year() != year || next.Month() != month {
			continue
		}

		day, ok := byDay[next.Day()]
		if !ok {
			day = &entity.CalendarDay{Date: next.Format(dueDateLayout)}
			byDay[next.Day()] = day
		}
		day.Subscriptions = append(day.Subscriptions, sub)
	}

	days := make([]*entity.CalendarDay, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b *entity.CalendarDay) int { return strings.Compare(a.Date, b.Date) })

	return days
}

// calendarDate drops the time of day, keeping the date as written by the client.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
