package impl

import (
	"context"
	"testing"
	"time"

	"subtrack/config"
	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	mockRepo "subtrack/internal/mocks/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// subscriptionServiceFixtures holds all test dependencies for subscription service tests.
type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	txUserRepo       *mockRepo.MockUserRepository
	txSubRepo        *mockRepo.MockSubscriptionRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	now              time.Time
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	svc, err := NewSubscriptionService(SubscriptionServiceParams{
		TxManager:        txManager,
		SubscriptionRepo: subscriptionRepo,
		Config:           newTestConfig(config.SchedulerModeInline),
		Logger:           newDiscardLogger(),
	})
	require.NoError(t, err)
	svc.(*subscriptionService).now = fixedClock(now)

	return subscriptionServiceFixtures{
		service:          svc,
		txManager:        txManager,
		repoFactory:      repoFactory,
		txUserRepo:       txUserRepo,
		txSubRepo:        txSubRepo,
		subscriptionRepo: subscriptionRepo,
		now:              now,
	}
}

// expectTransaction runs the transactional closure against the fixture's factory.
func (fx subscriptionServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.txUserRepo).Maybe()
	fx.repoFactory.EXPECT().NewSubscriptionRepository().Return(fx.txSubRepo).Maybe()
}

func newSubscriptionInput() *usecase.SubscriptionInput {
	return &usecase.SubscriptionInput{
		Name:               " Spotify ",
		Price:              decimal.RequireFromString("9.99"),
		CurrencyCode:       "eur",
		StartDate:          time.Date(2025, 1, 31, 18, 30, 0, 0, time.FixedZone("UTC+9", 9*3600)),
		BillingCycleCount:  1,
		BillingCyclePeriod: "month",
	}
}

func TestSubscriptionService_CreateSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectTransaction(ctx)

	fx.txUserRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID, Tier: entity.TierFree}, nil)
	fx.txSubRepo.EXPECT().CountSubscriptionsByUser(ctx, userID).Return(int64(2), nil)
	fx.txSubRepo.EXPECT().CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	sub, err := fx.service.CreateSubscription(ctx, userID, newSubscriptionInput())
	require.NoError(t, err)
	assert.Equal(t, userID, sub.UserID)
	assert.Equal(t, "Spotify", sub.Name)
	assert.Equal(t, "EUR", sub.CurrencyCode)
	assert.Equal(t, date(2025, 1, 31), sub.StartDate)
	assert.Equal(t, billing.PeriodMonth, sub.BillingCyclePeriod)
	assert.False(t, sub.IsCancelled)
}

func TestSubscriptionService_CreateSubscription_TierLimit(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectTransaction(ctx)

	fx.txUserRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID, Tier: entity.TierFree}, nil)
	fx.txSubRepo.EXPECT().CountSubscriptionsByUser(ctx, userID).Return(int64(3), nil)

	sub, err := fx.service.CreateSubscription(ctx, userID, newSubscriptionInput())
	require.ErrorIs(t, err, domainerrors.ErrSubscriptionLimitReached)
	assert.Nil(t, sub)
}

func TestSubscriptionService_CreateSubscription_ProUnlimited(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectTransaction(ctx)

	fx.txUserRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{ID: userID, Tier: entity.TierPro}, nil)
	fx.txSubRepo.EXPECT().CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	_, err := fx.service.CreateSubscription(ctx, userID, newSubscriptionInput())
	require.NoError(t, err)
	fx.txSubRepo.AssertNotCalled(t, "CountSubscriptionsByUser", mock.Anything, mock.Anything)
}

func TestSubscriptionService_CreateSubscription_ExpiredProFallsBackToFree(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	expired := fx.now.Add(-time.Hour)
	fx.expectTransaction(ctx)

	fx.txUserRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Tier: entity.TierPro, TierExpiresAt: &expired}, nil)
	fx.txSubRepo.EXPECT().CountSubscriptionsByUser(ctx, userID).Return(int64(5), nil)

	_, err := fx.service.CreateSubscription(ctx, userID, newSubscriptionInput())
	require.ErrorIs(t, err, domainerrors.ErrSubscriptionLimitReached)
}

func TestSubscriptionService_CreateSubscription_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.SubscriptionInput)
		wantErr error
	}{
		{"zero count", func(in *usecase.SubscriptionInput) { in.BillingCycleCount = 0 }, domainerrors.ErrInvalidBillingCycle},
		{"unknown period", func(in *usecase.SubscriptionInput) { in.BillingCyclePeriod = "fortnight" }, domainerrors.ErrInvalidBillingCycle},
		{"negative price", func(in *usecase.SubscriptionInput) { in.Price = decimal.NewFromInt(-1) }, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)
			input := newSubscriptionInput()
			tt.mutate(input)

			_, err := fx.service.CreateSubscription(context.Background(), uuid.New(), input)
			require.ErrorIs(t, err, tt.wantErr)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_GetSubscription_OtherOwner(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	sub := newTestSubscription(uuid.New())
	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.GetSubscription(ctx, uuid.New(), sub.ID)
	require.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_UpdateSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	sub := newTestSubscription(uuid.New())
	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().UpdateSubscription(ctx, sub).Return(nil)

	updated, err := fx.service.UpdateSubscription(ctx, sub.UserID, sub.ID, &usecase.SubscriptionUpdate{
		Price:              lo.ToPtr(decimal.RequireFromString("17.99")),
		BillingCycleCount:  lo.ToPtr(3),
		BillingCyclePeriod: lo.ToPtr("quarter"),
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("17.99").Equal(updated.Price))
	assert.Equal(t, 3, updated.BillingCycleCount)
	assert.Equal(t, billing.PeriodQuarter, updated.BillingCyclePeriod)
	assert.Equal(t, "Netflix", updated.Name)
	assert.Equal(t, fx.now, updated.UpdatedAt)
}

func TestSubscriptionService_UpdateSubscription_InvalidCycle(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	sub := newTestSubscription(uuid.New())
	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.UpdateSubscription(ctx, sub.UserID, sub.ID, &usecase.SubscriptionUpdate{BillingCycleCount: lo.ToPtr(0)})
	require.ErrorIs(t, err, domainerrors.ErrInvalidBillingCycle)
}

func TestSubscriptionService_CancelSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	sub := newTestSubscription(uuid.New())
	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil).Twice()
	fx.subscriptionRepo.EXPECT().CancelSubscription(ctx, sub.ID, fx.now).Return(nil).Once()

	cancelled, err := fx.service.CancelSubscription(ctx, sub.UserID, sub.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, fx.now, *cancelled.CancelledAt)

	_, err = fx.service.CancelSubscription(ctx, sub.UserID, sub.ID)
	require.ErrorIs(t, err, domainerrors.ErrSubscriptionAlreadyCancelled)
}

func TestSubscriptionService_DeleteSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	sub := newTestSubscription(uuid.New())
	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, sub.ID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().DeleteSubscription(ctx, sub.ID).Return(nil)

	require.NoError(t, fx.service.DeleteSubscription(ctx, sub.UserID, sub.ID))
}

func TestSubscriptionService_DeleteSubscription_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.subscriptionRepo.EXPECT().FindSubscriptionByID(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)

	err := fx.service.DeleteSubscription(ctx, uuid.New(), id)
	require.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_ListSubscriptions_Pagination(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	want := entity.SubscriptionFilter{Category: "video", Page: 1, PerPage: 15}
	fx.subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, userID, want).
		Return([]*entity.Subscription{newTestSubscription(userID)}, int64(1), nil)

	page, err := fx.service.ListSubscriptions(ctx, userID, entity.SubscriptionFilter{Category: "video"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 15, page.PerPage)
	assert.Len(t, page.Subscriptions, 1)
}

func TestSubscriptionService_ListSubscriptions_Error(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	fx.subscriptionRepo.EXPECT().
		FindSubscriptionsByUser(ctx, mock.Anything, mock.Anything).
		Return(nil, int64(0), errors.New("db down"))

	_, err := fx.service.ListSubscriptions(ctx, uuid.New(), entity.SubscriptionFilter{})
	require.Error(t, err)
}

func TestBuildStats(t *testing.T) {
	userID := uuid.New()
	monthly := newTestSubscription(userID)
	monthly.Price = decimal.NewFromInt(30)

	yearly := newTestSubscription(userID)
	yearly.Price = decimal.NewFromInt(120)
	yearly.BillingCyclePeriod = billing.PeriodYear

	// April has 30 days; the 10th leaves 20 days remaining.
	stats := buildStats([]*entity.Subscription{monthly, yearly}, time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "40", stats.TotalMonthlyCost.String())
	assert.Equal(t, "13.33", stats.PaidAmount.String())
	assert.Equal(t, "26.67", stats.RemainingAmount.String())
	assert.Equal(t, 2, stats.ActiveSubscriptions)
}

func TestBuildStats_Empty(t *testing.T) {
	stats := buildStats(nil, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC))

	assert.True(t, stats.TotalMonthlyCost.IsZero())
	assert.True(t, stats.PaidAmount.IsZero())
	assert.True(t, stats.RemainingAmount.IsZero())
	assert.Zero(t, stats.ActiveSubscriptions)
}

func TestSubscriptionService_GetCalendar(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	first := newTestSubscription(userID)
	first.StartDate = date(2025, 1, 20)
	second := newTestSubscription(userID)
	second.StartDate = date(2024, 12, 20)
	third := newTestSubscription(userID)
	third.StartDate = date(2025, 3, 12)
	nextMonth := newTestSubscription(userID)
	nextMonth.StartDate = date(2025, 3, 5)

	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionsByUser(ctx, userID).
		Return([]*entity.Subscription{first, nextMonth, third, second}, nil)

	days, err := fx.service.GetCalendar(ctx, userID, 2025, time.April)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-04-12", days[0].Date)
	assert.Equal(t, []*entity.Subscription{third}, days[0].Subscriptions)
	assert.Equal(t, "2025-04-20", days[1].Date)
	assert.Equal(t, []*entity.Subscription{first, second}, days[1].Subscriptions)
}

func TestSubscriptionService_GetCalendar_InvalidMonth(t *testing.T) {
	fx := createTestSubscriptionService(t)

	_, err := fx.service.GetCalendar(context.Background(), uuid.New(), 2025, time.Month(13))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
