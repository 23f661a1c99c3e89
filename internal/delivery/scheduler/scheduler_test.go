package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"
	domainerrors "subtrack/internal/domain/errors"
	mockUsecase "subtrack/internal/mocks/usecase"
	"subtrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConfig(triggers ...config.TriggerConfig) *config.Config {
	return &config.Config{
		Scheduler: &config.SchedulerConfig{
			Enabled:  true,
			Location: "Asia/Taipei",
			Mode:     config.SchedulerModeInline,
			Triggers: triggers,
		},
	}
}

func newTestScheduler(t *testing.T, cfg *config.Config) (*renewalScheduler, *mockUsecase.MockRenewalUsecase, *fxtest.Lifecycle) {
	t.Helper()

	renewalUC := mockUsecase.NewMockRenewalUsecase(t)
	lc := fxtest.NewLifecycle(t)

	d, err := NewScheduler(SchedulerParams{
		Lc:        lc,
		Cfg:       cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		RenewalUC: renewalUC,
	})
	require.NoError(t, err)

	return d.(*renewalScheduler), renewalUC, lc
}

func TestNewScheduler_RegistersTriggers(t *testing.T) {
	s, _, _ := newTestScheduler(t, newTestConfig(config.DefaultTriggers()...))

	entries := s.cron.Entries()
	require.Len(t, entries, 3)

	loc, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 2025-04-01 07:00 in Taipei; the 08:00 trigger fires next.
	from := time.Date(2025, 4, 1, 7, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 4, 1, 8, 0, 0, 0, loc), entries[0].Schedule.Next(from))
	assert.Equal(t, time.Date(2025, 4, 1, 9, 30, 0, 0, loc), entries[1].Schedule.Next(from))
}

func TestNewScheduler_RejectsBadTriggers(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "bad spec", cfg: newTestConfig(config.TriggerConfig{Name: "broken", Spec: "every day"})},
		{name: "negative offset", cfg: newTestConfig(config.TriggerConfig{Name: "past", DaysAhead: -1, Spec: "0 8 * * *"})},
		{name: "bad location", cfg: func() *config.Config {
			cfg := newTestConfig()
			cfg.Scheduler.Location = "Nowhere/Special"

			return cfg
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScheduler(SchedulerParams{
				Lc:        fxtest.NewLifecycle(t),
				Cfg:       tt.cfg,
				Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
				RenewalUC: mockUsecase.NewMockRenewalUsecase(t),
			})
			require.Error(t, err)
		})
	}
}

func TestRenewalJob_Run(t *testing.T) {
	trigger := config.TriggerConfig{Name: "renewal-tomorrow", DaysAhead: 1, Spec: "30 9 * * *"}

	tests := []struct {
		name   string
		report *usecase.RunReport
		err    error
	}{
		{name: "completed", report: &usecase.RunReport{DaysAhead: 1, Due: 2, Dispatched: 2}},
		{name: "overlap", err: domainerrors.ErrRenewalRunInProgress},
		{name: "fetch failure", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, renewalUC, _ := newTestScheduler(t, newTestConfig(trigger))

			renewalUC.EXPECT().
				Run(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) != "" && deliverycontext.GetLogger(ctx) != nil
				}), 1).
				Return(tt.report, tt.err).Once()

			job := &renewalJob{scheduler: s, trigger: trigger}
			assert.NotPanics(t, job.Run)
		})
	}
}

func TestRenewalScheduler_ServeUntilStopped(t *testing.T) {
	s, _, lc := newTestScheduler(t, newTestConfig(config.DefaultTriggers()...))
	lc.RequireStart()

	served := make(chan error, 1)
	go func() {
		served <- s.Serve(context.Background())
	}()

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}

	assert.ErrorIs(t, s.baseCtx.Err(), context.Canceled)
}

func TestRenewalScheduler_Disabled(t *testing.T) {
	cfg := newTestConfig(config.DefaultTriggers()...)
	cfg.Scheduler.Enabled = false
	s, _, _ := newTestScheduler(t, cfg)

	require.NoError(t, s.Serve(context.Background()))
}
