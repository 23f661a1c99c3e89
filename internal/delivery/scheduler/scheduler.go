// Package scheduler triggers renewal runs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"

	"subtrack/config"
	"subtrack/internal/delivery"
	deliverycontext "subtrack/internal/delivery/context"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/lifecycle"
	"subtrack/internal/usecase"
	"subtrack/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the renewal scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	RenewalUC usecase.RenewalUsecase
}

type renewalScheduler struct {
	enabled   bool
	cron      *cron.Cron
	logger    *slog.Logger
	renewalUC usecase.RenewalUsecase

	// Jobs run under baseCtx so a shutdown that outlives the grace period can abort them.
	baseCtx context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewScheduler registers one cron entry per configured trigger.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	schedCfg := params.Cfg.Scheduler
	loc, err := schedCfg.LoadLocation()
	if err != nil {
		return nil, err
	}

	cronLogger := cron.PrintfLogger(slog.NewLogLogger(params.Logger.Handler(), slog.LevelInfo))
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	baseCtx, cancel := context.WithCancel(context.Background())
	s := &renewalScheduler{
		enabled:   schedCfg.Enabled,
		cron:      c,
		logger:    params.Logger,
		renewalUC: params.RenewalUC,
		baseCtx:   baseCtx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	for _, trigger := range schedCfg.Triggers {
		if trigger.DaysAhead < 0 {
			cancel()

			return nil, errors.Errorf("trigger %q: daysAhead must not be negative", trigger.Name)
		}

		if _, err := c.AddJob(trigger.Spec, &renewalJob{scheduler: s, trigger: trigger}); err != nil {
			cancel()

			return nil, errors.Wrapf(err, "trigger %q: invalid cron spec %q", trigger.Name, trigger.Spec)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *renewalScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Renewal scheduler disabled")

		return nil
	}

	s.logger.Info("Starting renewal scheduler", slog.Int("triggers", len(s.cron.Entries())))
	s.cron.Start()

	select {
	case <-ctx.Done():
	case <-s.done:
	}
	s.cron.Stop()

	return nil
}

func (s *renewalScheduler) stop(ctx context.Context) error {
	close(s.done)
	defer s.cancel()

	s.logger.Info("Shutting down renewal scheduler")

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-waitCtx.Done():
		return errors.New("renewal scheduler: running jobs did not finish before shutdown timeout")
	}
}

// renewalJob runs the renewal use case for one trigger.
type renewalJob struct {
	scheduler *renewalScheduler
	trigger   config.TriggerConfig
}

func (j *renewalJob) Run() {
	triggerLogger := j.scheduler.logger.With(
		slog.String("trigger", j.trigger.Name),
		slog.Int("days_ahead", j.trigger.DaysAhead),
	)
	ctx, logger := deliverycontext.WithRequestScope(j.scheduler.baseCtx, uuid.New().String(), triggerLogger)

	report, err := j.scheduler.renewalUC.Run(ctx, j.trigger.DaysAhead)
	if err != nil {
		if errors.Is(err, domainerrors.ErrRenewalRunInProgress) {
			logger.Warn("Renewal run skipped, previous run still in progress")

			return
		}
		logger.Error("Renewal run failed", slog.Any("error", err))

		return
	}

	logger.Info("Renewal trigger completed",
		slog.String("target_date", report.TargetDate),
		slog.String("elapsed", util.FormatDuration(report.Duration)),
	)
}
