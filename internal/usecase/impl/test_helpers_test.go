package impl

import (
	"io"
	"log/slog"
	"time"

	"subtrack/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(mode string) *config.Config {
	return &config.Config{
		Scheduler: &config.SchedulerConfig{
			Location: "UTC",
			Mode:     mode,
			Triggers: config.DefaultTriggers(),
		},
		Dispatch:   &config.DispatchConfig{MaxConcurrency: 2},
		TierLimits: &config.TierLimitsConfig{Free: 3},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
