package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormSlogLogger_Classify(t *testing.T) {
	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		elapsed time.Duration
		err     error
		want    queryOutcome
	}{
		{name: "silent swallows failures", level: gormlogger.Silent, err: errors.New("boom"), want: outcomeQuiet},
		{name: "failure at warn", level: gormlogger.Warn, err: errors.New("boom"), want: outcomeFailed},
		{name: "not found is routine", level: gormlogger.Warn, err: gorm.ErrRecordNotFound, want: outcomeQuiet},
		{name: "not found in debug", level: gormlogger.Info, err: gorm.ErrRecordNotFound, want: outcomeOK},
		{name: "slow at warn", level: gormlogger.Warn, elapsed: time.Second, want: outcomeSlow},
		{name: "slow hidden at error", level: gormlogger.Error, elapsed: time.Second, want: outcomeQuiet},
		{name: "fast at warn", level: gormlogger.Warn, elapsed: time.Millisecond, want: outcomeQuiet},
		{name: "fast at info", level: gormlogger.Info, elapsed: time.Millisecond, want: outcomeOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &gormSlogLogger{base: slog.Default(), level: tt.level, slowThreshold: defaultGormSlowThreshold}
			assert.Equal(t, tt.want, l.classify(tt.elapsed, tt.err))
		})
	}
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)

	ctx, _ := deliverycontext.WithRequestScope(context.Background(), "req-42", slog.New(slog.NewTextHandler(&scoped, nil)))

	l.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM subscriptions", 0
	}, errors.New("connection reset"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "Query failed")
	assert.Contains(t, scoped.String(), "request_id=req-42")
	assert.Contains(t, scoped.String(), "SELECT * FROM subscriptions")
}

func TestGormSlogLogger_LogModeClones(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), nil)
	debug := l.LogMode(gormlogger.Info)

	assert.Equal(t, gormlogger.Warn, l.(*gormSlogLogger).level)
	assert.Equal(t, gormlogger.Info, debug.(*gormSlogLogger).level)
}
