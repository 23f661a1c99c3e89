package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// queryOutcome is what a single traced statement turned out to be.
type queryOutcome int

const (
	outcomeQuiet queryOutcome = iota
	outcomeFailed
	outcomeSlow
	outcomeOK
)

// gormSlogLogger routes GORM output through slog, preferring the request-scoped
// logger so statements issued on behalf of a request or a renewal trigger carry
// its request_id.
type gormSlogLogger struct {
	base          *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		base:          base,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, minLevel gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < minLevel {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.base == nil {
		return
	}

	elapsed := time.Since(begin)
	outcome := l.classify(elapsed, err)
	if outcome == outcomeQuiet {
		return
	}

	stmt, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", stmt),
	}

	switch outcome {
	case outcomeFailed:
		attrs = append(attrs, slog.String("error", err.Error()))
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case outcomeSlow:
		attrs = append(attrs, slog.Duration("threshold", l.slowThreshold))
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	default:
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelInfo, "Query", attrs...)
	}
}

// classify decides whether a statement is worth logging. Not-found lookups are
// routine for subscription, device and notification reads and are never errors.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) queryOutcome {
	switch {
	case l.level == gormlogger.Silent:
		return outcomeQuiet
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		if l.level >= gormlogger.Error {
			return outcomeFailed
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		if l.level >= gormlogger.Warn {
			return outcomeSlow
		}
	}

	if l.level >= gormlogger.Info {
		return outcomeOK
	}

	return outcomeQuiet
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
