// Package context carries request-scoped values (request ID and logger) across layers.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"

	// HeaderXRequestID is the header used to propagate request IDs.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequestScope attaches a request ID and a logger tagged with it. Every entry point
// (HTTP request, pushed event, cron run) starts its work from here.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) (context.Context, *slog.Logger) {
	scoped := logger.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyLogger, scoped)

	return ctx, scoped
}

// GetRequestID returns the request ID stored on the echo context, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on the echo context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when none is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
