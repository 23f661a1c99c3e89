package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequestScope(context.Background(), "run-1", base)
	assert.Equal(t, "run-1", GetRequestIDFromContext(ctx))
	require.Same(t, logger, GetLogger(ctx))

	GetLoggerOrDefault(ctx, base).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"run-1"`)
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID_EchoContext(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "abc")
	assert.Equal(t, "abc", GetRequestID(c))
}
