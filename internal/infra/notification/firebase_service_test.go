package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"subtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushService_WithoutCredentialsOnlyLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	for _, cfg := range []*config.Config{
		{},
		{Firebase: &config.FirebaseConfig{ProjectID: "subtrack-dev"}},
	} {
		svc, err := NewPushService(Params{Ctx: context.Background(), Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &logPushService{}, svc)
	}

	svc := &logPushService{logger: logger}
	err := svc.Send(context.Background(), "abc", "Renewal Due Today", "Netflix renewal is due today.", map[string]string{"type": "renewal"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "token_prefix=abc")
	assert.Contains(t, buf.String(), "Renewal Due Today")
}
