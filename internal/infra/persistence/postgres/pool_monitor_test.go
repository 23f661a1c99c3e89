package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObservePool(t *testing.T) {
	base := sql.DBStats{MaxOpenConnections: 20, WaitCount: 10, WaitDuration: time.Second}

	tests := []struct {
		name      string
		cur       sql.DBStats
		wantOK    bool
		wantLevel slog.Level
	}{
		{name: "no new waits", cur: base},
		{
			name:      "short waits",
			cur:       sql.DBStats{MaxOpenConnections: 20, WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond},
			wantOK:    true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "contention",
			cur:       sql.DBStats{MaxOpenConnections: 20, WaitCount: 15, WaitDuration: 2 * time.Second},
			wantOK:    true,
			wantLevel: slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, ok := observePool(base, tt.cur)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Empty(t, attrs)

				return
			}
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, "waits", attrs[0].Key)
		})
	}
}
