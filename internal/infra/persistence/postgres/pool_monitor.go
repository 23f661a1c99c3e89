package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval = 5 * time.Second

	// Waits above this per interval are logged as warnings, below as debug.
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// poolMonitor logs connection pool waits between snapshots.
type poolMonitor struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
}

func newPoolMonitor(logger *slog.Logger, sqlDB *sql.DB) *poolMonitor {
	return &poolMonitor{logger: logger, stats: sqlDB.Stats, interval: poolMonitorInterval}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			if level, attrs, ok := observePool(prev, cur); ok {
				m.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// observePool compares two snapshots and reports whether callers waited for a connection in between.
func observePool(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	if waited >= poolWaitWarnThreshold {
		return slog.LevelWarn, attrs, true
	}

	return slog.LevelDebug, attrs, true
}
