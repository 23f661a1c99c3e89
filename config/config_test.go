package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Scheduler)
	assert.Equal(t, "UTC", cfg.Scheduler.Location)
	assert.Equal(t, SchedulerModeInline, cfg.Scheduler.Mode)
	assert.Equal(t, DefaultTriggers(), cfg.Scheduler.Triggers)
	assert.Equal(t, defaultMaxConcurrency, cfg.Dispatch.MaxConcurrency)
	assert.Equal(t, 3, cfg.TierLimits.Free)
	assert.Zero(t, cfg.TierLimits.Pro)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Scheduler:  &SchedulerConfig{Location: "Asia/Taipei", Mode: SchedulerModeQueued, Triggers: []TriggerConfig{{Name: "only", Spec: "@daily"}}},
		Dispatch:   &DispatchConfig{MaxConcurrency: 32},
		TierLimits: &TierLimitsConfig{Free: 5, Pro: 100},
	}
	applyDefaults(cfg)

	assert.Equal(t, "Asia/Taipei", cfg.Scheduler.Location)
	assert.Equal(t, SchedulerModeQueued, cfg.Scheduler.Mode)
	assert.Len(t, cfg.Scheduler.Triggers, 1)
	assert.Equal(t, 32, cfg.Dispatch.MaxConcurrency)
	assert.Equal(t, 5, cfg.TierLimits.Free)
}

func TestSchedulerConfig_LoadLocation(t *testing.T) {
	loc, err := (&SchedulerConfig{Location: "Asia/Taipei"}).LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Taipei", loc.String())

	_, err = (&SchedulerConfig{Location: "Atlantis/Capital"}).LoadLocation()
	require.Error(t, err)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	t.Setenv("SCHEDULER_MODE", SchedulerModeQueued)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DISPATCH_MAXCONCURRENCY", "4")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Scheduler)
	assert.Equal(t, SchedulerModeQueued, cfg.Scheduler.Mode)
	require.Len(t, cfg.Scheduler.Triggers, 3)
	assert.Equal(t, 1, cfg.Scheduler.Triggers[1].DaysAhead)
	assert.Equal(t, 4, cfg.Dispatch.MaxConcurrency)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
}
