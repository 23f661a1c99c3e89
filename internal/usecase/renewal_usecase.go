package usecase

import (
	"context"
	"time"

	"subtrack/internal/domain/service"
)

// RunReport summarises one renewal run for a single offset.
type RunReport struct {
	DaysAhead        int           `json:"days_ahead"`
	TargetDate       string        `json:"target_date"`
	Mode             string        `json:"mode"`
	Candidates       int           `json:"candidates"`
	Due              int           `json:"due"`
	Dispatched       int           `json:"dispatched"`
	Published        int           `json:"published"`
	Skipped          int           `json:"skipped"`
	NoRecipients     int           `json:"no_recipients"`
	Failed           int           `json:"failed"`
	DevicesSucceeded int           `json:"devices_succeeded"`
	DevicesFailed    int           `json:"devices_failed"`
	StartedAt        time.Time     `json:"started_at"`
	Duration         time.Duration `json:"duration"`
}

// RenewalUsecase drives renewal reminders.
type RenewalUsecase interface {
	// Run finds the subscriptions due in daysAhead days and reminds their owners.
	// A run already in progress for the same offset is rejected.
	Run(ctx context.Context, daysAhead int) (*RunReport, error)

	// ProcessRenewalEvent handles one queued reminder. A nil result with nil error means
	// the event was stale and dropped.
	ProcessRenewalEvent(ctx context.Context, event *service.RenewalDueEvent) (*DispatchResult, error)
}
