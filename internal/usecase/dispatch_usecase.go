package usecase

import (
	"context"

	"subtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// FailedDevice describes a delivery that the push gateway rejected.
type FailedDevice struct {
	DeviceID *uuid.UUID `json:"device_id,omitempty"` // Nil for the legacy user token.
	Token    string     `json:"token"`
	Error    string     `json:"error"`
}

// DispatchResult aggregates the outcome of one fan-out.
type DispatchResult struct {
	TotalDevices  int            `json:"total_devices"`
	SuccessCount  int            `json:"success_count"`
	FailedCount   int            `json:"failed_count"`
	FailedDevices []FailedDevice `json:"failed_devices"`
	Skipped       bool           `json:"skipped"`       // Owner disabled notifications.
	NoRecipients  bool           `json:"no_recipients"` // Nothing to deliver to.
}

// DispatchUsecase fans a message out to every device of its recipients.
type DispatchUsecase interface {
	// DispatchRenewal reminds the owner of sub that it renews in daysAhead days and records
	// one renewal notification.
	DispatchRenewal(ctx context.Context, sub *entity.Subscription, daysAhead int) (*DispatchResult, error)

	// DispatchToUser sends msg to every active device of one user.
	DispatchToUser(ctx context.Context, userID uuid.UUID, msg *entity.PushMessage) (*DispatchResult, error)

	// DispatchToUsers sends msg to every active device of the given users.
	DispatchToUsers(ctx context.Context, userIDs []uuid.UUID, msg *entity.PushMessage) (*DispatchResult, error)

	// DispatchToAll sends msg to every active device.
	DispatchToAll(ctx context.Context, msg *entity.PushMessage) (*DispatchResult, error)
}
