package service

import (
	"context"
)

// PushService delivers a push notification to a single device token.
type PushService interface {
	// Send pushes one message. Any returned error counts as a failed delivery for that token.
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
