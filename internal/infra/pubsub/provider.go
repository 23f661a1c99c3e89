// Package pubsub publishes renewal-due events for the queued scheduler mode.
package pubsub

import (
	"context"
	"log/slog"
	"strconv"

	"subtrack/config"
	"subtrack/internal/domain/constants"
	"subtrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// droppingPublisher stands in when no provider is configured. Inline
// deployments never publish, so they run without one.
type droppingPublisher struct {
	logger *slog.Logger
}

func (p *droppingPublisher) PublishRenewalDue(_ context.Context, event *service.RenewalDueEvent) error {
	p.logger.Warn("Renewal event dropped, no pubsub provider configured",
		slog.String("subscription_id", event.SubscriptionID),
		slog.String("due_date", event.DueDate),
	)

	return nil
}

func (p *droppingPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider and closes
// it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, renewal events will be dropped")

		return &droppingPublisher{logger: params.Logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing event publisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %q", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// eventAttributes are copied onto every message so the worker can route and
// correlate without decoding the payload.
func eventAttributes(event *service.RenewalDueEvent) map[string]string {
	attributes := map[string]string{
		"event_type":      "renewal_due",
		"subscription_id": event.SubscriptionID,
		"days_ahead":      strconv.Itoa(event.DaysAhead),
		"due_date":        event.DueDate,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
