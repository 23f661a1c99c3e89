package notification

import (
	"context"
	"log/slog"

	"subtrack/config"
	"subtrack/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// Params holds dependencies for the push service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns the Firebase push gateway, or a logging stand-in when Firebase is not configured.
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase not configured, push notifications will only be logged")

		return &logPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send sends a push notification to a single device token
func (s *firebaseService) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(err, "invalid or unregistered token")
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// logPushService only logs messages. Used in development without Firebase credentials.
type logPushService struct {
	logger *slog.Logger
}

func (s *logPushService) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[Push] Notification not sent, Firebase disabled",
		slog.String("token_prefix", token[:min(10, len(token))]),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
