// Package handler contains the Pub/Sub push handlers of the renewal worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/constants"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/service"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles renewal events pushed by Pub/Sub
type PushHandler struct {
	audience      string
	validateToken tokenValidator
	logger        *slog.Logger
	renewalUC     usecase.RenewalUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	RenewalUC usecase.RenewalUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified only for the
// google provider with a configured audience.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.PubSub != nil && params.Config.PubSub.Provider == constants.PubSubProviderGoogle {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:      audience,
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		renewalUC:     params.RenewalUC,
	}
}

// HandlePush handles one pushed renewal event. 503 asks Pub/Sub to redeliver; every other
// outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.RenewalDueEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse renewal event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing renewal event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("subscription_id", event.SubscriptionID),
		slog.String("due_date", event.DueDate),
		slog.Int("days_ahead", event.DaysAhead),
	)

	result, err := h.processEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process renewal event",
			slog.String("subscription_id", event.SubscriptionID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	if result == nil {
		reqLogger.Info("[Worker] Dropped stale renewal event", slog.String("subscription_id", event.SubscriptionID))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Renewal event processed",
		slog.String("subscription_id", event.SubscriptionID),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failed_count", result.FailedCount),
		slog.Bool("skipped", result.Skipped),
		slog.Bool("no_recipients", result.NoRecipients),
	)

	return c.NoContent(http.StatusOK)
}

// processEvent runs the event. Client-class domain errors are final; anything else is retried.
func (h *PushHandler) processEvent(ctx context.Context, event *service.RenewalDueEvent) (*usecase.DispatchResult, error) {
	result, err := h.renewalUC.ProcessRenewalEvent(ctx, event)
	if err == nil {
		return result, nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return nil, err
	}

	return nil, newRetryableError(err)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.RenewalDueEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Set by RequestIDMiddleware from X-Request-Id
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validateToken(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
