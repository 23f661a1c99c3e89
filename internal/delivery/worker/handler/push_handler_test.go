package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subtrack/config"
	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/constants"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/service"
	mockUsecase "subtrack/internal/mocks/usecase"
	"subtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, pubsub *config.PubSubConfig) (*PushHandler, *mockUsecase.MockRenewalUsecase) {
	t.Helper()

	renewalUC := mockUsecase.NewMockRenewalUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    &config.Config{PubSub: pubsub},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		RenewalUC: renewalUC,
	})

	return h, renewalUC
}

func pushBody(t *testing.T, event *service.RenewalDueEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/renewals"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.RenewalDueEvent{
		SubscriptionID: "5f0c6c8e-7a53-4c41-9a43-6f3ad5a8f0a1",
		UserID:         "0b7f0f4e-13a4-4c38-8f0e-bf1d1b1b1d52",
		DaysAhead:      1,
		DueDate:        "2025-04-02",
	}

	tests := []struct {
		name       string
		result     *usecase.DispatchResult
		err        error
		wantStatus int
	}{
		{name: "delivered", result: &usecase.DispatchResult{TotalDevices: 2, SuccessCount: 2}, wantStatus: http.StatusOK},
		{name: "stale event acknowledged", wantStatus: http.StatusOK},
		{name: "malformed event acknowledged", err: domainerrors.ErrValidationFailed, wantStatus: http.StatusOK},
		{name: "owner gone acknowledged", err: domainerrors.ErrUserNotFound, wantStatus: http.StatusOK},
		{name: "persistence failure retried", err: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, renewalUC := newTestPushHandler(t, nil)

			renewalUC.EXPECT().
				ProcessRenewalEvent(mock.MatchedBy(func(ctx context.Context) bool {
					return deliverycontext.GetRequestIDFromContext(ctx) == "req-42" &&
						deliverycontext.GetLogger(ctx) != nil
				}), event).
				Return(tt.result, tt.err).Once()

			rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-42"}), "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUndecodableMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := servePush(h, `{"message":{"data":"***"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, `{"message":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RequestIDFallsBackToEvent(t *testing.T) {
	h, renewalUC := newTestPushHandler(t, nil)
	event := &service.RenewalDueEvent{RequestID: "from-event", SubscriptionID: "x", DueDate: "2025-04-02"}

	renewalUC.EXPECT().
		ProcessRenewalEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-event"
		}), event).
		Return(nil, nil).Once()

	rec := servePush(h, pushBody(t, event, nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	pubsub := &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.example.com/push"}
	event := &service.RenewalDueEvent{SubscriptionID: "x", DueDate: "2025-04-02"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, pubsub)

		rec := servePush(h, pushBody(t, event, nil), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, pubsub)
		h.validateToken = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, event, nil), "Bearer oidc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, renewalUC := newTestPushHandler(t, pubsub)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "oidc", token)
			assert.Equal(t, pubsub.PushAudience, audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		renewalUC.EXPECT().ProcessRenewalEvent(mock.Anything, event).Return(nil, nil).Once()

		rec := servePush(h, pushBody(t, event, nil), "Bearer oidc")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("local provider skips verification", func(t *testing.T) {
		h, renewalUC := newTestPushHandler(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, PushAudience: "ignored"})
		renewalUC.EXPECT().ProcessRenewalEvent(mock.Anything, event).Return(nil, nil).Once()

		rec := servePush(h, pushBody(t, event, nil), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
