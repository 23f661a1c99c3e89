package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"subtrack/config"
	deliveryhttp "subtrack/internal/delivery/http"
	"subtrack/internal/delivery/http/middleware"
	"subtrack/internal/delivery/http/router"
	"subtrack/internal/delivery/http/router/handler"
	"subtrack/internal/domain/constants"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/service"
	mockSvc "subtrack/internal/mocks/service"
	mockUsecase "subtrack/internal/mocks/usecase"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

type apiFixture struct {
	echo           *echo.Echo
	userID         uuid.UUID
	subscriptionUC *mockUsecase.MockSubscriptionUsecase
	deviceUC       *mockUsecase.MockDeviceUsecase
	notificationUC *mockUsecase.MockNotificationUsecase
	userUC         *mockUsecase.MockUserUsecase
	dispatchUC     *mockUsecase.MockDispatchUsecase
	renewalUC      *mockUsecase.MockRenewalUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string `json:"request_id"`
		Pagination *struct {
			Total    int64 `json:"total"`
			Page     int   `json:"page"`
			PerPage  int   `json:"per_page"`
			LastPage int   `json:"last_page"`
		} `json:"pagination"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fx := apiFixture{
		userID:         uuid.New(),
		subscriptionUC: mockUsecase.NewMockSubscriptionUsecase(t),
		deviceUC:       mockUsecase.NewMockDeviceUsecase(t),
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		userUC:         mockUsecase.NewMockUserUsecase(t),
		dispatchUC:     mockUsecase.NewMockDispatchUsecase(t),
		renewalUC:      mockUsecase.NewMockRenewalUsecase(t),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(userToken).Return(&service.Claims{UserID: fx.userID}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{constants.RoleAdmin}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("token is expired")).Maybe()

	fx.echo = deliveryhttp.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: fx.subscriptionUC, Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: fx.deviceUC, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(fx.notificationUC),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Logger: logger}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			DispatchUC: fx.dispatchUC,
			RenewalUC:  fx.renewalUC,
			Logger:     logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx apiFixture) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestRouter_HealthAndAuth(t *testing.T) {
	fx := newAPIFixture(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))

	rec, env = fx.do(t, http.MethodGet, "/v1/subscriptions", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, _ = fx.do(t, http.MethodGet, "/v1/subscriptions", "stale-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CreateSubscription(t *testing.T) {
	fx := newAPIFixture(t)

	created := &entity.Subscription{ID: uuid.New(), UserID: fx.userID, Name: "Netflix"}
	fx.subscriptionUC.EXPECT().
		CreateSubscription(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.SubscriptionInput) bool {
			return in.Name == "Netflix" &&
				in.Price.Equal(decimal.RequireFromString("15.99")) &&
				in.StartDate.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) &&
				in.BillingCyclePeriod == "month"
		})).
		Return(created, nil).Once()

	rec, env := fx.do(t, http.MethodPost, "/v1/subscriptions", userToken, `{
		"name": "Netflix",
		"price": "15.99",
		"currency_code": "USD",
		"start_date": "2025-01-31",
		"billing_cycle_count": 1,
		"billing_cycle_period": "month"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Subscription
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestRouter_CreateSubscription_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing name",
			body:       `{"price":"1","currency_code":"USD","start_date":"2025-01-01","billing_cycle_count":1,"billing_cycle_period":"month"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed start date",
			body:       `{"name":"x","price":"1","currency_code":"USD","start_date":"01/01/2025","billing_cycle_count":1,"billing_cycle_period":"month"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "tier limit",
			body:       `{"name":"x","price":"1","currency_code":"USD","start_date":"2025-01-01","billing_cycle_count":1,"billing_cycle_period":"month"}`,
			ucErr:      domainerrors.ErrSubscriptionLimitReached,
			wantStatus: http.StatusForbidden,
			wantCode:   "SUBSCRIPTION_LIMIT_REACHED",
		},
		{
			name:       "unexpected failure",
			body:       `{"name":"x","price":"1","currency_code":"USD","start_date":"2025-01-01","billing_cycle_count":1,"billing_cycle_period":"month"}`,
			ucErr:      errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixture(t)
			if tt.ucErr != nil {
				fx.subscriptionUC.EXPECT().
					CreateSubscription(mock.Anything, fx.userID, mock.Anything).
					Return(nil, tt.ucErr).Once()
			}

			rec, env := fx.do(t, http.MethodPost, "/v1/subscriptions", userToken, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestRouter_ListSubscriptions(t *testing.T) {
	fx := newAPIFixture(t)

	cancelled := false
	fx.subscriptionUC.EXPECT().
		ListSubscriptions(mock.Anything, fx.userID, entity.SubscriptionFilter{
			Category:    "video",
			IsCancelled: &cancelled,
			Page:        2,
			PerPage:     10,
		}).
		Return(&usecase.SubscriptionPage{Subscriptions: []*entity.Subscription{}, Total: 25, Page: 2, PerPage: 10}, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/v1/subscriptions?category=video&is_cancelled=false&page=2&per_page=10", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(25), env.Meta.Pagination.Total)
	assert.Equal(t, 3, env.Meta.Pagination.LastPage)

	rec, _ = fx.do(t, http.MethodGet, "/v1/subscriptions?is_cancelled=maybe", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_StatsAndCalendar(t *testing.T) {
	fx := newAPIFixture(t)

	fx.subscriptionUC.EXPECT().GetStats(mock.Anything, fx.userID).
		Return(&entity.SubscriptionStats{ActiveSubscriptions: 2}, nil).Once()
	fx.subscriptionUC.EXPECT().GetCalendar(mock.Anything, fx.userID, 2025, time.April).
		Return([]*entity.CalendarDay{{Date: "2025-04-01"}}, nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/v1/subscriptions/stats", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodGet, "/v1/subscriptions/calendar/2025/4", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "2025-04-01")

	rec, _ = fx.do(t, http.MethodGet, "/v1/subscriptions/calendar/2025/13", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SubscriptionByID(t *testing.T) {
	fx := newAPIFixture(t)
	id := uuid.New()

	fx.subscriptionUC.EXPECT().GetSubscription(mock.Anything, fx.userID, id).
		Return(nil, domainerrors.ErrSubscriptionNotFound).Once()
	fx.subscriptionUC.EXPECT().CancelSubscription(mock.Anything, fx.userID, id).
		Return(nil, domainerrors.ErrSubscriptionAlreadyCancelled).Once()
	fx.subscriptionUC.EXPECT().DeleteSubscription(mock.Anything, fx.userID, id).Return(nil).Once()
	fx.subscriptionUC.EXPECT().
		UpdateSubscription(mock.Anything, fx.userID, id, mock.MatchedBy(func(u *usecase.SubscriptionUpdate) bool {
			return u.Name != nil && *u.Name == "Spotify" && u.Price == nil && u.StartDate != nil
		})).
		Return(&entity.Subscription{ID: id, Name: "Spotify"}, nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/v1/subscriptions/"+id.String(), userToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = fx.do(t, http.MethodPost, "/v1/subscriptions/"+id.String()+"/cancel", userToken, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = fx.do(t, http.MethodPut, "/v1/subscriptions/"+id.String(), userToken, `{"name":"Spotify","start_date":"2025-02-01"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodDelete, "/v1/subscriptions/"+id.String(), userToken, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = fx.do(t, http.MethodGet, "/v1/subscriptions/not-a-uuid", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Devices(t *testing.T) {
	fx := newAPIFixture(t)
	deviceID := uuid.New()

	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, fx.userID, &usecase.DeviceInfo{FCMToken: "tok-new", DeviceType: "ios"}).
		Return(&entity.DeviceToken{ID: deviceID}, entity.DeviceRegistrationCreated, nil).Once()
	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, fx.userID, &usecase.DeviceInfo{FCMToken: "tok-known"}).
		Return(&entity.DeviceToken{ID: deviceID}, entity.DeviceRegistrationReassigned, nil).Once()
	fx.deviceUC.EXPECT().DeleteDeviceByToken(mock.Anything, fx.userID, "tok-known").Return(nil).Once()
	fx.deviceUC.EXPECT().DeactivateDevice(mock.Anything, fx.userID, deviceID).
		Return(nil, domainerrors.ErrForbidden).Once()

	rec, env := fx.do(t, http.MethodPost, "/v1/devices", userToken, `{"fcm_token":"tok-new","device_type":"ios"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"registration":"created"`)

	rec, _ = fx.do(t, http.MethodPost, "/v1/devices", userToken, `{"fcm_token":"tok-known"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodPost, "/v1/devices", userToken, `{"fcm_token":"tok","device_type":"fridge"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = fx.do(t, http.MethodDelete, "/v1/devices/token", userToken, `{"fcm_token":"tok-known"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = fx.do(t, http.MethodPost, "/v1/devices/"+deviceID.String()+"/deactivate", userToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_NotificationsAndUser(t *testing.T) {
	fx := newAPIFixture(t)
	notificationID := uuid.New()
	unread := false

	fx.notificationUC.EXPECT().
		ListNotifications(mock.Anything, fx.userID, entity.NotificationFilter{IsRead: &unread}).
		Return(&usecase.NotificationPage{Notifications: []*entity.Notification{}, Page: 1, PerPage: 15}, nil).Once()
	fx.notificationUC.EXPECT().MarkAsRead(mock.Anything, fx.userID, notificationID).
		Return(&entity.Notification{ID: notificationID, IsRead: true}, nil).Once()
	fx.userUC.EXPECT().GetProfile(mock.Anything, fx.userID).
		Return(&entity.User{ID: fx.userID, FCMToken: "legacy-secret", CurrencyCode: "USD"}, nil).Once()
	fx.userUC.EXPECT().UpdateFCMToken(mock.Anything, fx.userID, "legacy").Return(nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/v1/notifications?is_read=false", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.Meta.Pagination.LastPage)

	rec, _ = fx.do(t, http.MethodPost, "/v1/notifications/"+notificationID.String()+"/read", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = fx.do(t, http.MethodGet, "/v1/user/me", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "legacy-secret")

	rec, _ = fx.do(t, http.MethodPut, "/v1/user/preferences", userToken, `{"currency_code":"EURO"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = fx.do(t, http.MethodPut, "/v1/user/fcm-token", userToken, `{"fcm_token":"legacy"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_Admin(t *testing.T) {
	fx := newAPIFixture(t)
	first, second := uuid.New(), uuid.New()

	rec, env := fx.do(t, http.MethodPost, "/v1/admin/notifications/send-to-all", userToken, `{"title":"t","body":"b"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Nil(t, env.Error.Details)

	fx.dispatchUC.EXPECT().
		DispatchToUsers(mock.Anything, []uuid.UUID{first, second}, &entity.PushMessage{Title: "t", Body: "b"}).
		Return(&usecase.DispatchResult{TotalDevices: 2, SuccessCount: 2}, nil).Once()
	fx.dispatchUC.EXPECT().
		DispatchToUser(mock.Anything, first, &entity.PushMessage{Title: "t", Body: "b", Data: map[string]string{"k": "v"}}).
		Return(nil, domainerrors.ErrUserNotFound).Once()
	fx.dispatchUC.EXPECT().
		DispatchToAll(mock.Anything, &entity.PushMessage{Title: "t", Body: "b"}).
		Return(&usecase.DispatchResult{NoRecipients: true}, nil).Once()

	rec, env = fx.do(t, http.MethodPost, "/v1/admin/notifications/send-to-users", adminToken,
		`{"title":"t","body":"b","user_ids":["`+first.String()+`","`+second.String()+`"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"success_count":2`)

	rec, _ = fx.do(t, http.MethodPost, "/v1/admin/notifications/send-to-users", adminToken, `{"title":"t","body":"b","user_ids":["nope"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = fx.do(t, http.MethodPost, "/v1/admin/notifications/send-to-user/"+first.String(), adminToken, `{"title":"t","body":"b","data":{"k":"v"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = fx.do(t, http.MethodPost, "/v1/admin/notifications/send-to-all", adminToken, `{"title":"t","body":"b"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"no_recipients":true`)
}

func TestRouter_AdminRenewalRun(t *testing.T) {
	fx := newAPIFixture(t)

	fx.renewalUC.EXPECT().Run(mock.Anything, 1).Return(&usecase.RunReport{DaysAhead: 1, Due: 4}, nil).Once()
	fx.renewalUC.EXPECT().Run(mock.Anything, 0).Return(nil, domainerrors.ErrRenewalRunInProgress).Once()

	rec, env := fx.do(t, http.MethodPost, "/v1/admin/renewals/run", adminToken, `{"days_ahead":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"due":4`)

	rec, _ = fx.do(t, http.MethodPost, "/v1/admin/renewals/run", adminToken, `{"days_ahead":0}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = fx.do(t, http.MethodPost, "/v1/admin/renewals/run", adminToken, `{"days_ahead":-2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = fx.do(t, http.MethodPost, "/v1/admin/renewals/run", adminToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
