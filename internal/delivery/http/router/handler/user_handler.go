package handler

import (
	"log/slog"
	"net/http"
	"time"

	"subtrack/internal/delivery/http/response"
	"subtrack/internal/domain/entity"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's own account
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UserResponse is the public view of an account. The legacy push token is never exposed.
type UserResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Email                string     `json:"email,omitempty"`
	FullName             string     `json:"full_name"`
	IsGuest              bool       `json:"is_guest"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	Locale               string     `json:"locale"`
	CurrencyCode         string     `json:"currency_code"`
	Tier                 string     `json:"tier"`
	TierExpiresAt        *time.Time `json:"tier_expires_at"`
	CreatedAt            time.Time  `json:"created_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                   user.ID,
		Email:                user.Email,
		FullName:             user.FullName,
		IsGuest:              user.IsGuest,
		NotificationsEnabled: user.NotificationsEnabled,
		Locale:               user.Locale,
		CurrencyCode:         user.CurrencyCode,
		Tier:                 user.Tier,
		TierExpiresAt:        user.TierExpiresAt,
		CreatedAt:            user.CreatedAt,
	}
}

// UpdatePreferencesRequest is the body of PUT /v1/user/preferences. Omitted fields are kept.
type UpdatePreferencesRequest struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	Locale               *string `json:"locale" validate:"omitempty,min=2,max=10"`
	CurrencyCode         *string `json:"currency_code" validate:"omitempty,len=3"`
}

// UpdateFCMTokenRequest represents the request body for updating the legacy FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

// GetProfile handles GET /v1/user/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdatePreferences handles PUT /v1/user/preferences
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userUC.UpdatePreferences(c.Request().Context(), userID, entity.UserPreferences{
		NotificationsEnabled: req.NotificationsEnabled,
		Locale:               req.Locale,
		CurrencyCode:         req.CurrencyCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateFCMToken handles PUT /v1/user/fcm-token
func (h *UserHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.userUC.UpdateFCMToken(c.Request().Context(), userID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
