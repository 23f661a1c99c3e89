package handler

import (
	"context"
	"log/slog"
	"net/http"

	"subtrack/internal/delivery/http/response"
	"subtrack/internal/domain/entity"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken   string `json:"fcm_token" validate:"required,max=4096"`
	DeviceType string `json:"device_type" validate:"omitempty,oneof=android ios web"`
	DeviceName string `json:"device_name" validate:"max=255"`
	AppVersion string `json:"app_version" validate:"max=50"`
}

// DeleteDeviceByTokenRequest represents the request body for removing a device by its token
type DeleteDeviceByTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDeviceResponse reports the stored device and how the token was registered
type RegisterDeviceResponse struct {
	Device       *entity.DeviceToken       `json:"device"`
	Registration entity.DeviceRegistration `json:"registration"`
}

// RegisterDevice handles device registration. A new token answers 201, a known one 200.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken:   req.FCMToken,
		DeviceType: req.DeviceType,
		DeviceName: req.DeviceName,
		AppVersion: req.AppVersion,
	}

	device, registration, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if registration == entity.DeviceRegistrationCreated {
		status = http.StatusCreated
	}

	return response.Success(c, status, RegisterDeviceResponse{Device: device, Registration: registration})
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeleteDevice handles removing a device by ID
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	deviceID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteDeviceByToken handles removing a device by its FCM token, used on logout
func (h *DeviceHandler) DeleteDeviceByToken(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req DeleteDeviceByTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.DeleteDeviceByToken(c.Request().Context(), userID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	return h.toggle(c, h.deviceUC.DeactivateDevice)
}

// ActivateDevice handles reactivating a device
func (h *DeviceHandler) ActivateDevice(c echo.Context) error {
	return h.toggle(c, h.deviceUC.ActivateDevice)
}

func (h *DeviceHandler) toggle(c echo.Context, apply func(ctx context.Context, userID, deviceID uuid.UUID) (*entity.DeviceToken, error)) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	deviceID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	device, err := apply(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}
