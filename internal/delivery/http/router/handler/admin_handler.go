package handler

import (
	"log/slog"
	"net/http"

	"subtrack/internal/delivery/http/response"
	"subtrack/internal/domain/entity"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	RenewalUC  usecase.RenewalUsecase
	Logger     *slog.Logger
}

// AdminHandler serves broadcasts and manual renewal runs
type AdminHandler struct {
	dispatchUC usecase.DispatchUsecase
	renewalUC  usecase.RenewalUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		dispatchUC: params.DispatchUC,
		renewalUC:  params.RenewalUC,
		logger:     params.Logger,
	}
}

// PushMessageRequest is the message part of every broadcast body
type PushMessageRequest struct {
	Title string            `json:"title" validate:"required,max=255"`
	Body  string            `json:"body" validate:"required,max=2000"`
	Data  map[string]string `json:"data"`
}

func (r PushMessageRequest) message() *entity.PushMessage {
	return &entity.PushMessage{Title: r.Title, Body: r.Body, Data: r.Data}
}

// SendToUsersRequest is the body of POST /v1/admin/notifications/send-to-users
type SendToUsersRequest struct {
	PushMessageRequest

	UserIDs []string `json:"user_ids" validate:"required,min=1,max=1000,dive,uuid"`
}

// RunRenewalsRequest is the body of POST /v1/admin/renewals/run
type RunRenewalsRequest struct {
	DaysAhead *int `json:"days_ahead" validate:"required,min=0,max=365"`
}

// SendToUser handles POST /v1/admin/notifications/send-to-user/:userId
func (h *AdminHandler) SendToUser(c echo.Context) error {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req PushMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.dispatchUC.DispatchToUser(c.Request().Context(), userID, req.message())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SendToUsers handles POST /v1/admin/notifications/send-to-users
func (h *AdminHandler) SendToUsers(c echo.Context) error {
	var req SendToUsersRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	userIDs := lo.Map(req.UserIDs, func(id string, _ int) uuid.UUID {
		return uuid.MustParse(id)
	})

	result, err := h.dispatchUC.DispatchToUsers(c.Request().Context(), userIDs, req.message())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SendToAll handles POST /v1/admin/notifications/send-to-all
func (h *AdminHandler) SendToAll(c echo.Context) error {
	var req PushMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.dispatchUC.DispatchToAll(c.Request().Context(), req.message())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RunRenewals handles POST /v1/admin/renewals/run
func (h *AdminHandler) RunRenewals(c echo.Context) error {
	var req RunRenewalsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	report, err := h.renewalUC.Run(c.Request().Context(), *req.DaysAhead)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
