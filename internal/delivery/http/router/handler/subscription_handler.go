package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"subtrack/internal/delivery/http/response"
	"subtrack/internal/domain/entity"
	"subtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const startDateLayout = "2006-01-02"

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves the owner's subscriptions, stats and calendar.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateSubscriptionRequest is the body of POST /v1/subscriptions
type CreateSubscriptionRequest struct {
	Name               string           `json:"name" validate:"required,max=255"`
	IconURL            string           `json:"icon_url" validate:"omitempty,url,max=2048"`
	Price              *decimal.Decimal `json:"price" validate:"required"`
	CurrencyCode       string           `json:"currency_code" validate:"required,len=3"`
	StartDate          string           `json:"start_date" validate:"required,datetime=2006-01-02"`
	BillingCycleCount  int              `json:"billing_cycle_count" validate:"required,min=1"`
	BillingCyclePeriod string           `json:"billing_cycle_period" validate:"required"`
	Category           string           `json:"category" validate:"max=100"`
	Notes              string           `json:"notes" validate:"max=2000"`
}

// UpdateSubscriptionRequest is the body of PUT /v1/subscriptions/:id. Omitted fields are kept.
type UpdateSubscriptionRequest struct {
	Name               *string          `json:"name" validate:"omitempty,max=255"`
	IconURL            *string          `json:"icon_url" validate:"omitempty,max=2048"`
	Price              *decimal.Decimal `json:"price"`
	CurrencyCode       *string          `json:"currency_code" validate:"omitempty,len=3"`
	StartDate          *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	BillingCycleCount  *int             `json:"billing_cycle_count" validate:"omitempty,min=1"`
	BillingCyclePeriod *string          `json:"billing_cycle_period"`
	Category           *string          `json:"category" validate:"omitempty,max=100"`
	Notes              *string          `json:"notes" validate:"omitempty,max=2000"`
}

// CreateSubscription handles POST /v1/subscriptions
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateSubscriptionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	startDate, _ := time.Parse(startDateLayout, req.StartDate)
	input := &usecase.SubscriptionInput{
		Name:               req.Name,
		IconURL:            req.IconURL,
		Price:              *req.Price,
		CurrencyCode:       req.CurrencyCode,
		StartDate:          startDate,
		BillingCycleCount:  req.BillingCycleCount,
		BillingCyclePeriod: req.BillingCyclePeriod,
		Category:           req.Category,
		Notes:              req.Notes,
	}

	sub, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sub)
}

// ListSubscriptions handles GET /v1/subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	cancelled, err := boolQuery(c, "is_cancelled")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "is_cancelled must be a boolean")
	}

	page, perPage := pageQuery(c)
	filter := entity.SubscriptionFilter{
		Category:    c.QueryParam("category"),
		IsCancelled: cancelled,
		Page:        page,
		PerPage:     perPage,
	}

	result, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result.Subscriptions, response.NewPagination(result.Total, result.Page, result.PerPage))
}

// GetSubscription handles GET /v1/subscriptions/:id
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	sub, err := h.subscriptionUC.GetSubscription(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sub)
}

// UpdateSubscription handles PUT /v1/subscriptions/:id
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var req UpdateSubscriptionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	update := &usecase.SubscriptionUpdate{
		Name:               req.Name,
		IconURL:            req.IconURL,
		Price:              req.Price,
		CurrencyCode:       req.CurrencyCode,
		BillingCycleCount:  req.BillingCycleCount,
		BillingCyclePeriod: req.BillingCyclePeriod,
		Category:           req.Category,
		Notes:              req.Notes,
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse(startDateLayout, *req.StartDate)
		update.StartDate = &startDate
	}

	sub, err := h.subscriptionUC.UpdateSubscription(c.Request().Context(), userID, id, update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sub)
}

// DeleteSubscription handles DELETE /v1/subscriptions/:id
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.subscriptionUC.DeleteSubscription(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelSubscription handles POST /v1/subscriptions/:id/cancel
func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	sub, err := h.subscriptionUC.CancelSubscription(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sub)
}

// GetStats handles GET /v1/subscriptions/stats
func (h *SubscriptionHandler) GetStats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.subscriptionUC.GetStats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetCalendar handles GET /v1/subscriptions/calendar/:year/:month
func (h *SubscriptionHandler) GetCalendar(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		return response.BadRequest(c, "INVALID_DATE", "Invalid year")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return response.BadRequest(c, "INVALID_DATE", "Invalid month")
	}

	days, err := h.subscriptionUC.GetCalendar(c.Request().Context(), userID, year, time.Month(month))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, days)
}
