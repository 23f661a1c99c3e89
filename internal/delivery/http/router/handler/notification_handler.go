package handler

import (
	"net/http"

	"subtrack/internal/delivery/http/response"
	"subtrack/internal/domain/entity"
	"subtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the user's notification inbox
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// ListNotifications handles GET /v1/notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	isRead, err := boolQuery(c, "is_read")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "is_read must be a boolean")
	}

	page, perPage := pageQuery(c)
	result, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, entity.NotificationFilter{
		IsRead:  isRead,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result.Notifications, response.NewPagination(result.Total, result.Page, result.PerPage))
}

// MarkAsRead handles POST /v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	notification, err := h.notificationUC.MarkAsRead(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}
