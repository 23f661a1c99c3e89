// Package router wires the HTTP handlers to their routes.
package router

import (
	"subtrack/internal/delivery/http/middleware"
	"subtrack/internal/delivery/http/router/handler"
	"subtrack/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	SubscriptionHandler *handler.SubscriptionHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	UserHandler         *handler.UserHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	subscriptionHandler *handler.SubscriptionHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	userHandler         *handler.UserHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		subscriptionHandler: params.SubscriptionHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		userHandler:         params.UserHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")
	v1.Use(r.authMiddleware.Authenticate)

	subscriptions := v1.Group("/subscriptions")
	{
		// Static paths before /:id
		subscriptions.GET("/stats", r.subscriptionHandler.GetStats)
		subscriptions.GET("/calendar/:year/:month", r.subscriptionHandler.GetCalendar)

		subscriptions.POST("", r.subscriptionHandler.CreateSubscription)
		subscriptions.GET("", r.subscriptionHandler.ListSubscriptions)
		subscriptions.GET("/:id", r.subscriptionHandler.GetSubscription)
		subscriptions.PUT("/:id", r.subscriptionHandler.UpdateSubscription)
		subscriptions.DELETE("/:id", r.subscriptionHandler.DeleteSubscription)
		subscriptions.POST("/:id/cancel", r.subscriptionHandler.CancelSubscription)
	}

	devices := v1.Group("/devices")
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.GetUserDevices)
		devices.DELETE("/token", r.deviceHandler.DeleteDeviceByToken)
		devices.DELETE("/:id", r.deviceHandler.DeleteDevice)
		devices.POST("/:id/deactivate", r.deviceHandler.DeactivateDevice)
		devices.POST("/:id/activate", r.deviceHandler.ActivateDevice)
	}

	notifications := v1.Group("/notifications")
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.POST("/:id/read", r.notificationHandler.MarkAsRead)
	}

	user := v1.Group("/user")
	{
		user.GET("/me", r.userHandler.GetProfile)
		user.PUT("/preferences", r.userHandler.UpdatePreferences)
		user.PUT("/fcm-token", r.userHandler.UpdateFCMToken)
	}

	admin := v1.Group("/admin")
	admin.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		admin.POST("/notifications/send-to-user/:userId", r.adminHandler.SendToUser)
		admin.POST("/notifications/send-to-users", r.adminHandler.SendToUsers)
		admin.POST("/notifications/send-to-all", r.adminHandler.SendToAll)
		admin.POST("/renewals/run", r.adminHandler.RunRenewals)
	}
}
