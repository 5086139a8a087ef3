package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, notificationHandler *handler.NotificationHandler, authMiddleware *middleware.AuthMiddleware) {
	notificationGroup := e.Group("/v1/notifications")
	notificationGroup.Use(authMiddleware.Authenticate)

	notificationGroup.GET("", notificationHandler.List)
	notificationGroup.GET("/unread-count", notificationHandler.UnreadCount)
	notificationGroup.PUT("/:id/read", notificationHandler.MarkRead)
	notificationGroup.PUT("/read-all", notificationHandler.MarkAllRead)
	notificationGroup.POST("/subscription", notificationHandler.Subscribe)
	notificationGroup.DELETE("/subscription", notificationHandler.Unsubscribe)
}
