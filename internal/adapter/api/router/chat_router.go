package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.POST("", chatHandler.CreateConversation)
	chatGroup.GET("", chatHandler.ListConversations)
	chatGroup.GET("/:id", chatHandler.GetConversation)
	chatGroup.GET("/:id/messages", chatHandler.ListMessages)
	chatGroup.POST("/:id/messages", chatHandler.PostMessage)
	chatGroup.PUT("/:id/read", chatHandler.MarkRead)
}
