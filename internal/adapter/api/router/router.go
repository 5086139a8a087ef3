package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Item         *handler.ItemHandler
	Favorite     *handler.FavoriteHandler
	Chat         *handler.ChatHandler
	Offer        *handler.OfferHandler
	Review       *handler.ReviewHandler
	Notification *handler.NotificationHandler
	WebSocket    *handler.WebSocketHandler
	Health       *handler.HealthHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupUserRouter(e, h.User, authMiddleware, adminMiddleware)
	SetupItemRouter(e, h.Item, authMiddleware)
	SetupFavoriteRouter(e, h.Favorite, authMiddleware)
	SetupChatRouter(e, h.Chat, authMiddleware)
	SetupOfferRouter(e, h.Offer, authMiddleware)
	SetupReviewRouter(e, h.Review, authMiddleware)
	SetupNotificationRouter(e, h.Notification, authMiddleware)
	SetupWebSocketRouter(e, h.WebSocket)
	SetupHealthRouter(e, h.Health)
}
