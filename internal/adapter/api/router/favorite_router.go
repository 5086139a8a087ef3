package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, favoriteHandler *handler.FavoriteHandler, authMiddleware *middleware.AuthMiddleware) {
	favoriteGroup := e.Group("/v1/favorites")
	favoriteGroup.Use(authMiddleware.Authenticate)

	favoriteGroup.POST("/:itemId", favoriteHandler.Add)
	favoriteGroup.DELETE("/:itemId", favoriteHandler.Remove)
	favoriteGroup.GET("/:itemId/status", favoriteHandler.Status)
	favoriteGroup.GET("", favoriteHandler.List)
}
