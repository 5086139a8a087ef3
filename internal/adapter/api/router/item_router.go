package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

func SetupItemRouter(e *echo.Echo, itemHandler *handler.ItemHandler, authMiddleware *middleware.AuthMiddleware) {
	itemGroup := e.Group("/v1/items")

	// Public browsing
	itemGroup.GET("", itemHandler.List)
	itemGroup.GET("/:id", itemHandler.Get)
	itemGroup.GET("/:id/images", itemHandler.ListImages)

	// Owner operations
	authed := e.Group("/v1/items")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", itemHandler.Create)
	authed.GET("/mine", itemHandler.MyItems)
	authed.PATCH("/:id", itemHandler.Update)
	authed.DELETE("/:id", itemHandler.Delete)
	authed.POST("/:id/images", itemHandler.UploadImage)
	authed.PUT("/:id/images/:imageId/main", itemHandler.SetMainImage)
	authed.DELETE("/:id/images/:imageId", itemHandler.DeleteImage)
}
