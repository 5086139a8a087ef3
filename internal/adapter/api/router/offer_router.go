package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

func SetupOfferRouter(e *echo.Echo, offerHandler *handler.OfferHandler, authMiddleware *middleware.AuthMiddleware) {
	offerGroup := e.Group("/v1/offers")
	offerGroup.Use(authMiddleware.Authenticate)

	offerGroup.POST("", offerHandler.Create)
	offerGroup.GET("", offerHandler.List)
	offerGroup.GET("/:id", offerHandler.Get)
	offerGroup.POST("/:id/accept", offerHandler.Accept)
	offerGroup.POST("/:id/reject", offerHandler.Reject)
	offerGroup.POST("/:id/cancel", offerHandler.Cancel)
	offerGroup.POST("/:id/complete", offerHandler.Complete)
}
