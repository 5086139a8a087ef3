package router

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/adapter/api/handler"
	"barterhub/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	reviewGroup := e.Group("/v1/reviews")

	reviewGroup.GET("/user/:userId", reviewHandler.ListForUser)
	reviewGroup.GET("/user/:userId/rating", reviewHandler.UserRating)

	reviewGroup.POST("", reviewHandler.Create, authMiddleware.Authenticate)
	reviewGroup.GET("/offer/:offerId/eligibility", reviewHandler.Eligibility, authMiddleware.Authenticate)
}
