package handler

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/usecase"
	"barterhub/pkg/response"
	"barterhub/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	OfferID int64  `json:"offer_id" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), currentUserID(c), usecase.CreateReviewInput{
		OfferID: req.OfferID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}

func (h *ReviewHandler) Eligibility(c echo.Context) error {
	offerID, err := paramID(c, "offerId")
	if err != nil {
		return response.Error(c, err)
	}

	eligible, err := h.reviewUseCase.CanReviewOffer(c.Request().Context(), offerID, currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"offer_id":   offerID,
		"can_review": eligible,
	})
}

func (h *ReviewHandler) ListForUser(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return response.Error(c, err)
	}
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListReviewsForUser(
		c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) UserRating(c echo.Context) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return response.Error(c, err)
	}

	rating, err := h.reviewUseCase.GetUserRating(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, rating)
}
