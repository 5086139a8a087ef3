package handler

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/domain/entity"
	"barterhub/internal/usecase"
	"barterhub/pkg/response"
)

type OfferHandler struct {
	offerUseCase *usecase.OfferUseCase
}

func NewOfferHandler(offerUseCase *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{
		offerUseCase: offerUseCase,
	}
}

type createOfferRequest struct {
	ToUserID   int64 `json:"to_user_id" validate:"required,gt=0"`
	FromItemID int64 `json:"from_item_id" validate:"required,gt=0"`
	ToItemID   int64 `json:"to_item_id" validate:"required,gt=0"`
}

func (h *OfferHandler) Create(c echo.Context) error {
	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	offer, err := h.offerUseCase.CreateOffer(c.Request().Context(), currentUserID(c), usecase.CreateOfferInput{
		ToUserID:   req.ToUserID,
		FromItemID: req.FromItemID,
		ToItemID:   req.ToItemID,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, offer)
}

func (h *OfferHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	offer, err := h.offerUseCase.GetOffer(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, offer)
}

func (h *OfferHandler) List(c echo.Context) error {
	offers, err := h.offerUseCase.ListOffers(c.Request().Context(), currentUserID(c), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, offers)
}

func (h *OfferHandler) Accept(c echo.Context) error {
	return h.transition(c, entity.OfferEventAccept)
}

func (h *OfferHandler) Reject(c echo.Context) error {
	return h.transition(c, entity.OfferEventReject)
}

func (h *OfferHandler) Cancel(c echo.Context) error {
	return h.transition(c, entity.OfferEventCancel)
}

func (h *OfferHandler) Complete(c echo.Context) error {
	return h.transition(c, entity.OfferEventComplete)
}

func (h *OfferHandler) transition(c echo.Context, event string) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	offer, err := h.offerUseCase.TransitionOffer(c.Request().Context(), id, currentUserID(c), event)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, offer)
}
