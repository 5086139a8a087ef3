package handler

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/usecase"
	"barterhub/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return response.Error(c, err)
	}

	fav, err := h.favoriteUseCase.AddFavorite(c.Request().Context(), currentUserID(c), itemID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, fav)
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return response.Error(c, err)
	}

	removed, err := h.favoriteUseCase.RemoveFavorite(c.Request().Context(), currentUserID(c), itemID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"removed": removed})
}

func (h *FavoriteHandler) Status(c echo.Context) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return response.Error(c, err)
	}

	isFavorite, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), currentUserID(c), itemID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"item_id":     itemID,
		"is_favorite": isFavorite,
	})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	favorites, err := h.favoriteUseCase.ListFavorites(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, favorites)
}
