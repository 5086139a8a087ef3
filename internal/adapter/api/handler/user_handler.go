package handler

import (
	"github.com/labstack/echo/v4"

	"barterhub/internal/domain/entity"
	"barterhub/internal/usecase"
	"barterhub/pkg/response"
	"barterhub/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	profile, err := h.userUseCase.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

type updateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=128"`
	Avatar   *string `json:"avatar" validate:"omitempty,max=512"`
	Bio      *string `json:"bio" validate:"omitempty,max=1000"`
	Phone    *string `json:"phone" validate:"omitempty,e164"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), currentUserID(c), entity.UserPatch{
		FullName: req.FullName,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(
		c.Request().Context(),
		c.QueryParam("search"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}
