package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"barterhub/internal/domain/entity"
	"barterhub/internal/usecase"
	"barterhub/pkg/response"
	"barterhub/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	includeRead, _ := strconv.ParseBool(c.QueryParam("include_read"))

	notifications, total, err := h.notificationUseCase.List(c.Request().Context(), currentUserID(c), entity.NotificationFilter{
		IncludeRead: includeRead,
		Limit:       pagination.PageSize,
		Offset:      pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, notifications, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"count": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), id, currentUserID(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	count, err := h.notificationUseCase.MarkAllRead(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"marked": count})
}

type subscribeRequest struct {
	Payload string `json:"payload" validate:"required"`
}

func (h *NotificationHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sub, err := h.notificationUseCase.SubscribePush(c.Request().Context(), currentUserID(c), req.Payload)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, sub)
}

func (h *NotificationHandler) Unsubscribe(c echo.Context) error {
	removed, err := h.notificationUseCase.UnsubscribePush(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"removed": removed})
}
