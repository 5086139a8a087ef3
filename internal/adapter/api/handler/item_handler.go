package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"barterhub/internal/domain/entity"
	"barterhub/internal/infrastructure/storage"
	"barterhub/internal/usecase"
	"barterhub/pkg/errors"
	"barterhub/pkg/response"
	"barterhub/pkg/utils"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
	storage     *storage.LocalStorageClient
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase, storage *storage.LocalStorageClient) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
		storage:     storage,
	}
}

type createItemRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
	Category    string `json:"category" validate:"required,max=64"`
	Condition   string `json:"condition" validate:"required,max=64"`
	City        string `json:"city" validate:"omitempty,max=64"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.CreateItem(c.Request().Context(), currentUserID(c), usecase.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		City:        req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, item)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := entity.ItemFilter{
		Category:  c.QueryParam("category"),
		Status:    c.QueryParam("status"),
		Search:    c.QueryParam("search"),
		City:      c.QueryParam("city"),
		Condition: c.QueryParam("condition"),
		Sort:      c.QueryParam("sort"),
		Limit:     pagination.PageSize,
		Offset:    pagination.Offset,
	}
	if filter.Status == "" {
		filter.Status = entity.ItemStatusActive
	}

	items, total, err := h.itemUseCase.ListItems(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *ItemHandler) MyItems(c echo.Context) error {
	items, err := h.itemUseCase.ListItemsByOwner(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

type updateItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Category    *string `json:"category" validate:"omitempty,max=64"`
	Condition   *string `json:"condition" validate:"omitempty,max=64"`
	City        *string `json:"city" validate:"omitempty,max=64"`
	Status      *string `json:"status" validate:"omitempty,oneof=active pending completed suspended"`
}

func (h *ItemHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.UpdateItem(c.Request().Context(), currentUserID(c), id, entity.ItemPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Condition:   req.Condition,
		City:        req.City,
		Status:      req.Status,
	}, currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.itemUseCase.DeleteItem(c.Request().Context(), currentUserID(c), id, currentRole(c))
	if err != nil {
		return response.Error(c, err)
	}
	if !deleted {
		return response.Error(c, errors.NotFound("Item", nil))
	}
	return response.Success(c, map[string]string{"message": "Item deleted successfully"})
}

func (h *ItemHandler) UploadImage(c echo.Context) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Image file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer file.Close()

	filePath, err := h.storage.Save(file, fileHeader.Filename)
	if err != nil {
		return response.Error(c, err)
	}

	isMain, _ := strconv.ParseBool(c.FormValue("is_main"))
	image, err := h.itemUseCase.AddImage(c.Request().Context(), currentUserID(c), itemID, filePath, isMain)
	if err != nil {
		h.storage.Delete(filePath)
		return response.Error(c, err)
	}
	return response.Created(c, image)
}

func (h *ItemHandler) ListImages(c echo.Context) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	images, err := h.itemUseCase.ListImages(c.Request().Context(), itemID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, images)
}

func (h *ItemHandler) SetMainImage(c echo.Context) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}
	imageID, err := paramID(c, "imageId")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.itemUseCase.SetMainImage(c.Request().Context(), currentUserID(c), imageID, itemID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Main image updated"})
}

func (h *ItemHandler) DeleteImage(c echo.Context) error {
	imageID, err := paramID(c, "imageId")
	if err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.itemUseCase.DeleteImage(c.Request().Context(), currentUserID(c), imageID)
	if err != nil {
		return response.Error(c, err)
	}
	if !deleted {
		return response.Error(c, errors.NotFound("Image", nil))
	}
	return response.Success(c, map[string]string{"message": "Image deleted successfully"})
}
