package usecase

import (
	"context"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type ItemUseCase struct {
	itemRepo  repository.ItemRepository
	imageRepo repository.ImageRepository
	userRepo  repository.UserRepository
	enricher  *Enricher
}

func NewItemUseCase(
	itemRepo repository.ItemRepository,
	imageRepo repository.ImageRepository,
	userRepo repository.UserRepository,
	enricher *Enricher,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:  itemRepo,
		imageRepo: imageRepo,
		userRepo:  userRepo,
		enricher:  enricher,
	}
}

type CreateItemInput struct {
	Title       string
	Description string
	Category    string
	Condition   string
	City        string
}

func (uc *ItemUseCase) CreateItem(ctx context.Context, ownerID int64, input CreateItemInput) (*ItemResponse, error) {
	item := &entity.Item{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Condition:   input.Condition,
		City:        input.City,
		Status:      entity.ItemStatusActive,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return uc.enricher.Item(ctx, item), nil
}

type ItemDetailResponse struct {
	ItemResponse
	Images []*entity.Image `json:"images"`
	Owner  *entity.User    `json:"owner,omitempty"`
}

func (uc *ItemUseCase) GetItem(ctx context.Context, id int64) (*ItemDetailResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := uc.imageRepo.ListByItem(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ItemDetailResponse{
		ItemResponse: *uc.enricher.Item(ctx, item),
		Images:       images,
	}
	if owner, err := uc.userRepo.GetByID(ctx, item.OwnerID); err == nil {
		detail.Owner = owner
	}
	return detail, nil
}

func (uc *ItemUseCase) ListItems(ctx context.Context, filter entity.ItemFilter) ([]*ItemResponse, int64, error) {
	items, total, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*ItemResponse, len(items))
	for i, item := range items {
		out[i] = uc.enricher.Item(ctx, item)
	}
	return out, total, nil
}

func (uc *ItemUseCase) ListItemsByOwner(ctx context.Context, ownerID int64) ([]*ItemResponse, error) {
	items, err := uc.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]*ItemResponse, len(items))
	for i, item := range items {
		out[i] = uc.enricher.Item(ctx, item)
	}
	return out, nil
}

func (uc *ItemUseCase) UpdateItem(ctx context.Context, actorID, itemID int64, patch entity.ItemPatch, actorRole string) (*ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID && actorRole != entity.RoleAdmin {
		return nil, errors.Forbidden("Only the owner can update this item", nil)
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Condition != nil {
		item.Condition = *patch.Condition
	}
	if patch.City != nil {
		item.City = *patch.City
	}
	if patch.Status != nil {
		if !validItemStatus(*patch.Status) {
			return nil, errors.Validation("Unknown item status", nil)
		}
		if *patch.Status == entity.ItemStatusSuspended && actorRole != entity.RoleAdmin {
			return nil, errors.Forbidden("Only admins can suspend items", nil)
		}
		item.Status = *patch.Status
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return uc.enricher.Item(ctx, item), nil
}

func validItemStatus(status string) bool {
	switch status {
	case entity.ItemStatusActive, entity.ItemStatusPending, entity.ItemStatusCompleted, entity.ItemStatusSuspended:
		return true
	}
	return false
}

func (uc *ItemUseCase) DeleteItem(ctx context.Context, actorID, itemID int64, actorRole string) (bool, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item.OwnerID != actorID && actorRole != entity.RoleAdmin {
		return false, errors.Forbidden("Only the owner can delete this item", nil)
	}
	return uc.itemRepo.Delete(ctx, itemID)
}

func (uc *ItemUseCase) AddImage(ctx context.Context, actorID, itemID int64, filePath string, isMain bool) (*entity.Image, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, errors.Forbidden("Only the owner can add images", nil)
	}

	image := &entity.Image{
		ItemID:   itemID,
		FilePath: filePath,
		IsMain:   isMain,
	}
	if err := uc.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (uc *ItemUseCase) ListImages(ctx context.Context, itemID int64) ([]*entity.Image, error) {
	if _, err := uc.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return uc.imageRepo.ListByItem(ctx, itemID)
}

func (uc *ItemUseCase) SetMainImage(ctx context.Context, actorID, imageID, itemID int64) error {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return errors.Forbidden("Only the owner can change the main image", nil)
	}
	return uc.imageRepo.SetMain(ctx, imageID, itemID)
}

func (uc *ItemUseCase) DeleteImage(ctx context.Context, actorID, imageID int64) (bool, error) {
	image, err := uc.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return false, err
	}
	// Tolerate a dangling item: the owner row may already be gone, in
	// which case anyone cleaning up is allowed through.
	if item, err := uc.itemRepo.GetByID(ctx, image.ItemID); err == nil && item.OwnerID != actorID {
		return false, errors.Forbidden("Only the owner can delete images", nil)
	}
	return uc.imageRepo.Delete(ctx, imageID)
}
