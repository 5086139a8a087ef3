package repository

import (
	"context"

	"barterhub/internal/domain/entity"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, int64, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) (bool, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Item, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	GetByID(ctx context.Context, id int64) (*entity.Image, error)
	ListByItem(ctx context.Context, itemID int64) ([]*entity.Image, error)
	SetMain(ctx context.Context, imageID, itemID int64) error
	Delete(ctx context.Context, id int64) (bool, error)
}
