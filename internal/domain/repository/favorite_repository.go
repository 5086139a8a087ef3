package repository

import (
	"context"

	"barterhub/internal/domain/entity"
)

type FavoriteRepository interface {
	// Create is idempotent per (userID, itemID): an existing row is
	// returned unchanged instead of a duplicate being inserted.
	Create(ctx context.Context, fav *entity.Favorite) error
	GetByUserAndItem(ctx context.Context, userID, itemID int64) (*entity.Favorite, error)
	Delete(ctx context.Context, userID, itemID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)
}
