package usecase

import (
	"context"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	itemRepo     repository.ItemRepository
	enricher     *Enricher
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	itemRepo repository.ItemRepository,
	enricher *Enricher,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		itemRepo:     itemRepo,
		enricher:     enricher,
	}
}

// AddFavorite is idempotent: adding an already-favorited item returns the
// existing row.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, userID, itemID int64) (*entity.Favorite, error) {
	fav := &entity.Favorite{
		UserID: userID,
		ItemID: itemID,
	}
	if err := uc.favoriteRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, itemID int64) (bool, error) {
	return uc.favoriteRepo.Delete(ctx, userID, itemID)
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, itemID int64) (bool, error) {
	if _, err := uc.favoriteRepo.GetByUserAndItem(ctx, userID, itemID); err != nil {
		return false, nil
	}
	return true, nil
}

type FavoriteResponse struct {
	*entity.Favorite
	Item *ItemResponse `json:"item,omitempty"`
}

func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, userID int64) ([]*FavoriteResponse, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*FavoriteResponse, len(favorites))
	for i, fav := range favorites {
		entry := &FavoriteResponse{Favorite: fav}
		if item, err := uc.itemRepo.GetByID(ctx, fav.ItemID); err == nil {
			entry.Item = uc.enricher.Item(ctx, item)
		}
		out[i] = entry
	}
	return out, nil
}
