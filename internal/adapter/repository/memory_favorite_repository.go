package repository

import (
	"context"
	"sort"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryFavoriteRepository struct {
	store *Store
}

func NewMemoryFavoriteRepository(store *Store) repository.FavoriteRepository {
	return &memoryFavoriteRepository{store: store}
}

func (r *memoryFavoriteRepository) Create(ctx context.Context, fav *entity.Favorite) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[fav.UserID]; !ok {
		return errors.Validation("User does not exist", nil)
	}
	if _, ok := s.items[fav.ItemID]; !ok {
		return errors.Validation("Item does not exist", nil)
	}

	// Duplicate add returns the existing row.
	for _, existing := range s.favorites {
		if existing.UserID == fav.UserID && existing.ItemID == fav.ItemID {
			*fav = existing
			return nil
		}
	}

	fav.ID = s.nextID("favorite")
	fav.CreatedAt = time.Now()
	s.favorites[fav.ID] = *fav
	return nil
}

func (r *memoryFavoriteRepository) GetByUserAndItem(ctx context.Context, userID, itemID int64) (*entity.Favorite, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fav := range s.favorites {
		if fav.UserID == userID && fav.ItemID == itemID {
			f := fav
			return &f, nil
		}
	}
	return nil, errors.NotFound("Favorite", nil)
}

func (r *memoryFavoriteRepository) Delete(ctx context.Context, userID, itemID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, fav := range s.favorites {
		if fav.UserID == userID && fav.ItemID == itemID {
			delete(s.favorites, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Favorite, 0)
	for _, fav := range s.favorites {
		if fav.UserID == userID {
			matched = append(matched, fav)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	out := make([]*entity.Favorite, len(matched))
	for i := range matched {
		f := matched[i]
		out[i] = &f
	}
	return out, nil
}
