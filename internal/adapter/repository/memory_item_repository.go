package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryItemRepository struct {
	store *Store
}

func NewMemoryItemRepository(store *Store) repository.ItemRepository {
	return &memoryItemRepository{store: store}
}

func (r *memoryItemRepository) Create(ctx context.Context, item *entity.Item) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[item.OwnerID]; !ok {
		return errors.Validation("Item owner does not exist", nil)
	}

	now := time.Now()
	item.ID = s.nextID("item")
	if item.Status == "" {
		item.Status = entity.ItemStatusActive
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	s.items[item.ID] = *item
	return nil
}

func (r *memoryItemRepository) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	return &item, nil
}

func (r *memoryItemRepository) List(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Item, 0, len(s.items))
	for _, item := range s.items {
		if !matchesItemFilter(item, filter) {
			continue
		}
		matched = append(matched, item)
	}

	sortItems(matched, filter.Sort)

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[filter.Offset:]
		if filter.Limit > 0 && filter.Limit < len(matched) {
			matched = matched[:filter.Limit]
		}
	}

	out := make([]*entity.Item, len(matched))
	for i := range matched {
		it := matched[i]
		out[i] = &it
	}
	return out, total, nil
}

func matchesItemFilter(item entity.Item, filter entity.ItemFilter) bool {
	if filter.Category != "" && item.Category != filter.Category {
		return false
	}
	if filter.Status != "" && item.Status != filter.Status {
		return false
	}
	if filter.City != "" && item.City != filter.City {
		return false
	}
	if filter.Condition != "" && item.Condition != filter.Condition {
		return false
	}
	if filter.OwnerID != 0 && item.OwnerID != filter.OwnerID {
		return false
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		haystack := strings.ToLower(item.Title + " " + item.Description)
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func sortItems(items []entity.Item, mode string) {
	switch mode {
	case entity.SortOldest:
		sort.Slice(items, func(i, j int) bool {
			if items[i].CreatedAt.Equal(items[j].CreatedAt) {
				return items[i].ID < items[j].ID
			}
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	case entity.SortTitleAsc:
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	case entity.SortTitleDesc:
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) > strings.ToLower(items[j].Title)
		})
	default: // newest
		sort.Slice(items, func(i, j int) bool {
			if items[i].CreatedAt.Equal(items[j].CreatedAt) {
				return items[i].ID > items[j].ID
			}
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

func (r *memoryItemRepository) Update(ctx context.Context, item *entity.Item) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return errors.NotFound("Item", nil)
	}
	item.UpdatedAt = time.Now()
	s.items[item.ID] = *item
	return nil
}

// Delete removes the item only. Images, offers and favorites that
// reference it are left in place; enrichment tolerates the dangling ids.
func (r *memoryItemRepository) Delete(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (r *memoryItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Item, 0)
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			matched = append(matched, item)
		}
	}
	sortItems(matched, entity.SortNewest)

	out := make([]*entity.Item, len(matched))
	for i := range matched {
		it := matched[i]
		out[i] = &it
	}
	return out, nil
}
