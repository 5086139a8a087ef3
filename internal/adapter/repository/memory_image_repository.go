package repository

import (
	"context"
	"sort"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryImageRepository struct {
	store *Store
}

func NewMemoryImageRepository(store *Store) repository.ImageRepository {
	return &memoryImageRepository{store: store}
}

// Create inserts the image. When IsMain is set, any previous main image of
// the same item is demoted in the same critical section so at most one
// image per item carries the flag.
func (r *memoryImageRepository) Create(ctx context.Context, image *entity.Image) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[image.ItemID]; !ok {
		return errors.Validation("Item does not exist", nil)
	}

	if image.IsMain {
		for id, other := range s.images {
			if other.ItemID == image.ItemID && other.IsMain {
				other.IsMain = false
				s.images[id] = other
			}
		}
	}

	image.ID = s.nextID("image")
	image.CreatedAt = time.Now()
	s.images[image.ID] = *image
	return nil
}

func (r *memoryImageRepository) GetByID(ctx context.Context, id int64) (*entity.Image, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	image, ok := s.images[id]
	if !ok {
		return nil, errors.NotFound("Image", nil)
	}
	return &image, nil
}

func (r *memoryImageRepository) ListByItem(ctx context.Context, itemID int64) ([]*entity.Image, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Image, 0)
	for _, image := range s.images {
		if image.ItemID == itemID {
			matched = append(matched, image)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	out := make([]*entity.Image, len(matched))
	for i := range matched {
		img := matched[i]
		out[i] = &img
	}
	return out, nil
}

func (r *memoryImageRepository) SetMain(ctx context.Context, imageID, itemID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.images[imageID]
	if !ok || target.ItemID != itemID {
		return errors.NotFound("Image", nil)
	}

	for id, image := range s.images {
		if image.ItemID != itemID {
			continue
		}
		image.IsMain = id == imageID
		s.images[id] = image
	}
	return nil
}

func (r *memoryImageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[id]; !ok {
		return false, nil
	}
	delete(s.images, id)
	return true, nil
}
