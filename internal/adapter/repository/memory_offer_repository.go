package repository

import (
	"context"
	"sort"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryOfferRepository struct {
	store *Store
}

func NewMemoryOfferRepository(store *Store) repository.OfferRepository {
	return &memoryOfferRepository{store: store}
}

func (r *memoryOfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[offer.FromUserID]; !ok {
		return errors.Validation("Offering user does not exist", nil)
	}
	if _, ok := s.users[offer.ToUserID]; !ok {
		return errors.Validation("Receiving user does not exist", nil)
	}
	if _, ok := s.items[offer.FromItemID]; !ok {
		return errors.Validation("Offered item does not exist", nil)
	}
	if _, ok := s.items[offer.ToItemID]; !ok {
		return errors.Validation("Requested item does not exist", nil)
	}
	if offer.ConversationID != 0 {
		if _, ok := s.conversations[offer.ConversationID]; !ok {
			return errors.Validation("Offer conversation does not exist", nil)
		}
	}

	now := time.Now()
	offer.ID = s.nextID("offer")
	if offer.Status == "" {
		offer.Status = entity.OfferStatusPending
	}
	offer.CreatedAt = now
	offer.UpdatedAt = now
	s.offers[offer.ID] = *offer
	return nil
}

func (r *memoryOfferRepository) GetByID(ctx context.Context, id int64) (*entity.Offer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	offer, ok := s.offers[id]
	if !ok {
		return nil, errors.NotFound("Offer", nil)
	}
	return &offer, nil
}

func (r *memoryOfferRepository) Update(ctx context.Context, offer *entity.Offer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[offer.ID]; !ok {
		return errors.NotFound("Offer", nil)
	}
	offer.UpdatedAt = time.Now()
	s.offers[offer.ID] = *offer
	return nil
}

func (r *memoryOfferRepository) ListByUser(ctx context.Context, userID int64, status string) ([]*entity.Offer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Offer, 0)
	for _, offer := range s.offers {
		if offer.FromUserID != userID && offer.ToUserID != userID {
			continue
		}
		if status != "" && offer.Status != status {
			continue
		}
		matched = append(matched, offer)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	out := make([]*entity.Offer, len(matched))
	for i := range matched {
		o := matched[i]
		out[i] = &o
	}
	return out, nil
}
