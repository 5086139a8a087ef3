package repository

import (
	"context"
	"sort"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryReviewRepository struct {
	store *Store
}

func NewMemoryReviewRepository(store *Store) repository.ReviewRepository {
	return &memoryReviewRepository{store: store}
}

func (r *memoryReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[review.OfferID]; !ok {
		return errors.Validation("Reviewed offer does not exist", nil)
	}
	if _, ok := s.users[review.FromUserID]; !ok {
		return errors.Validation("Review author does not exist", nil)
	}
	if _, ok := s.users[review.ToUserID]; !ok {
		return errors.Validation("Review target does not exist", nil)
	}
	for _, existing := range s.reviews {
		if existing.OfferID == review.OfferID && existing.FromUserID == review.FromUserID {
			return errors.InvalidState("Offer is already reviewed by this user", nil)
		}
	}

	review.ID = s.nextID("review")
	review.CreatedAt = time.Now()
	s.reviews[review.ID] = *review
	return nil
}

func (r *memoryReviewRepository) GetByID(ctx context.Context, id int64) (*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return &review, nil
}

func (r *memoryReviewRepository) GetByOfferAndAuthor(ctx context.Context, offerID, authorID int64) (*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, review := range s.reviews {
		if review.OfferID == offerID && review.FromUserID == authorID {
			out := review
			return &out, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *memoryReviewRepository) ListByTarget(ctx context.Context, targetID int64, limit, offset int) ([]*entity.Review, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Review, 0)
	for _, review := range s.reviews {
		if review.ToUserID == targetID {
			matched = append(matched, review)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[offset:]
		if limit > 0 && limit < len(matched) {
			matched = matched[:limit]
		}
	}

	out := make([]*entity.Review, len(matched))
	for i := range matched {
		rv := matched[i]
		out[i] = &rv
	}
	return out, total, nil
}

func (r *memoryReviewRepository) AggregateForUser(ctx context.Context, targetID int64) (*entity.UserRating, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum, count := 0, 0
	for _, review := range s.reviews {
		if review.ToUserID == targetID {
			sum += review.Rating
			count++
		}
	}

	rating := &entity.UserRating{ReviewCount: count}
	if count > 0 {
		rating.AverageRating = float64(sum) / float64(count)
	}
	return rating, nil
}
