package repository

import (
	"context"

	"barterhub/internal/domain/entity"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, id int64) (*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	// ListByUser returns offers where the user is either party, newest
	// first; status filters when non-empty.
	ListByUser(ctx context.Context, userID int64, status string) ([]*entity.Offer, error)
}
