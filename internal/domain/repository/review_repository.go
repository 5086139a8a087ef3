package repository

import (
	"context"

	"barterhub/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id int64) (*entity.Review, error)
	GetByOfferAndAuthor(ctx context.Context, offerID, authorID int64) (*entity.Review, error)
	ListByTarget(ctx context.Context, targetID int64, limit, offset int) ([]*entity.Review, int64, error)
	AggregateForUser(ctx context.Context, targetID int64) (*entity.UserRating, error)
}
