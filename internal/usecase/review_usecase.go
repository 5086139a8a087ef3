package usecase

import (
	"context"
	"fmt"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
	"barterhub/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	offerRepo  repository.OfferRepository
	enricher   *Enricher
	notifier   *NotificationUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	offerRepo repository.OfferRepository,
	enricher *Enricher,
	notifier *NotificationUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		offerRepo:  offerRepo,
		enricher:   enricher,
		notifier:   notifier,
	}
}

type CreateReviewInput struct {
	OfferID int64
	Rating  int
	Comment string
}

// CreateReview records a rating for the counterparty of a completed
// offer. One review per (offer, author).
func (uc *ReviewUseCase) CreateReview(ctx context.Context, authorID int64, input CreateReviewInput) (*ReviewResponse, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}

	offer, err := uc.offerRepo.GetByID(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}

	if offer.FromUserID != authorID && offer.ToUserID != authorID {
		return nil, errors.Forbidden("Only a party to the offer can review it", nil)
	}
	if offer.Status != entity.OfferStatusCompleted {
		return nil, errors.InvalidState("Only completed offers can be reviewed", nil)
	}
	if _, err := uc.reviewRepo.GetByOfferAndAuthor(ctx, input.OfferID, authorID); err == nil {
		return nil, errors.InvalidState("You already reviewed this offer", nil)
	}

	targetID := offer.FromUserID
	if authorID == offer.FromUserID {
		targetID = offer.ToUserID
	}

	review := &entity.Review{
		OfferID:    input.OfferID,
		FromUserID: authorID,
		ToUserID:   targetID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if _, err := uc.notifier.Notify(ctx, targetID, entity.NotificationTypeSystem,
		fmt.Sprintf("You received a %d-star review", input.Rating), review.ID); err != nil {
		logger.Warn("Failed to notify user %d about review %d: %v", targetID, review.ID, err)
	}

	return uc.enricher.Review(ctx, review), nil
}

// CanReviewOffer reports review eligibility: the offer exists, is
// completed, the user is a party, and has not already reviewed it. A
// missing offer is simply "no", not an error.
func (uc *ReviewUseCase) CanReviewOffer(ctx context.Context, offerID, userID int64) (bool, error) {
	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return false, nil
	}
	if offer.Status != entity.OfferStatusCompleted {
		return false, nil
	}
	if offer.FromUserID != userID && offer.ToUserID != userID {
		return false, nil
	}
	if _, err := uc.reviewRepo.GetByOfferAndAuthor(ctx, offerID, userID); err == nil {
		return false, nil
	}
	return true, nil
}

func (uc *ReviewUseCase) ListReviewsForUser(ctx context.Context, targetID int64, limit, offset int) ([]*ReviewResponse, int64, error) {
	reviews, total, err := uc.reviewRepo.ListByTarget(ctx, targetID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = uc.enricher.Review(ctx, review)
	}
	return out, total, nil
}

func (uc *ReviewUseCase) GetUserRating(ctx context.Context, userID int64) (*entity.UserRating, error) {
	return uc.reviewRepo.AggregateForUser(ctx, userID)
}
