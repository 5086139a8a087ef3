package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterhub/internal/domain/entity"
	"barterhub/pkg/errors"
)

// completedOffer runs a trade through to completion between two fresh users.
func completedOffer(t *testing.T, e *env) (*OfferResponse, *entity.User, *entity.User) {
	t.Helper()
	ctx := context.Background()

	alice := e.newUser(t, "alice")
	bob := e.newUser(t, "bob")
	bike := e.newItem(t, alice.ID, "bike")
	guitar := e.newItem(t, bob.ID, "guitar")

	offer, err := e.offers.CreateOffer(ctx, alice.ID, CreateOfferInput{
		ToUserID: bob.ID, FromItemID: bike.ID, ToItemID: guitar.ID,
	})
	require.NoError(t, err)
	_, err = e.offers.TransitionOffer(ctx, offer.ID, bob.ID, entity.OfferEventAccept)
	require.NoError(t, err)
	offer, err = e.offers.TransitionOffer(ctx, offer.ID, bob.ID, entity.OfferEventComplete)
	require.NoError(t, err)
	return offer, alice, bob
}

func TestCreateReviewTargetsCounterparty(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	offer, alice, bob := completedOffer(t, e)

	review, err := e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{
		OfferID: offer.ID, Rating: 5, Comment: "great trade",
	})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, review.ToUserID)
	assert.Equal(t, "bob", review.ToUser.Username)

	rating, err := e.reviews.GetUserRating(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rating.ReviewCount)
	assert.InDelta(t, 5.0, rating.AverageRating, 0.001)

	// The reviewed user is told about it.
	notifications, _, err := e.notifications.List(ctx, bob.ID, entity.NotificationFilter{})
	require.NoError(t, err)
	found := false
	for _, n := range notifications {
		if n.Type == entity.NotificationTypeSystem {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreateReviewValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	offer, alice, _ := completedOffer(t, e)
	carol := e.newUser(t, "carol")

	_, err := e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{OfferID: offer.ID, Rating: 6})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{OfferID: offer.ID, Rating: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = e.reviews.CreateReview(ctx, carol.ID, CreateReviewInput{OfferID: offer.ID, Rating: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateReviewRequiresCompletedOffer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.newUser(t, "alice")
	bob := e.newUser(t, "bob")
	bike := e.newItem(t, alice.ID, "bike")
	guitar := e.newItem(t, bob.ID, "guitar")

	offer, err := e.offers.CreateOffer(ctx, alice.ID, CreateOfferInput{
		ToUserID: bob.ID, FromItemID: bike.ID, ToItemID: guitar.ID,
	})
	require.NoError(t, err)

	_, err = e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{OfferID: offer.ID, Rating: 4})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestCreateReviewOncePerAuthor(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	offer, alice, bob := completedOffer(t, e)

	_, err := e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{OfferID: offer.ID, Rating: 5})
	require.NoError(t, err)

	_, err = e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{OfferID: offer.ID, Rating: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	// The other party reviews independently.
	_, err = e.reviews.CreateReview(ctx, bob.ID, CreateReviewInput{OfferID: offer.ID, Rating: 4})
	require.NoError(t, err)
}

func TestCanReviewOffer(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	offer, alice, bob := completedOffer(t, e)
	carol := e.newUser(t, "carol")

	ok, err := e.reviews.CanReviewOffer(ctx, offer.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.reviews.CanReviewOffer(ctx, offer.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// A missing offer answers no, it does not error.
	ok, err = e.reviews.CanReviewOffer(ctx, 999, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{OfferID: offer.ID, Rating: 5})
	require.NoError(t, err)

	ok, err = e.reviews.CanReviewOffer(ctx, offer.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.reviews.CanReviewOffer(ctx, offer.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListReviewsForUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	offer, alice, bob := completedOffer(t, e)

	_, err := e.reviews.CreateReview(ctx, alice.ID, CreateReviewInput{
		OfferID: offer.ID, Rating: 5, Comment: "prompt and friendly",
	})
	require.NoError(t, err)

	reviews, total, err := e.reviews.ListReviewsForUser(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reviews, 1)
	assert.Equal(t, "alice", reviews[0].FromUser.Username)
	assert.Equal(t, "prompt and friendly", reviews[0].Comment)
}
