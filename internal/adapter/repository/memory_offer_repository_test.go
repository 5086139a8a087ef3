package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterhub/internal/domain/entity"
	"barterhub/pkg/errors"
)

func seedOffer(t *testing.T, store *Store, fromUser, toUser *entity.User, status string) *entity.Offer {
	t.Helper()
	fromItem := seedItem(t, store, fromUser.ID, "offered")
	toItem := seedItem(t, store, toUser.ID, "wanted")
	offer := &entity.Offer{
		FromUserID: fromUser.ID,
		ToUserID:   toUser.ID,
		FromItemID: fromItem.ID,
		ToItemID:   toItem.ID,
		Status:     status,
	}
	require.NoError(t, NewMemoryOfferRepository(store).Create(context.Background(), offer))
	return offer
}

func TestOfferCreateValidatesReferences(t *testing.T) {
	store := NewStore()
	repo := NewMemoryOfferRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	item := seedItem(t, store, alice.ID, "bike")

	err := repo.Create(ctx, &entity.Offer{
		FromUserID: alice.ID, ToUserID: bob.ID, FromItemID: item.ID, ToItemID: 99,
		Status: entity.OfferStatusPending,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	err = repo.Create(ctx, &entity.Offer{
		FromUserID: 99, ToUserID: bob.ID, FromItemID: item.ID, ToItemID: item.ID,
		Status: entity.OfferStatusPending,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestOfferListByUserFiltersByPartyAndStatus(t *testing.T) {
	store := NewStore()
	repo := NewMemoryOfferRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	carol := seedUser(t, store, "carol")

	sent := seedOffer(t, store, alice, bob, entity.OfferStatusPending)
	received := seedOffer(t, store, carol, alice, entity.OfferStatusAccepted)
	seedOffer(t, store, bob, carol, entity.OfferStatusPending) // not alice's

	offers, err := repo.ListByUser(ctx, alice.ID, "")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, received.ID, offers[0].ID) // newest first

	offers, err = repo.ListByUser(ctx, alice.ID, entity.OfferStatusPending)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, sent.ID, offers[0].ID)
}

func TestOfferUpdatePersistsStatus(t *testing.T) {
	store := NewStore()
	repo := NewMemoryOfferRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	offer := seedOffer(t, store, alice, bob, entity.OfferStatusPending)

	offer.Status = entity.OfferStatusAccepted
	require.NoError(t, repo.Update(ctx, offer))

	reloaded, err := repo.GetByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStatusAccepted, reloaded.Status)
	assert.False(t, reloaded.UpdatedAt.IsZero())
}
