package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterhub/internal/domain/entity"
)

func TestFavoriteCreateIsIdempotent(t *testing.T) {
	store := NewStore()
	repo := NewMemoryFavoriteRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	item := seedItem(t, store, bob.ID, "guitar")

	first := &entity.Favorite{UserID: alice.ID, ItemID: item.ID}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.Favorite{UserID: alice.ID, ItemID: item.ID}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	favorites, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoriteDelete(t *testing.T) {
	store := NewStore()
	repo := NewMemoryFavoriteRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	bob := seedUser(t, store, "bob")
	item := seedItem(t, store, bob.ID, "guitar")

	require.NoError(t, repo.Create(ctx, &entity.Favorite{UserID: alice.ID, ItemID: item.ID}))

	removed, err := repo.Delete(ctx, alice.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, alice.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.GetByUserAndItem(ctx, alice.ID, item.ID)
	require.Error(t, err)
}
