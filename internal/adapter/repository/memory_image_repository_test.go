package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterhub/internal/domain/entity"
)

func TestImageMainFlagIsExclusive(t *testing.T) {
	store := NewStore()
	repo := NewMemoryImageRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	item := seedItem(t, store, alice.ID, "camera")

	first := &entity.Image{ItemID: item.ID, FilePath: "a.jpg", IsMain: true}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.Image{ItemID: item.ID, FilePath: "b.jpg", IsMain: true}
	require.NoError(t, repo.Create(ctx, second))

	images, err := repo.ListByItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)

	mains := 0
	for _, img := range images {
		if img.IsMain {
			mains++
			assert.Equal(t, second.ID, img.ID)
		}
	}
	assert.Equal(t, 1, mains)
}

func TestImageSetMainFlipsWithinItem(t *testing.T) {
	store := NewStore()
	repo := NewMemoryImageRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	item := seedItem(t, store, alice.ID, "camera")
	other := seedItem(t, store, alice.ID, "tripod")

	a := &entity.Image{ItemID: item.ID, FilePath: "a.jpg", IsMain: true}
	b := &entity.Image{ItemID: item.ID, FilePath: "b.jpg"}
	foreign := &entity.Image{ItemID: other.ID, FilePath: "c.jpg", IsMain: true}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, foreign))

	require.NoError(t, repo.SetMain(ctx, b.ID, item.ID))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsMain)

	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsMain)

	// The other item's main image is untouched.
	got, err = repo.GetByID(ctx, foreign.ID)
	require.NoError(t, err)
	assert.True(t, got.IsMain)

	// Image must belong to the named item.
	err = repo.SetMain(ctx, foreign.ID, item.ID)
	require.Error(t, err)
}

func TestImageListOrderedByID(t *testing.T) {
	store := NewStore()
	repo := NewMemoryImageRepository(store)
	ctx := context.Background()

	alice := seedUser(t, store, "alice")
	item := seedItem(t, store, alice.ID, "camera")

	for _, path := range []string{"1.jpg", "2.jpg", "3.jpg"} {
		require.NoError(t, repo.Create(ctx, &entity.Image{ItemID: item.ID, FilePath: path}))
	}

	images, err := repo.ListByItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "1.jpg", images[0].FilePath)
	assert.Equal(t, "3.jpg", images[2].FilePath)
}
