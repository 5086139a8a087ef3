package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"barterhub/internal/domain/entity"
)

func seedUser(t *testing.T, store *Store, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         entity.RoleUser,
		Active:       true,
	}
	require.NoError(t, NewMemoryUserRepository(store).Create(context.Background(), user))
	return user
}

func seedItem(t *testing.T, store *Store, ownerID int64, title string) *entity.Item {
	t.Helper()
	item := &entity.Item{
		OwnerID:     ownerID,
		Title:       title,
		Description: "an item",
		Category:    "misc",
		Condition:   "good",
		Status:      entity.ItemStatusActive,
	}
	require.NoError(t, NewMemoryItemRepository(store).Create(context.Background(), item))
	return item
}
