package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterhub/internal/domain/entity"
	ws "barterhub/internal/infrastructure/websocket"
	"barterhub/pkg/errors"
)

func TestNotifyPersistsBeforePushing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.newUser(t, "alice")

	// Alice has no live connection; the notification must still land.
	notification, err := e.notifications.Notify(ctx, alice.ID, entity.NotificationTypeSystem, "welcome", 0)
	require.NoError(t, err)
	assert.NotZero(t, notification.ID)

	stored, _, err := e.notifications.List(ctx, alice.ID, entity.NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "welcome", stored[0].Content)

	// The push was attempted anyway, along with the new unread count.
	pushes := e.sink.eventsFor(alice.ID, ws.EventNotification)
	require.Len(t, pushes, 1)
	counts := e.sink.eventsFor(alice.ID, ws.EventNotificationCount)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Count)
}

func TestNotifyFailsForUnknownUser(t *testing.T) {
	e := newEnv(t)

	_, err := e.notifications.Notify(context.Background(), 999, entity.NotificationTypeSystem, "ghost", 0)
	require.Error(t, err)
	// Nothing was pushed for a notification that never persisted.
	assert.Empty(t, e.sink.eventsFor(999, ws.EventNotification))
}

func TestMarkReadEnforcesOwnership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.newUser(t, "alice")
	bob := e.newUser(t, "bob")

	notification, err := e.notifications.Notify(ctx, alice.ID, entity.NotificationTypeSystem, "hello", 0)
	require.NoError(t, err)

	err = e.notifications.MarkRead(ctx, notification.ID, bob.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, e.notifications.MarkRead(ctx, notification.ID, alice.ID))

	count, err := e.notifications.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// The updated count was pushed after marking.
	counts := e.sink.eventsFor(alice.ID, ws.EventNotificationCount)
	require.NotEmpty(t, counts)
	assert.Equal(t, 0, counts[len(counts)-1].Count)
}

func TestMarkAllRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.newUser(t, "alice")

	for i := 0; i < 3; i++ {
		_, err := e.notifications.Notify(ctx, alice.ID, entity.NotificationTypeSystem, "ping", 0)
		require.NoError(t, err)
	}

	marked, err := e.notifications.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, marked)

	count, err := e.notifications.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPushSubscriptionLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.newUser(t, "alice")

	_, err := e.notifications.SubscribePush(ctx, alice.ID, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	sub, err := e.notifications.SubscribePush(ctx, alice.ID, `{"endpoint":"a"}`)
	require.NoError(t, err)

	replaced, err := e.notifications.SubscribePush(ctx, alice.ID, `{"endpoint":"b"}`)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, replaced.ID)

	removed, err := e.notifications.UnsubscribePush(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = e.notifications.UnsubscribePush(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
