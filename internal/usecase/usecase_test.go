package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	memrepo "barterhub/internal/adapter/repository"
	"barterhub/internal/domain/entity"
	ws "barterhub/internal/infrastructure/websocket"
)

// fakeSink records every push so tests can assert on delivery without a
// live websocket. Users are "connected" only when marked so.
type fakeSink struct {
	sent      []sinkCall
	broadcast []ws.Event
	connected map[int64]bool
}

type sinkCall struct {
	userID int64
	event  ws.Event
}

func newFakeSink() *fakeSink {
	return &fakeSink{connected: make(map[int64]bool)}
}

func (s *fakeSink) SendToUser(userID int64, event ws.Event) bool {
	s.sent = append(s.sent, sinkCall{userID: userID, event: event})
	return s.connected[userID]
}

func (s *fakeSink) Broadcast(event ws.Event) {
	s.broadcast = append(s.broadcast, event)
}

func (s *fakeSink) eventsFor(userID int64, eventType string) []ws.Event {
	var out []ws.Event
	for _, call := range s.sent {
		if call.userID == userID && call.event.Type == eventType {
			out = append(out, call.event)
		}
	}
	return out
}

// env wires every use case over one shared store, the way main does.
type env struct {
	store *memrepo.Store
	sink  *fakeSink

	users         *UserUseCase
	items         *ItemUseCase
	favorites     *FavoriteUseCase
	chat          *ChatUseCase
	offers        *OfferUseCase
	reviews       *ReviewUseCase
	notifications *NotificationUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := memrepo.NewStore()
	userRepo := memrepo.NewMemoryUserRepository(store)
	itemRepo := memrepo.NewMemoryItemRepository(store)
	imageRepo := memrepo.NewMemoryImageRepository(store)
	chatRepo := memrepo.NewMemoryChatRepository(store)
	offerRepo := memrepo.NewMemoryOfferRepository(store)
	favoriteRepo := memrepo.NewMemoryFavoriteRepository(store)
	notificationRepo := memrepo.NewMemoryNotificationRepository(store)
	pushSubRepo := memrepo.NewMemoryPushSubscriptionRepository(store)
	reviewRepo := memrepo.NewMemoryReviewRepository(store)

	sink := newFakeSink()
	enricher := NewEnricher(userRepo, itemRepo, imageRepo, chatRepo, offerRepo)
	notifications := NewNotificationUseCase(notificationRepo, pushSubRepo, sink)

	return &env{
		store:         store,
		sink:          sink,
		users:         NewUserUseCase(userRepo, reviewRepo),
		items:         NewItemUseCase(itemRepo, imageRepo, userRepo, enricher),
		favorites:     NewFavoriteUseCase(favoriteRepo, itemRepo, enricher),
		chat:          NewChatUseCase(chatRepo, userRepo, itemRepo, enricher, sink),
		offers:        NewOfferUseCase(offerRepo, itemRepo, chatRepo, enricher, notifications, sink),
		reviews:       NewReviewUseCase(reviewRepo, offerRepo, enricher, notifications),
		notifications: notifications,
	}
}

func (e *env) newUser(t *testing.T, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         entity.RoleUser,
		Active:       true,
	}
	require.NoError(t, memrepo.NewMemoryUserRepository(e.store).Create(context.Background(), user))
	return user
}

func (e *env) newItem(t *testing.T, ownerID int64, title string) *entity.Item {
	t.Helper()
	item := &entity.Item{
		OwnerID:     ownerID,
		Title:       title,
		Description: "an item",
		Category:    "misc",
		Condition:   "good",
		Status:      entity.ItemStatusActive,
	}
	require.NoError(t, memrepo.NewMemoryItemRepository(e.store).Create(context.Background(), item))
	return item
}

func (e *env) itemStatus(t *testing.T, itemID int64) string {
	t.Helper()
	item, err := memrepo.NewMemoryItemRepository(e.store).GetByID(context.Background(), itemID)
	require.NoError(t, err)
	return item.Status
}
