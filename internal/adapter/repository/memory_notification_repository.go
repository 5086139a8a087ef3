package repository

import (
	"context"
	"sort"
	"time"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	"barterhub/pkg/errors"
)

type memoryNotificationRepository struct {
	store *Store
}

func NewMemoryNotificationRepository(store *Store) repository.NotificationRepository {
	return &memoryNotificationRepository{store: store}
}

func (r *memoryNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[n.UserID]; !ok {
		return errors.Validation("Notification target user does not exist", nil)
	}

	n.ID = s.nextID("notification")
	n.IsRead = false
	n.CreatedAt = time.Now()
	s.notifications[n.ID] = *n
	return nil
}

func (r *memoryNotificationRepository) GetByID(ctx context.Context, id int64) (*entity.Notification, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	return &n, nil
}

func (r *memoryNotificationRepository) ListByUser(ctx context.Context, userID int64, filter entity.NotificationFilter) ([]*entity.Notification, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if !filter.IncludeRead && n.IsRead {
			continue
		}
		matched = append(matched, n)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		matched = nil
	} else {
		matched = matched[filter.Offset:]
		if filter.Limit > 0 && filter.Limit < len(matched) {
			matched = matched[:filter.Limit]
		}
	}

	out := make([]*entity.Notification, len(matched))
	for i := range matched {
		n := matched[i]
		out[i] = &n
	}
	return out, total, nil
}

func (r *memoryNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	n.IsRead = true
	s.notifications[id] = n
	return nil
}

func (r *memoryNotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			s.notifications[id] = n
			count++
		}
	}
	return count, nil
}

func (r *memoryNotificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

type memoryPushSubscriptionRepository struct {
	store *Store
}

func NewMemoryPushSubscriptionRepository(store *Store) repository.PushSubscriptionRepository {
	return &memoryPushSubscriptionRepository{store: store}
}

func (r *memoryPushSubscriptionRepository) Upsert(ctx context.Context, sub *entity.PushSubscription) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[sub.UserID]; !ok {
		return errors.Validation("Subscription user does not exist", nil)
	}

	now := time.Now()
	for id, existing := range s.pushSubs {
		if existing.UserID == sub.UserID {
			existing.Payload = sub.Payload
			existing.UpdatedAt = now
			s.pushSubs[id] = existing
			*sub = existing
			return nil
		}
	}

	sub.ID = s.nextID("push_subscription")
	sub.CreatedAt = now
	sub.UpdatedAt = now
	s.pushSubs[sub.ID] = *sub
	return nil
}

func (r *memoryPushSubscriptionRepository) GetByUser(ctx context.Context, userID int64) (*entity.PushSubscription, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.pushSubs {
		if sub.UserID == userID {
			out := sub
			return &out, nil
		}
	}
	return nil, errors.NotFound("Push subscription", nil)
}

func (r *memoryPushSubscriptionRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sub := range s.pushSubs {
		if sub.UserID == userID {
			delete(s.pushSubs, id)
			return true, nil
		}
	}
	return false, nil
}
