package repository

import (
	"context"

	"barterhub/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID int64, filter entity.NotificationFilter) ([]*entity.Notification, int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) (int, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
}

type PushSubscriptionRepository interface {
	Upsert(ctx context.Context, sub *entity.PushSubscription) error
	GetByUser(ctx context.Context, userID int64) (*entity.PushSubscription, error)
	Delete(ctx context.Context, userID int64) (bool, error)
}
