package usecase

import (
	"context"

	"barterhub/internal/domain/entity"
	"barterhub/internal/domain/repository"
	ws "barterhub/internal/infrastructure/websocket"
	"barterhub/pkg/errors"
	"barterhub/pkg/logger"
)

// NotificationUseCase is the dispatcher: it persists the notification row
// first, then attempts a live push. The row is the durable record; an
// undelivered push is never retried or queued, the client reconciles via
// the unread count on reconnect.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	pushSubRepo      repository.PushSubscriptionRepository
	sink             EventSink
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	pushSubRepo repository.PushSubscriptionRepository,
	sink EventSink,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		pushSubRepo:      pushSubRepo,
		sink:             sink,
	}
}

// Notify persists a notification for the user and pushes it to their live
// connection when one exists. Push failure is swallowed; persistence
// failure is not.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID int64, ntype, content string, referenceID int64) (*entity.Notification, error) {
	notification := &entity.Notification{
		UserID:      userID,
		Type:        ntype,
		ReferenceID: referenceID,
		Content:     content,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if !uc.sink.SendToUser(userID, ws.Event{Type: ws.EventNotification, Notification: notification}) {
		logger.Debug("No live connection for user %d, notification %d waits for poll", userID, notification.ID)
	}
	uc.pushUnreadCount(ctx, userID)

	return notification, nil
}

func (uc *NotificationUseCase) pushUnreadCount(ctx context.Context, userID int64) {
	count, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		logger.Warn("Failed to count unread notifications for user %d: %v", userID, err)
		return
	}
	uc.sink.SendToUser(userID, ws.Event{Type: ws.EventNotificationCount, Count: count})
}

func (uc *NotificationUseCase) List(ctx context.Context, userID int64, filter entity.NotificationFilter) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, filter)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID int64) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return errors.Forbidden("Notification belongs to another user", nil)
	}
	if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
		return err
	}
	uc.pushUnreadCount(ctx, userID)
	return nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	count, err := uc.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	uc.pushUnreadCount(ctx, userID)
	return count, nil
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}

func (uc *NotificationUseCase) SubscribePush(ctx context.Context, userID int64, payload string) (*entity.PushSubscription, error) {
	if payload == "" {
		return nil, errors.Validation("Subscription payload is required", nil)
	}
	sub := &entity.PushSubscription{
		UserID:  userID,
		Payload: payload,
	}
	if err := uc.pushSubRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (uc *NotificationUseCase) UnsubscribePush(ctx context.Context, userID int64) (bool, error) {
	return uc.pushSubRepo.Delete(ctx, userID)
}
