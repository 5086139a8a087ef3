package entity

import "time"

const (
	NotificationTypeOfferReceived = "offer_received"
	NotificationTypeOfferUpdate   = "offer_update"
	NotificationTypeNewMessage    = "new_message"
	NotificationTypeSystem        = "system"
)

type Notification struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Type        string    `json:"type"`
	ReferenceID int64     `json:"reference_id,omitempty"` // 0 when unset
	Content     string    `json:"content"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationFilter pages a user's notification feed.
type NotificationFilter struct {
	IncludeRead bool
	Limit       int
	Offset      int
}

// PushSubscription stores one web-push subscription per user, upserted on
// re-registration.
type PushSubscription struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
