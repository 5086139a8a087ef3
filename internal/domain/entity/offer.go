package entity

import "time"

const (
	OfferStatusPending   = "pending"
	OfferStatusAccepted  = "accepted"
	OfferStatusRejected  = "rejected"
	OfferStatusCancelled = "cancelled"
	OfferStatusCompleted = "completed"
)

// Offer lifecycle events. pending moves to accepted, rejected or
// cancelled; accepted moves to completed; the rest are terminal.
const (
	OfferEventAccept   = "accept"
	OfferEventReject   = "reject"
	OfferEventCancel   = "cancel"
	OfferEventComplete = "complete"
)

type Offer struct {
	ID             int64  `json:"id"`
	ConversationID int64  `json:"conversation_id,omitempty"`
	FromUserID     int64  `json:"from_user_id"`
	ToUserID       int64  `json:"to_user_id"`
	FromItemID     int64  `json:"from_item_id"`
	ToItemID       int64  `json:"to_item_id"`
	Status         string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTerminal reports whether no further transition is permitted.
func (o *Offer) IsTerminal() bool {
	switch o.Status {
	case OfferStatusRejected, OfferStatusCancelled, OfferStatusCompleted:
		return true
	}
	return false
}
