package websocket

// Event types pushed to connected clients.
const (
	EventNewMessage        = "new_message"
	EventMessagesRead      = "messages_read"
	EventOfferCreated      = "offer_created"
	EventOfferUpdated      = "offer_updated"
	EventNotification      = "notification"
	EventNotificationCount = "notification_count"
)

// Event is the tagged union carried over the socket. Type selects which of
// the optional fields are populated.
type Event struct {
	Type           string      `json:"type"`
	ConversationID int64       `json:"conversation_id,omitempty"`
	Message        interface{} `json:"message,omitempty"`
	MessageIDs     []int64     `json:"message_ids,omitempty"`
	Offer          interface{} `json:"offer,omitempty"`
	Notification   interface{} `json:"notification,omitempty"`
	Count          int         `json:"count,omitempty"`
}
