package usecase

import (
	ws "barterhub/internal/infrastructure/websocket"
)

// EventSink is the dispatcher's outbound side: delivery to live clients.
// SendToUser is best-effort; false means no open connection. Implemented
// by the websocket Manager and by fakes in tests.
type EventSink interface {
	SendToUser(userID int64, event ws.Event) bool
	Broadcast(event ws.Event)
}
