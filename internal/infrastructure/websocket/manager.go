package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"barterhub/pkg/logger"
)

// Client represents a WebSocket connection client
type Client struct {
	UserID int64
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager tracks the live connection per user. At most one connection per
// user is kept; a reconnect replaces the previous registry entry.
type Manager struct {
	clients    map[int64]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

// NewManager creates a new WebSocket connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[int64]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				if old, ok := m.clients[client.UserID]; ok && old != client {
					close(old.Send)
				}
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: user %d", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if current, ok := m.clients[client.UserID]; ok && current == client {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Client unregistered: user %d", client.UserID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for userID, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, userID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser pushes an event to the user's live connection, best-effort.
// False means the user has no open connection or its buffer is full; the
// event is not retried or queued.
func (m *Manager) SendToUser(userID int64, event Event) bool {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode event %s: %v", event.Type, err)
		return false
	}

	// The lock is held across the send: a client's channel is only closed
	// under the write lock, so a registered client's channel is open here.
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return false
	}

	select {
	case client.Send <- payload:
		return true
	default:
		return false
	}
}

// reply queues a payload for one specific client, dropping it if the
// client has been replaced or its buffer is full. A replaced client's
// channel may already be closed, so the registry entry is checked first.
func (m *Manager) reply(c *Client, payload []byte) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.clients[c.UserID] != c {
		return false
	}

	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// Broadcast pushes an event to every connected client.
func (m *Manager) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode event %s: %v", event.Type, err)
		return
	}
	m.broadcast <- payload
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("websocket read: %v", err)
			}
			break
		}

		// Clients only send keepalive pings; echo them back. The reply
		// goes through the manager so a connection that was replaced
		// mid-ping is dropped instead of written to.
		if string(message) == `{"type":"ping"}` {
			m.reply(c, []byte(`{"type":"pong"}`))
			continue
		}
		logger.Debug("Received message from user %d: %s", c.UserID, string(message))
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			logger.Error("websocket write: %v", err)
			return
		}
	}
}
