package connection

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a connected websocket client
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager handles all client connections
type Manager struct {
	clients map[string]*Client
	mutex   sync.RWMutex
}

// NewManager creates a new connection manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Register adds a client. Messages can be sent to it as soon as Register returns.
func (m *Manager) Register(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.clients[client.ID] = client
}

// Unregister removes a client and closes its Send channel. Unknown clients
// are ignored.
func (m *Manager) Unregister(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
	}
}

// CloseAll unregisters every client
func (m *Manager) CloseAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, client := range m.clients {
		delete(m.clients, id)
		close(client.Send)
	}
}

// Deliver queues a message for a client. It returns false when the client is
// unknown or its send buffer is full. A non-nil onQueued runs, while the
// client is still registered, right before the message is queued; it is not
// called when the message is dropped.
func (m *Manager) Deliver(clientID string, message []byte, onQueued func()) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	client, ok := m.clients[clientID]
	if !ok || len(client.Send) >= cap(client.Send) {
		return false
	}

	if onQueued != nil {
		onQueued()
	}
	client.Send <- message
	return true
}

// IsConnected checks if a client is registered
func (m *Manager) IsConnected(clientID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	_, ok := m.clients[clientID]
	return ok
}

// Count returns the number of registered clients
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.clients)
}
