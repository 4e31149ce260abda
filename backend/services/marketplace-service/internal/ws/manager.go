package ws

import "sync"

// Manager tracks open progress-feed connections by order id.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*Connection
}

// NewManager builds connection manager.
func NewManager() *Manager {
	return &Manager{connections: make(map[string]*Connection)}
}

// Add registers new connection, replacing any previous feed for the order.
func (m *Manager) Add(conn *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn.OrderID()] = conn
}

// Remove drops a closing connection from tracking. A feed that was already
// replaced by a newer connection for the same order leaves the replacement
// registered.
func (m *Manager) Remove(conn *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connections[conn.OrderID()] == conn {
		delete(m.connections, conn.OrderID())
	}
}

// Count returns the number of open feeds.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}
