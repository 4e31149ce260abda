package ws

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func trackedConnection(m *Manager, orderID string) *Connection {
	return NewConnection(orderID, nil, nil, nil, time.Second, time.Second, zap.NewNop(), m.Remove)
}

func TestManagerReplacesFeedForOrder(t *testing.T) {
	m := NewManager()

	first := trackedConnection(m, "ord-1")
	m.Add(first)
	second := trackedConnection(m, "ord-1")
	m.Add(second)

	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1 after replacement", m.Count())
	}

	// The replaced feed tears down after the new one registered; its removal
	// must not evict the live connection.
	m.Remove(first)
	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1 after stale removal", m.Count())
	}

	m.Remove(second)
	if m.Count() != 0 {
		t.Fatalf("count = %d, want 0", m.Count())
	}
}

func TestManagerTracksDistinctOrders(t *testing.T) {
	m := NewManager()
	m.Add(trackedConnection(m, "ord-1"))
	m.Add(trackedConnection(m, "ord-2"))
	if m.Count() != 2 {
		t.Fatalf("count = %d, want 2", m.Count())
	}
}
