package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/charging"
)

// ProjectFunc yields the current snapshot for the connection's order.
type ProjectFunc func(ctx context.Context) (charging.Snapshot, error)

// DoneFunc runs once when the session reaches its target level.
type DoneFunc func(ctx context.Context)

// Connection pushes charging progress for one order to one client.
type Connection struct {
	orderID      string
	ws           *websocket.Conn
	project      ProjectFunc
	onDone       DoneFunc
	interval     time.Duration
	writeTimeout time.Duration
	logger       *zap.Logger
	onClose      func(*Connection)
	closed       chan struct{}
}

// NewConnection builds connection wrapper.
func NewConnection(
	orderID string,
	wsConn *websocket.Conn,
	project ProjectFunc,
	onDone DoneFunc,
	interval, writeTimeout time.Duration,
	logger *zap.Logger,
	onClose func(*Connection),
) *Connection {
	return &Connection{
		orderID:      orderID,
		ws:           wsConn,
		project:      project,
		onDone:       onDone,
		interval:     interval,
		writeTimeout: writeTimeout,
		logger:       logger,
		onClose:      onClose,
		closed:       make(chan struct{}),
	}
}

// OrderID returns identifier.
func (c *Connection) OrderID() string {
	return c.orderID
}

// Start runs the read and push loops until the client disconnects, the
// context ends, or the session finishes.
func (c *Connection) Start(ctx context.Context) {
	go c.readPump()
	c.pushLoop(ctx)
}

// readPump discards inbound frames; it exists to notice the client closing.
func (c *Connection) readPump() {
	defer close(c.closed)
	c.ws.SetReadLimit(4096)
	c.ws.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			c.logger.Info("progress feed closed by client", zap.String("order_id", c.orderID), zap.Error(err))
			return
		}
	}
}

func (c *Connection) pushLoop(ctx context.Context) {
	defer c.cleanup()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	// Push immediately so the client doesn't wait a full interval for the
	// first frame.
	if done := c.push(ctx); done {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		case <-ping.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ticker.C:
			if done := c.push(ctx); done {
				return
			}
		}
	}
}

// push sends one snapshot. It returns true when the feed should stop, either
// because the session finished or the write failed.
func (c *Connection) push(ctx context.Context) bool {
	snap, err := c.project(ctx)
	if err != nil {
		c.logger.Warn("failed to project session", zap.String("order_id", c.orderID), zap.Error(err))
		return true
	}

	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("failed to encode snapshot", zap.String("order_id", c.orderID), zap.Error(err))
		return true
	}
	if err := c.write(websocket.TextMessage, data); err != nil {
		return true
	}

	if snap.Done {
		if c.onDone != nil {
			c.onDone(ctx)
		}
		return true
	}
	return false
}

func (c *Connection) write(messageType int, data []byte) error {
	c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	return c.ws.WriteMessage(messageType, data)
}

func (c *Connection) cleanup() {
	_ = c.ws.Close()
	if c.onClose != nil {
		c.onClose(c)
	}
}
