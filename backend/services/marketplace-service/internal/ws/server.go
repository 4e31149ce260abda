package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/charging"
	"chargeshare/backend/services/marketplace-service/internal/http/middleware"
	"chargeshare/backend/services/marketplace-service/internal/service"
)

// Server upgrades HTTP connections to WebSockets carrying live charging
// progress for one order.
type Server struct {
	manager      *Manager
	orders       *service.OrderService
	interval     time.Duration
	writeTimeout time.Duration
	logger       *zap.Logger
	upgrader     websocket.Upgrader
}

// NewServer builds ws server.
func NewServer(manager *Manager, orders *service.OrderService, interval, writeTimeout time.Duration, logger *zap.Logger) *Server {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Server{
		manager:      manager,
		orders:       orders,
		interval:     interval,
		writeTimeout: writeTimeout,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS is the HTTP handler for GET /ws/charging.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return
	}

	// Reject before upgrading when there is nothing to stream.
	if _, err := s.orders.LiveSnapshot(r.Context(), orderID); err != nil {
		if errors.Is(err, service.ErrSessionNotLive) {
			http.Error(w, "no live session for order", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}

	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.String("order_id", orderID), zap.Error(err))
		return
	}

	project := func(ctx context.Context) (charging.Snapshot, error) {
		return s.orders.LiveSnapshot(ctx, orderID)
	}
	onDone := func(ctx context.Context) {
		if _, err := s.orders.Complete(ctx, orderID, callerID); err != nil {
			s.logger.Warn("auto-complete failed", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	conn := NewConnection(orderID, wsConn, project, onDone, s.interval, s.writeTimeout, s.logger, s.manager.Remove)
	s.manager.Add(conn)
	s.logger.Info("progress feed opened",
		zap.String("order_id", orderID),
		zap.Int64("user_id", callerID),
		zap.Int("open_feeds", s.manager.Count()),
	)

	conn.Start(r.Context())
}
