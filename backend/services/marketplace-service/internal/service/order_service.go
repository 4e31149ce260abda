package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/charging"
	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/redisstore"
	"chargeshare/backend/services/marketplace-service/internal/repository"
)

// OrderService owns the order lifecycle and the live charging sessions behind
// in-progress orders.
type OrderService struct {
	orders   *repository.OrderRepository
	live     *redisstore.LiveSessionStore
	chargers *ChargerService
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrderService builds service.
func NewOrderService(
	orders *repository.OrderRepository,
	live *redisstore.LiveSessionStore,
	chargers *ChargerService,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		live:     live,
		chargers: chargers,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// BookInput describes a booking request.
type BookInput struct {
	UserID         int64
	Lat            float64
	Lng            float64
	ChargerID      string
	StartLevelPct  float64
	TargetLevelPct float64
	CapacityKWh    float64
}

// Book creates a charging order on an available listing and opens its live
// session.
func (s *OrderService) Book(ctx context.Context, input BookInput) (*models.Order, error) {
	charger, err := s.chargers.Find(ctx, input.Lat, input.Lng, input.ChargerID)
	if err != nil {
		return nil, err
	}
	if charger.Status != models.ChargerStatusAvailable {
		return nil, ErrChargerUnavailable
	}

	startedAt := s.now()
	order := &models.Order{
		ID:          uuid.NewString(),
		ChargerID:   charger.ID,
		ChargerName: charger.Name,
		UserID:      input.UserID,
		OwnerID:     charger.OwnerID,
		Status:      models.OrderStatusCharging,
		StartTime:   startedAt,
	}
	order, err = s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	sess := charging.Session{
		OrderID:        order.ID,
		ChargerID:      charger.ID,
		UserID:         input.UserID,
		PowerKW:        charger.PowerKW,
		PricePerKWh:    charger.PricePerKWh,
		CapacityKWh:    input.CapacityKWh,
		StartLevelPct:  input.StartLevelPct,
		TargetLevelPct: input.TargetLevelPct,
		StartedAt:      startedAt,
	}
	if err := s.live.Save(ctx, sess); err != nil {
		s.logger.Warn("failed to save live session", zap.String("order_id", order.ID), zap.Error(err))
	}

	s.logger.Info("order booked",
		zap.String("order_id", order.ID),
		zap.String("charger_id", charger.ID),
		zap.Int64("user_id", input.UserID),
	)
	return order, nil
}

// Complete finalizes an in-progress order, pricing it from the projected live
// session. If the session is gone the order completes with zero energy.
func (s *OrderService) Complete(ctx context.Context, orderID string, callerID int64) (*models.Order, error) {
	order, err := s.partyOrder(ctx, orderID, callerID)
	if err != nil {
		return nil, err
	}

	endTime := s.now()
	durationMin := int(endTime.Sub(order.StartTime).Minutes())

	var energyKWh, amount float64
	sess, err := s.live.Get(ctx, orderID)
	switch {
	case err == nil:
		snap := charging.Project(*sess, endTime)
		energyKWh = snap.ChargedKWh
		amount = snap.EstimatedCost
	case err != redis.Nil:
		s.logger.Warn("failed to load live session", zap.String("order_id", orderID), zap.Error(err))
	}

	if err := s.orders.Complete(ctx, orderID, endTime, durationMin, energyKWh, amount); err != nil {
		return nil, err
	}
	s.dropLive(ctx, orderID)

	return s.orders.Get(ctx, orderID)
}

// Cancel aborts an order before completion. Nothing is billed.
func (s *OrderService) Cancel(ctx context.Context, orderID string, callerID int64) (*models.Order, error) {
	if _, err := s.partyOrder(ctx, orderID, callerID); err != nil {
		return nil, err
	}
	if err := s.orders.Cancel(ctx, orderID); err != nil {
		return nil, err
	}
	s.dropLive(ctx, orderID)

	return s.orders.Get(ctx, orderID)
}

// HistoryForUser returns the driver's orders, newest first.
func (s *OrderService) HistoryForUser(ctx context.Context, userID int64, limit int) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID, limit)
}

// HistoryForOwner returns orders charged on the owner's listings.
func (s *OrderService) HistoryForOwner(ctx context.Context, ownerID int64, limit int) ([]models.Order, error) {
	return s.orders.ListByOwner(ctx, ownerID, limit)
}

// LiveSnapshot projects the current state of an in-progress order.
func (s *OrderService) LiveSnapshot(ctx context.Context, orderID string) (charging.Snapshot, error) {
	sess, err := s.live.Get(ctx, orderID)
	if err == redis.Nil {
		return charging.Snapshot{}, ErrSessionNotLive
	}
	if err != nil {
		return charging.Snapshot{}, err
	}
	return charging.Project(*sess, s.now()), nil
}

func (s *OrderService) partyOrder(ctx context.Context, orderID string, callerID int64) (*models.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID && order.OwnerID != callerID {
		return nil, ErrNotOrderParty
	}
	return order, nil
}

func (s *OrderService) dropLive(ctx context.Context, orderID string) {
	if err := s.live.Delete(ctx, orderID); err != nil && err != redis.Nil {
		s.logger.Warn("failed to delete live session", zap.String("order_id", orderID), zap.Error(err))
	}
}
