package service

import (
	"context"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/stats"
)

const (
	defaultDailyWindow  = 30
	defaultWeeklyWindow = 12
	statsOrderLimit     = 1000
)

// StatsService computes the statistics screen payloads from order history.
type StatsService struct {
	orders *OrderService
}

// NewStatsService builds service.
func NewStatsService(orders *OrderService) *StatsService {
	return &StatsService{orders: orders}
}

// UserStats is the full statistics payload for a driver.
type UserStats struct {
	Aggregate     stats.Aggregate     `json:"aggregate"`
	Daily         []stats.DailyPoint  `json:"daily"`
	Weekly        []stats.WeeklyPoint `json:"weekly"`
	CarbonLabel   string              `json:"carbon_label"`
	QuantityLabel string              `json:"quantity_label"`
}

// ForUser aggregates a driver's completed orders and builds both chart series
// anchored at `now`.
func (s *StatsService) ForUser(ctx context.Context, userID int64, days, weeks int, now time.Time) (*UserStats, error) {
	if days <= 0 {
		days = defaultDailyWindow
	}
	if weeks <= 0 {
		weeks = defaultWeeklyWindow
	}

	orders, err := s.orders.HistoryForUser(ctx, userID, statsOrderLimit)
	if err != nil {
		return nil, err
	}

	aggregate := stats.ComputeAggregate(orders)
	return &UserStats{
		Aggregate:     aggregate,
		Daily:         stats.DailySeries(orders, days, now),
		Weekly:        stats.WeeklySeries(orders, weeks, now),
		CarbonLabel:   stats.FormatCarbonReduction(aggregate.CarbonReductionKg),
		QuantityLabel: stats.FormatQuantity(aggregate.TotalQuantity),
	}, nil
}

// OwnerEarnings is the owner dashboard payload.
type OwnerEarnings struct {
	Aggregate stats.Aggregate    `json:"aggregate"`
	Daily     []stats.DailyPoint `json:"daily"`
}

// ForOwner aggregates orders charged on the owner's listings.
func (s *StatsService) ForOwner(ctx context.Context, ownerID int64, days int, now time.Time) (*OwnerEarnings, error) {
	if days <= 0 {
		days = defaultDailyWindow
	}

	orders, err := s.orders.HistoryForOwner(ctx, ownerID, statsOrderLimit)
	if err != nil {
		return nil, err
	}

	return &OwnerEarnings{
		Aggregate: stats.ComputeAggregate(orders),
		Daily:     stats.DailySeries(orders, days, now),
	}, nil
}
