package stats

import (
	"testing"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

func completedOrder(quantity, amount float64, durationMin int, end time.Time) models.Order {
	return models.Order{
		Status:      models.OrderStatusCompleted,
		EnergyKWh:   quantity,
		Amount:      amount,
		DurationMin: durationMin,
		EndTime:     &end,
	}
}

func TestComputeAggregateTotals(t *testing.T) {
	end := time.Date(2025, 3, 14, 11, 30, 0, 0, time.UTC)
	orders := []models.Order{
		completedOrder(38.2, 45.5, 150, end),
		completedOrder(44.0, 52.8, 105, end),
	}

	agg := ComputeAggregate(orders)

	if agg.TotalQuantity != 82.2 {
		t.Errorf("total quantity = %v, want 82.2", agg.TotalQuantity)
	}
	if agg.TotalCost != 98.3 {
		t.Errorf("total cost = %v, want 98.3", agg.TotalCost)
	}
	if agg.ChargingCount != 2 {
		t.Errorf("charging count = %d, want 2", agg.ChargingCount)
	}
	if agg.AverageCost != 49.15 {
		t.Errorf("average cost = %v, want 49.15", agg.AverageCost)
	}
	if agg.AverageQuantity != 41.1 {
		t.Errorf("average quantity = %v, want 41.1", agg.AverageQuantity)
	}
	if agg.CarbonReductionKg != 64.12 {
		t.Errorf("carbon reduction = %v, want 64.12", agg.CarbonReductionKg)
	}
	// 38.2 kWh over 2.5 h is 15.28 kW (slow); 44 kWh over 1.75 h is 25.14 kW (fast).
	if agg.FastChargeCount != 1 || agg.SlowChargeCount != 1 {
		t.Errorf("fast/slow = %d/%d, want 1/1", agg.FastChargeCount, agg.SlowChargeCount)
	}
}

func TestComputeAggregateEmpty(t *testing.T) {
	if got := ComputeAggregate(nil); got != (Aggregate{}) {
		t.Errorf("aggregate of nil = %+v, want zero value", got)
	}

	end := time.Now()
	nonCompleted := []models.Order{
		{Status: models.OrderStatusCharging, EnergyKWh: 10, Amount: 12},
		{Status: models.OrderStatusCancelled, EnergyKWh: 5, Amount: 6, EndTime: &end},
		{Status: models.OrderStatusPending},
	}
	if got := ComputeAggregate(nonCompleted); got != (Aggregate{}) {
		t.Errorf("aggregate of non-completed orders = %+v, want zero value", got)
	}
}

func TestComputeAggregateClassification(t *testing.T) {
	end := time.Now()
	cases := []struct {
		name     string
		order    models.Order
		wantFast bool
	}{
		{"slow by implied power", completedOrder(38.2, 45.5, 150, end), false}, // 15.28 kW
		{"fast by implied power", completedOrder(15, 20, 30, end), true},       // 30 kW
		{"exactly at threshold", completedOrder(20, 25, 60, end), true},        // 20 kW
		{"missing duration defaults slow", completedOrder(50, 60, 0, end), false},
		{"missing quantity defaults slow", completedOrder(0, 60, 45, end), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := ComputeAggregate([]models.Order{tc.order})
			if tc.wantFast && agg.FastChargeCount != 1 {
				t.Errorf("expected fast charge, got %+v", agg)
			}
			if !tc.wantFast && agg.SlowChargeCount != 1 {
				t.Errorf("expected slow charge, got %+v", agg)
			}
		})
	}
}

func TestComputeAggregateCountIdentity(t *testing.T) {
	end := time.Now()
	orders := []models.Order{
		completedOrder(38.2, 45.5, 150, end),
		completedOrder(15, 20, 30, end),
		completedOrder(60, 48, 600, end),
		{Status: models.OrderStatusCharging},
		{Status: models.OrderStatusCancelled},
	}

	agg := ComputeAggregate(orders)
	if agg.ChargingCount != 3 {
		t.Fatalf("charging count = %d, want 3", agg.ChargingCount)
	}
	if agg.FastChargeCount+agg.SlowChargeCount != agg.ChargingCount {
		t.Errorf("fast %d + slow %d != count %d", agg.FastChargeCount, agg.SlowChargeCount, agg.ChargingCount)
	}
}
