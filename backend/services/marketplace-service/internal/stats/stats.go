package stats

import (
	"math"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// CarbonFactorKgPerKWh is the assumed CO2 saving per kWh of charging.
const CarbonFactorKgPerKWh = 0.78

// fastThresholdKW is the implied-power cutoff separating fast from slow charges.
const fastThresholdKW = 20.0

// Aggregate holds totals over a driver's completed orders.
type Aggregate struct {
	TotalQuantity     float64 `json:"total_quantity"`
	TotalCost         float64 `json:"total_cost"`
	AverageCost       float64 `json:"average_cost"`
	AverageQuantity   float64 `json:"average_quantity"`
	ChargingCount     int     `json:"charging_count"`
	FastChargeCount   int     `json:"fast_charge_count"`
	SlowChargeCount   int     `json:"slow_charge_count"`
	CarbonReductionKg float64 `json:"carbon_reduction_kg"`
}

// ComputeAggregate sums completed orders into display statistics. Orders in any
// other status are ignored; an empty result is all zeros. Numeric fields are
// taken as provided, without validation.
func ComputeAggregate(orders []models.Order) Aggregate {
	var agg Aggregate

	for _, order := range orders {
		if order.Status != models.OrderStatusCompleted {
			continue
		}
		agg.ChargingCount++
		agg.TotalQuantity += order.EnergyKWh
		agg.TotalCost += order.Amount
		if impliedPowerKW(order) >= fastThresholdKW {
			agg.FastChargeCount++
		} else {
			agg.SlowChargeCount++
		}
	}

	if agg.ChargingCount == 0 {
		return agg
	}

	agg.AverageCost = round2(agg.TotalCost / float64(agg.ChargingCount))
	agg.AverageQuantity = round2(agg.TotalQuantity / float64(agg.ChargingCount))
	agg.CarbonReductionKg = round2(agg.TotalQuantity * CarbonFactorKgPerKWh)
	agg.TotalQuantity = round2(agg.TotalQuantity)
	agg.TotalCost = round2(agg.TotalCost)
	return agg
}

// impliedPowerKW derives charging power from energy over duration. Orders
// missing either field count as slow (0 kW).
func impliedPowerKW(order models.Order) float64 {
	if order.DurationMin <= 0 || order.EnergyKWh <= 0 {
		return 0
	}
	return order.EnergyKWh / (float64(order.DurationMin) / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
