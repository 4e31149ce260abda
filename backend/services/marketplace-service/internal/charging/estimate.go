package charging

import "math"

// Estimate is the fee calculator output shown before booking.
type Estimate struct {
	ChargeKWh      float64 `json:"charge_kwh"`
	Cost           float64 `json:"cost"`
	Minutes        int     `json:"minutes"`
	TargetLevelPct float64 `json:"target_level_pct"`
}

// EstimateByTarget prices charging from `fromPct` to `toPct` of a battery of
// `capacityKWh` at the given charger power and price.
func EstimateByTarget(pricePerKWh, powerKW, capacityKWh, fromPct, toPct float64) Estimate {
	if capacityKWh <= 0 {
		capacityKWh = DefaultBatteryCapacityKWh
	}
	fromPct = clampPct(fromPct)
	toPct = clampPct(toPct)

	span := toPct - fromPct
	if span < 0 {
		span = 0
	}
	kwh := capacityKWh * span / 100

	var minutes float64
	if powerKW > 0 {
		minutes = kwh / powerKW * 60
	}

	return Estimate{
		ChargeKWh:      math.Round(kwh*10) / 10,
		Cost:           round2(kwh * pricePerKWh),
		Minutes:        int(math.Round(minutes)),
		TargetLevelPct: toPct,
	}
}

// EstimateByDuration prices a fixed-length charge starting at `fromPct`,
// reporting the level it would reach (capped at 100%).
func EstimateByDuration(pricePerKWh, powerKW, capacityKWh, fromPct float64, minutes int) Estimate {
	if capacityKWh <= 0 {
		capacityKWh = DefaultBatteryCapacityKWh
	}
	if minutes < 0 {
		minutes = 0
	}
	fromPct = clampPct(fromPct)

	kwh := powerKW * float64(minutes) / 60
	reached := fromPct + kwh/capacityKWh*100
	if reached > 100 {
		reached = 100
		kwh = (100 - fromPct) / 100 * capacityKWh
	}

	return Estimate{
		ChargeKWh:      math.Round(kwh*10) / 10,
		Cost:           round2(kwh * pricePerKWh),
		Minutes:        minutes,
		TargetLevelPct: math.Round(reached*10) / 10,
	}
}
