package charging

import (
	"math"
	"time"
)

// DefaultBatteryCapacityKWh is the assumed pack size when the driver does not
// supply one.
const DefaultBatteryCapacityKWh = 60.0

// Session is the live state of an in-progress charge. It is written once at
// booking time; progress is a pure function of it and the clock, so there is
// no telemetry to ingest and nothing to reconcile.
type Session struct {
	OrderID        string    `json:"order_id"`
	ChargerID      string    `json:"charger_id"`
	UserID         int64     `json:"user_id"`
	PowerKW        float64   `json:"power_kw"`
	PricePerKWh    float64   `json:"price_per_kwh"`
	CapacityKWh    float64   `json:"capacity_kwh"`
	StartLevelPct  float64   `json:"start_level_pct"`
	TargetLevelPct float64   `json:"target_level_pct"`
	StartedAt      time.Time `json:"started_at"`
}

// Snapshot is the projected state of a session at a point in time.
type Snapshot struct {
	OrderID       string  `json:"order_id"`
	LevelPct      float64 `json:"level_pct"`
	SpeedKW       float64 `json:"speed_kw"`
	ChargedKWh    float64 `json:"charged_kwh"`
	EstimatedCost float64 `json:"estimated_cost"`
	RemainingMin  int     `json:"remaining_min"`
	Done          bool    `json:"done"`
}

// Project computes the state of a session at time `at`. Energy accrues at the
// charger's rated power from StartedAt until the target level is reached, after
// which the snapshot is capped and marked done. Identical inputs always yield
// identical snapshots.
func Project(s Session, at time.Time) Snapshot {
	capacity := s.CapacityKWh
	if capacity <= 0 {
		capacity = DefaultBatteryCapacityKWh
	}
	target := s.TargetLevelPct
	if target <= 0 || target > 100 {
		target = 100
	}
	start := clampPct(s.StartLevelPct)
	if target < start {
		target = start
	}

	elapsed := at.Sub(s.StartedAt).Hours()
	if elapsed < 0 {
		elapsed = 0
	}

	charged := s.PowerKW * elapsed
	capKWh := (target - start) / 100 * capacity

	snap := Snapshot{
		OrderID: s.OrderID,
		SpeedKW: s.PowerKW,
	}
	if charged >= capKWh {
		charged = capKWh
		snap.Done = true
		snap.SpeedKW = 0
	}

	snap.ChargedKWh = round2(charged)
	snap.LevelPct = math.Round((start+charged/capacity*100)*10) / 10
	snap.EstimatedCost = round2(charged * s.PricePerKWh)
	if !snap.Done && s.PowerKW > 0 {
		snap.RemainingMin = int(math.Ceil((capKWh - charged) / s.PowerKW * 60))
	}
	return snap
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
