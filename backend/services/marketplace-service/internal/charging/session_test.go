package charging

import (
	"testing"
	"time"
)

func testSession() Session {
	return Session{
		OrderID:        "ord-1",
		ChargerID:      "c3",
		UserID:         42,
		PowerKW:        10,
		PricePerKWh:    1.2,
		CapacityKWh:    60,
		StartLevelPct:  20,
		TargetLevelPct: 80,
		StartedAt:      time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC),
	}
}

func TestProjectMidCharge(t *testing.T) {
	s := testSession()
	snap := Project(s, s.StartedAt.Add(time.Hour))

	if snap.Done {
		t.Fatal("session done after 1h, want in progress")
	}
	if snap.ChargedKWh != 10 {
		t.Errorf("charged = %v, want 10", snap.ChargedKWh)
	}
	if snap.LevelPct != 36.7 { // 20% + 10/60 of the pack
		t.Errorf("level = %v, want 36.7", snap.LevelPct)
	}
	if snap.EstimatedCost != 12 {
		t.Errorf("cost = %v, want 12", snap.EstimatedCost)
	}
	if snap.SpeedKW != 10 {
		t.Errorf("speed = %v, want 10", snap.SpeedKW)
	}
	// 36 kWh needed in total, 26 left at 10 kW.
	if snap.RemainingMin != 156 {
		t.Errorf("remaining = %d min, want 156", snap.RemainingMin)
	}
}

func TestProjectCapsAtTarget(t *testing.T) {
	s := testSession()
	snap := Project(s, s.StartedAt.Add(5*time.Hour))

	if !snap.Done {
		t.Fatal("expected done")
	}
	if snap.ChargedKWh != 36 {
		t.Errorf("charged = %v, want 36 (capped at target)", snap.ChargedKWh)
	}
	if snap.LevelPct != 80 {
		t.Errorf("level = %v, want 80", snap.LevelPct)
	}
	if snap.SpeedKW != 0 || snap.RemainingMin != 0 {
		t.Errorf("done snapshot should idle: %+v", snap)
	}
	if snap.EstimatedCost != 43.2 {
		t.Errorf("cost = %v, want 43.2", snap.EstimatedCost)
	}
}

func TestProjectDeterministic(t *testing.T) {
	s := testSession()
	at := s.StartedAt.Add(37 * time.Minute)
	if Project(s, at) != Project(s, at) {
		t.Error("identical inputs produced different snapshots")
	}
}

func TestProjectBeforeStart(t *testing.T) {
	s := testSession()
	snap := Project(s, s.StartedAt.Add(-time.Minute))
	if snap.ChargedKWh != 0 || snap.EstimatedCost != 0 || snap.Done {
		t.Errorf("projection before start = %+v, want nothing accrued", snap)
	}
	if snap.LevelPct != 20 {
		t.Errorf("level = %v, want start level", snap.LevelPct)
	}
}

func TestProjectDefaults(t *testing.T) {
	s := testSession()
	s.CapacityKWh = 0
	s.TargetLevelPct = 0 // treated as charge to full
	snap := Project(s, s.StartedAt.Add(time.Hour))
	if snap.Done {
		t.Fatal("60 kWh pack cannot fill from 20% in one hour at 10 kW")
	}
	// (100-20)/100 * 60 = 48 kWh needed, 38 left at 10 kW.
	if snap.RemainingMin != 228 {
		t.Errorf("remaining = %d, want 228", snap.RemainingMin)
	}
}

func TestEstimateByTarget(t *testing.T) {
	est := EstimateByTarget(1.2, 7, 60, 20, 80)
	if est.ChargeKWh != 36 {
		t.Errorf("kwh = %v, want 36", est.ChargeKWh)
	}
	if est.Cost != 43.2 {
		t.Errorf("cost = %v, want 43.2", est.Cost)
	}
	if est.Minutes != 309 { // 36/7 hours
		t.Errorf("minutes = %d, want 309", est.Minutes)
	}
	if est.TargetLevelPct != 80 {
		t.Errorf("target = %v, want 80", est.TargetLevelPct)
	}
}

func TestEstimateByTargetInverted(t *testing.T) {
	est := EstimateByTarget(1.2, 7, 60, 80, 20)
	if est.ChargeKWh != 0 || est.Cost != 0 || est.Minutes != 0 {
		t.Errorf("inverted range should price nothing: %+v", est)
	}
}

func TestEstimateByDuration(t *testing.T) {
	est := EstimateByDuration(1.2, 7, 60, 20, 60)
	if est.ChargeKWh != 7 {
		t.Errorf("kwh = %v, want 7", est.ChargeKWh)
	}
	if est.Cost != 8.4 {
		t.Errorf("cost = %v, want 8.4", est.Cost)
	}
	if est.TargetLevelPct != 31.7 {
		t.Errorf("reached = %v, want 31.7", est.TargetLevelPct)
	}
	if est.Minutes != 60 {
		t.Errorf("minutes = %d, want 60", est.Minutes)
	}
}

func TestEstimateByDurationCapsAtFull(t *testing.T) {
	est := EstimateByDuration(1.0, 50, 60, 20, 600)
	if est.TargetLevelPct != 100 {
		t.Errorf("reached = %v, want 100", est.TargetLevelPct)
	}
	if est.ChargeKWh != 48 { // 80% of a 60 kWh pack
		t.Errorf("kwh = %v, want 48", est.ChargeKWh)
	}
	if est.Cost != 48 {
		t.Errorf("cost = %v, want 48", est.Cost)
	}
}
