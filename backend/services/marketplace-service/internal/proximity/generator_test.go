package proximity

import (
	"math"
	"reflect"
	"testing"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(39.9042, 116.4074)
	second := Generate(39.9042, 116.4074)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same coordinate produced different listings")
	}
}

func TestGenerateCount(t *testing.T) {
	coords := [][2]float64{
		{39.9042, 116.4074},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{0, 0},
	}
	for _, c := range coords {
		got := len(Generate(c[0], c[1]))
		if got < 12 || got > 15 {
			t.Errorf("Generate(%v, %v) returned %d listings, want 12-15", c[0], c[1], got)
		}
	}
}

func TestGenerateSortedByDistance(t *testing.T) {
	lat, lng := 48.8566, 2.3522
	chargers := Generate(lat, lng)
	for i := 1; i < len(chargers); i++ {
		prev := distance(chargers[i-1], lat, lng)
		cur := distance(chargers[i], lat, lng)
		if cur < prev {
			t.Fatalf("listing %d closer than listing %d (%v < %v)", i, i-1, cur, prev)
		}
	}
}

func TestGenerateAttributes(t *testing.T) {
	chargers := Generate(39.9042, 116.4074)
	seen := map[string]bool{}
	for _, c := range chargers {
		if seen[c.ID] {
			t.Errorf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true

		switch c.Type {
		case models.ChargerTypeFast:
			if c.PowerKW < 7 || c.PowerKW > 14 {
				t.Errorf("%s: fast power %v out of range", c.ID, c.PowerKW)
			}
			if c.PricePerKWh < 1.0 || c.PricePerKWh > 1.6 {
				t.Errorf("%s: fast price %v out of range", c.ID, c.PricePerKWh)
			}
		case models.ChargerTypeSlow:
			if c.PowerKW != 3.5 {
				t.Errorf("%s: slow power %v, want 3.5", c.ID, c.PowerKW)
			}
			if c.PricePerKWh < 0.6 || c.PricePerKWh > 1.0 {
				t.Errorf("%s: slow price %v out of range", c.ID, c.PricePerKWh)
			}
		default:
			t.Errorf("%s: unexpected type %q", c.ID, c.Type)
		}

		switch c.Status {
		case models.ChargerStatusAvailable, models.ChargerStatusInUse, models.ChargerStatusOffline:
		default:
			t.Errorf("%s: unexpected status %q", c.ID, c.Status)
		}

		if c.Rating < 3.5 || c.Rating > 5 {
			t.Errorf("%s: rating %v out of range", c.ID, c.Rating)
		}
		if c.OrderCount < 5 || c.OrderCount > 99 {
			t.Errorf("%s: order count %d out of range", c.ID, c.OrderCount)
		}
		if c.OwnerID < 101 || c.OwnerID > 108 || c.OwnerName == "" {
			t.Errorf("%s: bad owner %d %q", c.ID, c.OwnerID, c.OwnerName)
		}

		ring := math.Hypot(c.Location.Lat-39.9042, c.Location.Lng-116.4074)
		if ring < minRingDeg || ring > minRingDeg+ringSpanDeg+1e-9 {
			t.Errorf("%s: listing at %v degrees, want within ring", c.ID, ring)
		}
		if c.DistanceM < 150 || c.DistanceM > 900 {
			t.Errorf("%s: distance %d m out of range", c.ID, c.DistanceM)
		}
	}
}

func TestGenerateIndependentOfLongitude(t *testing.T) {
	// Listing count depends only on latitude, so shifting longitude keeps the
	// same set of attributes at shifted positions.
	a := Generate(39.9042, 116.4074)
	b := Generate(39.9042, 10.0)
	if len(a) != len(b) {
		t.Fatalf("counts differ: %d vs %d", len(a), len(b))
	}
}

func TestFilter(t *testing.T) {
	chargers := []models.Charger{
		{ID: "c1", Type: models.ChargerTypeFast, PricePerKWh: 1.2, Status: models.ChargerStatusAvailable},
		{ID: "c2", Type: models.ChargerTypeSlow, PricePerKWh: 0.7, Status: models.ChargerStatusAvailable},
		{ID: "c3", Type: models.ChargerTypeFast, PricePerKWh: 1.5, Status: models.ChargerStatusInUse},
	}

	onlyFast := Filter(chargers, models.SearchFilters{Type: models.ChargerTypeFast})
	if len(onlyFast) != 2 || onlyFast[0].ID != "c1" || onlyFast[1].ID != "c3" {
		t.Errorf("type filter = %+v", onlyFast)
	}

	cheap := Filter(chargers, models.SearchFilters{MaxPrice: 1.0})
	if len(cheap) != 1 || cheap[0].ID != "c2" {
		t.Errorf("max price filter = %+v", cheap)
	}

	available := Filter(chargers, models.SearchFilters{OnlyAvailable: true})
	if len(available) != 2 {
		t.Errorf("availability filter = %+v", available)
	}

	combined := Filter(chargers, models.SearchFilters{Type: models.ChargerTypeFast, OnlyAvailable: true, MinPrice: 1.0})
	if len(combined) != 1 || combined[0].ID != "c1" {
		t.Errorf("combined filter = %+v", combined)
	}

	if got := Filter(chargers, models.SearchFilters{}); len(got) != len(chargers) {
		t.Errorf("empty filter should pass everything, got %d", len(got))
	}
}

func TestUnitRange(t *testing.T) {
	seeds := []int64{-1000, -1, 0, 1, 42, 1 << 40}
	for _, s := range seeds {
		v := unit(s)
		if v < 0 || v >= 1 {
			t.Errorf("unit(%d) = %v, want [0, 1)", s, v)
		}
		if v != unit(s) {
			t.Errorf("unit(%d) not stable", s)
		}
	}
}
