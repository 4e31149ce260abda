package models

import "time"

// ChargerType distinguishes AC slow charging from DC fast charging.
type ChargerType string

const (
	ChargerTypeSlow ChargerType = "slow"
	ChargerTypeFast ChargerType = "fast"
)

// ChargerStatus is the externally mutated availability state of a listing.
type ChargerStatus string

const (
	ChargerStatusAvailable ChargerStatus = "available"
	ChargerStatusInUse     ChargerStatus = "in_use"
	ChargerStatusOffline   ChargerStatus = "offline"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Charger is a marketplace listing for a privately owned charging point.
type Charger struct {
	ID          string        `json:"id"`
	OwnerID     int64         `json:"owner_id"`
	OwnerName   string        `json:"owner_name"`
	Name        string        `json:"name"`
	Type        ChargerType   `json:"type"`
	PowerKW     float64       `json:"power_kw"`
	PricePerKWh float64       `json:"price_per_kwh"`
	Status      ChargerStatus `json:"status"`
	Address     string        `json:"address"`
	Location    Location      `json:"location"`
	Description string        `json:"description,omitempty"`
	Rating      float64       `json:"rating"`
	OrderCount  int           `json:"order_count"`
	DistanceM   int           `json:"distance_m"`
	CreatedAt   time.Time     `json:"created_at"`
}

// SearchFilters narrows a listing set before display.
type SearchFilters struct {
	Type          ChargerType
	MinPrice      float64
	MaxPrice      float64
	OnlyAvailable bool
}
