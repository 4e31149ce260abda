package models

import "time"

// OrderStatus is the lifecycle state of a charging order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCharging  OrderStatus = "charging"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether the status permits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is one charging transaction between a driver and a shared charger.
// Once completed or cancelled the record is immutable.
type Order struct {
	ID          string      `db:"id" json:"id"`
	ChargerID   string      `db:"charger_id" json:"charger_id"`
	ChargerName string      `db:"charger_name" json:"charger_name"`
	UserID      int64       `db:"user_id" json:"user_id"`
	OwnerID     int64       `db:"owner_id" json:"owner_id"`
	Status      OrderStatus `db:"status" json:"status"`
	StartTime   time.Time   `db:"start_time" json:"start_time"`
	EndTime     *time.Time  `db:"end_time" json:"end_time,omitempty"`
	DurationMin int         `db:"duration_min" json:"duration_min"`
	EnergyKWh   float64     `db:"energy_kwh" json:"energy_kwh"`
	Amount      float64     `db:"amount" json:"amount"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}
