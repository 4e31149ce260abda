package models

import "time"

// Review is left by a driver for a charger after a completed order.
type Review struct {
	ID        string    `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ChargerID string    `db:"charger_id" json:"charger_id"`
	OrderID   string    `db:"order_id" json:"order_id"`
	Rating    int       `db:"rating" json:"rating"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Favorite is a bookmarked charger kept in the per-user key-value store.
type Favorite struct {
	ChargerID      string    `json:"charger_id"`
	ChargerName    string    `json:"charger_name"`
	ChargerAddress string    `json:"charger_address"`
	CreatedAt      time.Time `json:"created_at"`
}
