package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// ErrOrderNotFound indicates a missing order id.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderFinished indicates an attempted transition on a terminal order.
var ErrOrderFinished = errors.New("order already finished")

// OrderRepository handles persistence of charging orders.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository returns repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	const query = `
		INSERT INTO orders (id, charger_id, charger_name, user_id, owner_id, status, start_time, duration_min, energy_kwh, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		order.ID,
		order.ChargerID,
		order.ChargerName,
		order.UserID,
		order.OwnerID,
		order.Status,
		order.StartTime,
		order.DurationMin,
		order.EnergyKWh,
		order.Amount,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns one order by id.
func (r *OrderRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	const query = `
		SELECT id, charger_id, charger_name, user_id, owner_id, status, start_time, end_time, duration_min, energy_kwh, amount, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	var order models.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.ChargerID,
		&order.ChargerName,
		&order.UserID,
		&order.OwnerID,
		&order.Status,
		&order.StartTime,
		&order.EndTime,
		&order.DurationMin,
		&order.EnergyKWh,
		&order.Amount,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Complete finalizes an order. Only non-terminal orders transition; attempts on
// completed or cancelled orders fail with ErrOrderFinished.
func (r *OrderRepository) Complete(ctx context.Context, id string, endTime time.Time, durationMin int, energyKWh, amount float64) error {
	const query = `
		UPDATE orders
		SET status = 'completed',
		    end_time = $2,
		    duration_min = $3,
		    energy_kwh = $4,
		    amount = $5,
		    updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'charging')
	`
	return r.transition(ctx, id, query, endTime, durationMin, energyKWh, amount)
}

// Cancel marks an order cancelled.
func (r *OrderRepository) Cancel(ctx context.Context, id string) error {
	const query = `
		UPDATE orders
		SET status = 'cancelled',
		    updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'charging')
	`
	return r.transition(ctx, id, query)
}

func (r *OrderRepository) transition(ctx context.Context, id, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, append([]interface{}{id}, args...)...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return ErrOrderFinished
	}
	return nil
}

// ListByUser returns the driver's most recent orders.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.Order, error) {
	const query = `
		SELECT id, charger_id, charger_name, user_id, owner_id, status, start_time, end_time, duration_min, energy_kwh, amount, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`
	return r.list(ctx, query, userID, limit)
}

// ListByOwner returns orders charged on the owner's listings.
func (r *OrderRepository) ListByOwner(ctx context.Context, ownerID int64, limit int) ([]models.Order, error) {
	const query = `
		SELECT id, charger_id, charger_name, user_id, owner_id, status, start_time, end_time, duration_min, energy_kwh, amount, created_at, updated_at
		FROM orders
		WHERE owner_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`
	return r.list(ctx, query, ownerID, limit)
}

func (r *OrderRepository) list(ctx context.Context, query string, id int64, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, query, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(
			&order.ID,
			&order.ChargerID,
			&order.ChargerName,
			&order.UserID,
			&order.OwnerID,
			&order.Status,
			&order.StartTime,
			&order.EndTime,
			&order.DurationMin,
			&order.EnergyKWh,
			&order.Amount,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
