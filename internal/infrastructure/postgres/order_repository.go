package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopkit/commerce-api/internal/domain/order"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save writes the order row and rebuilds its item list in one transaction.
// Items are replaced wholesale; the aggregate treats the list as append-only
// so the rewrite preserves order via the position column.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET status     = EXCLUDED.status,
		    updated_at = now()
	`, o.ID(), o.UserID(), o.Status().String())
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID()); err != nil {
		return err
	}
	for pos, it := range o.Items() {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, position, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, o.ID(), pos, it.ProductID(), it.Quantity(), it.UnitPrice())
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var (
		userID    int64
		rawStatus string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, status
		FROM orders
		WHERE id = $1
	`, id).Scan(&userID, &rawStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	status, ok := order.ParseStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("order %d: unknown status %q", id, rawStatus)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var productID, quantity, unitPrice int64
		if err := rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}
		it, err := order.NewItem(productID, quantity, unitPrice)
		if err != nil {
			return nil, fmt.Errorf("order %d: corrupt item row: %w", id, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order.Reconstruct(id, userID, status, items), nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
