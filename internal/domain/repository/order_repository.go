package repository

import (
	"context"

	"github.com/shopkit/commerce-api/internal/domain/order"
)

// OrderRepository is the persistence port for the orders context. GetByID
// returns (nil, nil) when the order does not exist.
type OrderRepository interface {
	Save(ctx context.Context, o *order.Order) error
	GetByID(ctx context.Context, id int64) (*order.Order, error)
}
