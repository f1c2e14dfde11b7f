package application

import (
	"context"

	"github.com/shopkit/commerce-api/internal/domain/order"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// AddItemToOrderCommand appends one line to an existing draft order.
type AddItemToOrderCommand struct {
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice int64
}

// AddItemToOrderResult reflects the order state after the append.
type AddItemToOrderResult struct {
	OrderID     int64
	ItemCount   int
	TotalAmount int64
}

// AddItemToOrderHandler loads the order, constructs the item value object
// and lets the aggregate enforce the draft-only invariant.
type AddItemToOrderHandler struct {
	orders repository.OrderRepository
}

func NewAddItemToOrderHandler(orders repository.OrderRepository) *AddItemToOrderHandler {
	return &AddItemToOrderHandler{orders: orders}
}

func (h *AddItemToOrderHandler) Handle(ctx context.Context, cmd AddItemToOrderCommand) (*AddItemToOrderResult, error) {
	o, err := h.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrOrderNotFound
	}

	item, err := order.NewItem(cmd.ProductID, cmd.Quantity, cmd.UnitPrice)
	if err != nil {
		return nil, err
	}

	if err := o.AddItem(item); err != nil {
		return nil, err
	}

	if err := h.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	return &AddItemToOrderResult{
		OrderID:     o.ID(),
		ItemCount:   len(o.Items()),
		TotalAmount: o.TotalAmount(),
	}, nil
}
