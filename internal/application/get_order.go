package application

import (
	"context"

	"github.com/shopkit/commerce-api/internal/domain/order"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// GetOrderQuery fetches a read-only projection of one order.
type GetOrderQuery struct {
	OrderID int64
}

// OrderItemView is one line of the projection.
type OrderItemView struct {
	ProductID int64
	Quantity  int64
	UnitPrice int64
	Total     int64
}

// GetOrderResult is the full order projection returned to the boundary.
type GetOrderResult struct {
	OrderID     int64
	UserID      int64
	Status      string
	Items       []OrderItemView
	TotalAmount int64
}

// GetOrderHandler serves the order detail view. It mutates nothing and
// records nothing.
type GetOrderHandler struct {
	orders repository.OrderRepository
}

func NewGetOrderHandler(orders repository.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders}
}

func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*GetOrderResult, error) {
	o, err := h.orders.GetByID(ctx, q.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrOrderNotFound
	}

	items := o.Items()
	views := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		views = append(views, OrderItemView{
			ProductID: it.ProductID(),
			Quantity:  it.Quantity(),
			UnitPrice: it.UnitPrice(),
			Total:     it.Total(),
		})
	}

	return &GetOrderResult{
		OrderID:     o.ID(),
		UserID:      o.UserID(),
		Status:      o.Status().String(),
		Items:       views,
		TotalAmount: o.TotalAmount(),
	}, nil
}
