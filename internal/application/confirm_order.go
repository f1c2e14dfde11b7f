package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shopkit/commerce-api/internal/domain/order"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// ConfirmOrderCommand finalizes a draft order.
type ConfirmOrderCommand struct {
	OrderID int64
}

// ConfirmOrderResult carries the confirmed order's total, recomputed from
// its items.
type ConfirmOrderResult struct {
	OrderID     int64
	Status      string
	ItemCount   int
	TotalAmount int64
}

// ConfirmOrderHandler loads the order and delegates the transition to the
// aggregate, which checks emptiness before status.
type ConfirmOrderHandler struct {
	orders    repository.OrderRepository
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewConfirmOrderHandler(orders repository.OrderRepository, publisher EventPublisher, logger *logrus.Logger) *ConfirmOrderHandler {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &ConfirmOrderHandler{orders: orders, publisher: publisher, logger: logger}
}

func (h *ConfirmOrderHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*ConfirmOrderResult, error) {
	o, err := h.orders.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrOrderNotFound
	}

	if err := o.Confirm(); err != nil {
		return nil, err
	}

	if err := h.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	if err := h.publisher.Publish(ctx, o.PullEvents()); err != nil && h.logger != nil {
		h.logger.WithError(err).WithField("order_id", o.ID()).Warn("publish order events failed")
	}

	return &ConfirmOrderResult{
		OrderID:     o.ID(),
		Status:      o.Status().String(),
		ItemCount:   len(o.Items()),
		TotalAmount: o.TotalAmount(),
	}, nil
}
