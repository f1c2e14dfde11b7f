package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shopkit/commerce-api/internal/domain/order"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// CreateOrderCommand opens a draft order for a user.
type CreateOrderCommand struct {
	UserID int64
}

// CreateOrderResult describes the freshly created draft.
type CreateOrderResult struct {
	OrderID     int64
	Status      string
	ItemCount   int
	TotalAmount int64
}

// CreateOrderHandler generates an id, creates the draft through the domain
// factory and persists it.
type CreateOrderHandler struct {
	orders    repository.OrderRepository
	ids       IDGenerator
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewCreateOrderHandler(orders repository.OrderRepository, ids IDGenerator, publisher EventPublisher, logger *logrus.Logger) *CreateOrderHandler {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &CreateOrderHandler{orders: orders, ids: ids, publisher: publisher, logger: logger}
}

func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	id, err := h.ids.NextID(ctx)
	if err != nil {
		return nil, err
	}

	o := order.Create(id, cmd.UserID)
	if err := h.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	if err := h.publisher.Publish(ctx, o.PullEvents()); err != nil && h.logger != nil {
		h.logger.WithError(err).WithField("order_id", id).Warn("publish order events failed")
	}

	return &CreateOrderResult{
		OrderID:     o.ID(),
		Status:      o.Status().String(),
		ItemCount:   len(o.Items()),
		TotalAmount: o.TotalAmount(),
	}, nil
}
