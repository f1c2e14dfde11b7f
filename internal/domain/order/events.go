package order

// OrderCreated is recorded when a draft order is opened for a user.
type OrderCreated struct {
	OrderID int64 `json:"order_id"`
	UserID  int64 `json:"user_id"`
}

func (OrderCreated) EventName() string { return "orders.order_created" }

// OrderConfirmed is recorded when a draft order transitions to CONFIRMED.
type OrderConfirmed struct {
	OrderID int64 `json:"order_id"`
}

func (OrderConfirmed) EventName() string { return "orders.order_confirmed" }
