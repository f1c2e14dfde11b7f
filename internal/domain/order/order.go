package order

import "github.com/shopkit/commerce-api/internal/domain/event"

// Order is the aggregate root of the orders context. Items are append-only
// while the order is a draft, and the DRAFT -> CONFIRMED transition is
// one-way.
type Order struct {
	id     int64
	userID int64
	status Status
	items  []Item

	events []event.Event
}

// Create opens a new draft order for a user and records an OrderCreated
// event.
func Create(id, userID int64) *Order {
	o := &Order{
		id:     id,
		userID: userID,
		status: StatusDraft,
	}
	o.record(OrderCreated{OrderID: id, UserID: userID})
	return o
}

// Reconstruct restores a persisted Order in an arbitrary saved state without
// recording events. Only repository implementations should call this.
func Reconstruct(id, userID int64, status Status, items []Item) *Order {
	o := &Order{
		id:     id,
		userID: userID,
		status: status,
	}
	o.items = append(o.items, items...)
	return o
}

// AddItem appends an item to a draft order. Any other status returns
// ErrStatusConflict and leaves the order unchanged.
func (o *Order) AddItem(item Item) error {
	if o.status != StatusDraft {
		return ErrStatusConflict
	}
	o.items = append(o.items, item)
	return nil
}

// Confirm transitions a non-empty draft order to CONFIRMED and records an
// OrderConfirmed event. Emptiness is checked before status, so an empty
// non-draft order reports ErrEmptyOrder.
func (o *Order) Confirm() error {
	if len(o.items) == 0 {
		return ErrEmptyOrder
	}
	if o.status != StatusDraft {
		return ErrStatusConflict
	}
	o.status = StatusConfirmed
	o.record(OrderConfirmed{OrderID: o.id})
	return nil
}

// TotalAmount is the sum of all line totals, recomputed on every call. An
// empty order totals zero.
func (o *Order) TotalAmount() int64 {
	var total int64
	for _, it := range o.items {
		total += it.Total()
	}
	return total
}

func (o *Order) ID() int64      { return o.id }
func (o *Order) UserID() int64  { return o.userID }
func (o *Order) Status() Status { return o.status }

// Items returns a copy of the item list; callers cannot mutate the
// aggregate through it.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// PullEvents returns the events recorded since the last pull and clears the
// internal list.
func (o *Order) PullEvents() []event.Event {
	evs := o.events
	o.events = nil
	return evs
}

func (o *Order) record(e event.Event) {
	o.events = append(o.events, e)
}
