package order

import "errors"

// Sentinel errors for the orders context. NotFound and StatusConflict are
// deliberately distinct kinds; the HTTP boundary maps them to 404 and 409
// without inspecting messages.
var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrInvalidUnitPrice = errors.New("unit price must be greater than zero")
	ErrOrderNotFound    = errors.New("order not found")
	ErrStatusConflict   = errors.New("order state does not allow this operation")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
)
