package order

// Item is one immutable line of an order. Prices are integer smallest
// currency units; no floating point appears anywhere in order math.
type Item struct {
	productID int64
	quantity  int64
	unitPrice int64
}

// NewItem validates that quantity and unit price are strictly positive.
func NewItem(productID, quantity, unitPrice int64) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return Item{}, ErrInvalidUnitPrice
	}
	return Item{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i Item) ProductID() int64 { return i.productID }
func (i Item) Quantity() int64  { return i.quantity }
func (i Item) UnitPrice() int64 { return i.unitPrice }

// Total is the line total: quantity times unit price.
func (i Item) Total() int64 { return i.quantity * i.unitPrice }
