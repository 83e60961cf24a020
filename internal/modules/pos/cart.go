package pos

import "fmt"

// CartLine is an ephemeral checkout line. It is never persisted; committed
// sales are recorded as TransactionItems.
type CartLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// Cart accumulates lines for one checkout session against a snapshot of a
// rider's inventory. It is owned by a single session and is not safe for
// concurrent use.
type Cart struct {
	riderID string
	stock   map[string]RiderStock
	lines   []CartLine
}

// NewCart builds a cart over the rider's current stock snapshot.
func NewCart(riderID string, stock []RiderStock) *Cart {
	byProduct := make(map[string]RiderStock, len(stock))
	for _, s := range stock {
		byProduct[s.ProductID.String()] = s
	}
	return &Cart{riderID: riderID, stock: byProduct}
}

// AddItem puts quantity units of a product into the cart, merging with an
// existing line for the same product. Availability is the rider's on-hand
// quantity minus what the cart already reserves.
func (c *Cart) AddItem(productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	s, ok := c.stock[productID]
	if !ok {
		return &InsufficientStockError{ProductID: productID, Requested: quantity, Available: 0}
	}

	reserved := 0
	idx := -1
	for i, line := range c.lines {
		if line.ProductID == productID {
			reserved = line.Quantity
			idx = i
			break
		}
	}
	if available := s.Quantity - reserved; quantity > available {
		return &InsufficientStockError{
			ProductID:   productID,
			ProductName: s.ProductName,
			Requested:   quantity,
			Available:   available,
		}
	}

	if idx >= 0 {
		c.lines[idx].Quantity += quantity
		c.lines[idx].Subtotal = float64(c.lines[idx].Quantity) * c.lines[idx].UnitPrice
		return nil
	}
	c.lines = append(c.lines, CartLine{
		ProductID:   productID,
		ProductName: s.ProductName,
		ProductSKU:  s.ProductSKU,
		UnitPrice:   s.Price,
		Quantity:    quantity,
		Subtotal:    float64(quantity) * s.Price,
	})
	return nil
}

// RemoveItem drops the whole line for a product. Removing a product not in
// the cart is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Subtotal sums all line subtotals.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Subtotal
	}
	return sum
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }
