package cart

import (
	"errors"
	"sync"

	"sabor-do-para/internal/domain"
)

var (
	ErrNilProduct  = errors.New("product is required")
	ErrUnknownItem = errors.New("item is not in the cart")
)

// Cart holds one customer's in-progress selection. It lives in memory
// only and never touches the order store; the lines become durable only
// when checkout submits them as an order.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends a line for the product, or bumps the quantity when a
// line for it already exists.
func (c *Cart) AddItem(p *domain.Product, observation string, extras []string) error {
	if p == nil {
		return ErrNilProduct
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return nil
		}
	}

	c.lines = append(c.lines, domain.CartItem{
		Product:     *p,
		Quantity:    1,
		Observation: observation,
		Extras:      extras,
	})
	return nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the
// line entirely; a quantity of zero is never a visible state.
func (c *Cart) UpdateQuantity(productID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return nil
	}
	return ErrUnknownItem
}

func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Items returns a snapshot copy; callers can hold it across the
// submission boundary without racing later cart mutations.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, line := range c.lines {
		total += line.LineTotal()
	}
	return total
}
