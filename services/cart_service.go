package services

import (
	"sync"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

// CartStore owns the page session's cart. All mutation goes through its
// methods so the uniqueness-by-name invariant and the quantity >= 1 rule
// cannot be broken by callers.
type CartStore struct {
	mu    sync.Mutex
	items []entity.CartLineItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Add merges into an existing line item by name rather than duplicating.
// A quantity below one is treated as one.
func (c *CartStore) Add(item entity.CartLineItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Name == item.Name {
			c.items[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.items = append(c.items, item)
}

// Remove deletes the line item entirely, regardless of quantity.
func (c *CartStore) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity; dropping below one removes the
// line, mirroring the quantity control's decrement behaviour.
func (c *CartStore) UpdateQuantity(name string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Name == name {
			if qty < 1 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = qty
			}
			return
		}
	}
}

func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy; callers can never mutate the cart through it.
func (c *CartStore) Items() []entity.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the total quantity across all lines (the cart icon badge).
func (c *CartStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *CartStore) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}
