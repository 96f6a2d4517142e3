// Package cart holds the pre-checkout line items for one shopper. The cart
// has no server-side counterpart until an order is created; it lives in a
// durable key-value slot and every mutation re-serializes the whole
// collection.
package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Slot keys. Alongside the items the slot carries the applied coupon code
// and the last computed checkout total.
const (
	keyItems  = "cart"
	keyCoupon = "appliedCoupon"
	keyTotal  = "finalTotal"
)

// Item is a single cart entry. Price is already discount-adjusted at
// add-to-cart time.
type Item struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// Cart is an ordered collection of items backed by a Slot.
type Cart struct {
	mu    sync.Mutex
	slot  Slot
	items []Item
}

// Open loads a cart from the slot, starting empty when nothing is stored.
func Open(slot Slot) (*Cart, error) {
	c := &Cart{slot: slot}
	raw, err := slot.Load(keyItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &c.items); err != nil {
			return nil, fmt.Errorf("failed to decode stored cart: %w", err)
		}
	}
	return c, nil
}

// Add appends a copy of the item with a freshly generated ID and returns
// the stored copy.
func (c *Cart) Add(item Item) (Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item.ID = uuid.New().String()
	c.items = append(c.items, item)
	if err := c.persist(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return Item{}, err
	}
	return item, nil
}

// Remove deletes the entry with the given ID. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	prev := c.items
	c.items = kept
	if err := c.persist(); err != nil {
		c.items = prev
		return err
	}
	return nil
}

// Clear empties the cart and drops the session extras.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	c.items = nil
	if err := c.persist(); err != nil {
		c.items = prev
		return err
	}
	if err := c.slot.Delete(keyCoupon); err != nil {
		return err
	}
	return c.slot.Delete(keyTotal)
}

// Total sums the stored item prices.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, it := range c.items {
		sum += it.Price
	}
	return sum
}

// Items returns a copy of the current entries in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of entries.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// SetAppliedCoupon remembers the coupon code the shopper applied.
func (c *Cart) SetAppliedCoupon(code string) error {
	if code == "" {
		return c.slot.Delete(keyCoupon)
	}
	return c.slot.Save(keyCoupon, code)
}

// AppliedCoupon returns the remembered coupon code, "" when none.
func (c *Cart) AppliedCoupon() (string, error) {
	return c.slot.Load(keyCoupon)
}

// SetFinalTotal remembers the last computed checkout total.
func (c *Cart) SetFinalTotal(total float64) error {
	raw, err := json.Marshal(total)
	if err != nil {
		return err
	}
	return c.slot.Save(keyTotal, string(raw))
}

// FinalTotal returns the remembered checkout total, 0 when none.
func (c *Cart) FinalTotal() (float64, error) {
	raw, err := c.slot.Load(keyTotal)
	if err != nil || raw == "" {
		return 0, err
	}
	var total float64
	if err := json.Unmarshal([]byte(raw), &total); err != nil {
		return 0, fmt.Errorf("failed to decode stored total: %w", err)
	}
	return total, nil
}

// persist re-serializes the full collection into the slot.
func (c *Cart) persist() error {
	raw, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := c.slot.Save(keyItems, string(raw)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
