package cart

import "github.com/shopspring/decimal"

// Cart is an ordered sequence of items, addressed by position.
// Deletion is by position rather than by item ID, so relative order is
// part of the cart's correctness contract.
type Cart struct {
	items []Item
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// FromItems creates a cart holding a copy of the given slots
func FromItems(items []Item) *Cart {
	c := &Cart{}
	c.Replace(items)
	return c
}

// Add appends an item to the end of the cart. Adding an item whose ID
// already occupies another slot is allowed.
func (c *Cart) Add(item Item) {
	c.items = append(c.items, item)
}

// RemoveAt removes exactly one slot, preserving the relative order of
// the rest. An out-of-range index is a silent no-op; the return value
// reports whether a slot was removed.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// Replace swaps the cart contents for a copy of the given slots
func (c *Cart) Replace(items []Item) {
	c.items = make([]Item, len(items))
	copy(c.items, items)
}

// Items returns a copy of the cart slots in order
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of slots in the cart
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty returns true when the cart holds no slots
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total sums the numeric part of every slot's price, rounded to two
// decimal places. An empty cart totals to 0.00. A slot whose price no
// longer parses contributes zero rather than poisoning the sum.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		amount, err := item.PriceAmount()
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total.Round(2)
}
