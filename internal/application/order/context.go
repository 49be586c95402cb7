package order

import (
	"sync"
	"time"

	"github.com/retrorevival/storefront/internal/domain/order"
)

// Context holds the most recently completed order for one session. It
// is overwritten by each successful checkout and is not consumed on
// read, so a reload of the confirmation view still shows the last
// order. No history is kept.
//
// It is dependency-injected into the components that need it rather
// than held as ambient global state, and is safe for concurrent reads
// from the view layer.
type Context struct {
	mu   sync.RWMutex
	last *order.CompletedOrder
}

// NewContext creates an empty order context
func NewContext() *Context {
	return &Context{}
}

// Publish overwrites the held order with the details and buyer name of
// a successful checkout.
func (c *Context) Publish(details []order.Detail, buyerName string) {
	copied := make([]order.Detail, len(details))
	copy(copied, details)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = &order.CompletedOrder{
		Details:   copied,
		BuyerName: buyerName,
		PlacedAt:  time.Now(),
	}
}

// Latest returns the most recent completed order, or false before any
// successful checkout.
func (c *Context) Latest() (order.CompletedOrder, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.last == nil {
		return order.CompletedOrder{}, false
	}
	return *c.last, true
}
