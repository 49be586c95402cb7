package cart

import (
	"context"
	"sync"

	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Manager is the in-memory view of one session's cart, kept equal to
// the persisted store after every mutation (write-through, not
// write-behind). No other event handler may observe a torn state
// between the in-memory cart and the store.
//
// Storage failures are best-effort: a failed write means the cart may
// not survive a reload, which is not actionable by the shopper, so it
// is logged and swallowed rather than surfaced.
type Manager struct {
	sessionID string
	store     cart.Store
	log       *zap.Logger

	mu   sync.Mutex
	cart *cart.Cart
}

// NewManager creates a cart manager for one session
func NewManager(sessionID string, store cart.Store, log *zap.Logger) *Manager {
	return &Manager{
		sessionID: sessionID,
		store:     store,
		log:       log,
		cart:      cart.New(),
	}
}

// AddItem appends an item to the cart and writes through to the store
func (m *Manager) AddItem(ctx context.Context, item cart.Item) []cart.Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cart.Add(item)
	m.writeThrough(ctx)
	return m.cart.Items()
}

// RemoveAt removes the slot at the given position and writes through
// to the store. An out-of-range index is a silent no-op.
func (m *Manager) RemoveAt(ctx context.Context, index int) []cart.Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cart.RemoveAt(index) {
		m.writeThrough(ctx)
	}
	return m.cart.Items()
}

// Items returns the current cart slots in order
func (m *Manager) Items() []cart.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Items()
}

// Len returns the number of slots in the cart
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Len()
}

// Total returns the cart total rounded to two decimal places
func (m *Manager) Total() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Total()
}

// RefreshFromStore re-reads the store and replaces the in-memory
// state. It is invoked on every view-entry transition so cart state is
// never stale after navigating away and back. A read failure or
// malformed record degrades to an empty cart, never an error.
func (m *Manager) RefreshFromStore(ctx context.Context) []cart.Item {
	items, err := m.store.Load(ctx, m.sessionID)
	if err != nil {
		m.log.Warn("cart store read failed, treating cart as empty",
			zap.String("session_id", m.sessionID),
			zap.Error(err),
		)
		items = nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart.Replace(items)
	return m.cart.Items()
}

// Clear empties the in-memory cart and removes the stored record. Used
// by checkout after a successful submission.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cart.Replace(nil)
	if err := m.store.Clear(ctx, m.sessionID); err != nil {
		m.log.Error("cart store clear failed",
			zap.String("session_id", m.sessionID),
			zap.Error(err),
		)
	}
}

// writeThrough saves the current cart before the mutation returns.
// Callers must hold m.mu.
func (m *Manager) writeThrough(ctx context.Context) {
	if err := m.store.Save(ctx, m.sessionID, m.cart.Items()); err != nil {
		m.log.Warn("cart store write failed, cart will not survive a reload",
			zap.String("session_id", m.sessionID),
			zap.Error(err),
		)
	}
}
