package session

import (
	"sync"

	cartapp "github.com/retrorevival/storefront/internal/application/cart"
	checkoutapp "github.com/retrorevival/storefront/internal/application/checkout"
	orderapp "github.com/retrorevival/storefront/internal/application/order"
	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/domain/order"
	"go.uber.org/zap"
)

// State bundles the per-session collaborators: the cart manager, the
// checkout service and the order context. It is the explicit,
// dependency-injected replacement for what the web client held in
// ambient view contexts.
type State struct {
	Cart     *cartapp.Manager
	Checkout *checkoutapp.Service
	Orders   *orderapp.Context
}

// Registry hands out per-session state, creating it lazily on first
// touch. It lives for the process and is safe for concurrent use; the
// state for a given session ID is created exactly once.
type Registry struct {
	store     cart.Store
	submitter order.Submitter
	log       *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*State
}

// NewRegistry creates an empty session registry
func NewRegistry(store cart.Store, submitter order.Submitter, log *zap.Logger) *Registry {
	return &Registry{
		store:     store,
		submitter: submitter,
		log:       log,
		sessions:  make(map[string]*State),
	}
}

// Get returns the state for a session, creating it on first touch
func (r *Registry) Get(sessionID string) *State {
	r.mu.RLock()
	state, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return state
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.sessions[sessionID]; ok {
		return state
	}

	manager := cartapp.NewManager(sessionID, r.store, r.log)
	orders := orderapp.NewContext()
	state = &State{
		Cart:     manager,
		Checkout: checkoutapp.NewService(manager, orders, r.submitter, r.log),
		Orders:   orders,
	}
	r.sessions[sessionID] = state
	return state
}

// Drop removes a session's state, e.g. when the session is destroyed
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
