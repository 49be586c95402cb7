package checkout

import (
	"context"
	"errors"
	"sync"

	cartapp "github.com/retrorevival/storefront/internal/application/cart"
	orderapp "github.com/retrorevival/storefront/internal/application/order"
	"github.com/retrorevival/storefront/internal/domain/billing"
	"github.com/retrorevival/storefront/internal/domain/order"
	"github.com/retrorevival/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// State is the orchestrator's submission state
type State string

const (
	StateIdle       State = "IDLE"
	StateSubmitting State = "SUBMITTING"
)

// Result carries the navigation context handed to the confirmation
// view after a successful checkout.
type Result struct {
	BuyerName string
	Details   []order.Detail
}

// Service runs the guarded, single-shot transition from cart contents
// to a submitted order for one session. Each attempt is terminal:
// either the order is submitted and the cart cleared, or the cart and
// billing state are left untouched so the user may retry. There is no
// automatic retry and no multi-step saga.
//
// At most one submission may be in flight per session; a submit while
// one is outstanding is rejected rather than queued.
type Service struct {
	cart      *cartapp.Manager
	orders    *orderapp.Context
	submitter order.Submitter
	log       *zap.Logger

	mu    sync.Mutex
	state State
}

// NewService creates a checkout service for one session
func NewService(cart *cartapp.Manager, orders *orderapp.Context, submitter order.Submitter, log *zap.Logger) *Service {
	return &Service{
		cart:      cart,
		orders:    orders,
		submitter: submitter,
		log:       log,
		state:     StateIdle,
	}
}

// State returns the current submission state
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Checkout runs one submission attempt:
//
//  1. empty cart aborts with ErrEmptyCart, no network call
//  2. incomplete billing aborts with ErrIncompleteBilling, no network call
//  3. the cart is mapped to order details (item IDs only) and submitted
//     as a single order-creation request
//  4. a failed submission surfaces the server's message and leaves the
//     cart untouched
//  5. on success the completed order is published to the order context,
//     the cart and its store are cleared, and the buyer's first name is
//     returned as navigation context for the confirmation view
func (s *Service) Checkout(ctx context.Context, info billing.Info, buyerName string) (*Result, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, shared.ErrSubmissionInFlight
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
	}()

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if !info.Validate() {
		return nil, shared.ErrIncompleteBilling
	}

	details := order.DetailsFromItems(items)
	if err := s.submitter.Submit(ctx, details); err != nil {
		s.log.Warn("order submission failed",
			zap.Int("items", len(details)),
			zap.Error(err),
		)
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, shared.NewSubmissionError(err.Error())
	}

	s.orders.Publish(details, buyerName)
	s.cart.Clear(ctx)
	s.log.Info("checkout completed",
		zap.Int("items", len(details)),
		zap.String("buyer", buyerName),
	)

	return &Result{BuyerName: buyerName, Details: details}, nil
}
