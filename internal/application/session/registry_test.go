package session

import (
	"context"
	"sync"
	"testing"

	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopStore struct{}

func (nopStore) Load(context.Context, string) ([]cart.Item, error) { return nil, nil }
func (nopStore) Save(context.Context, string, []cart.Item) error   { return nil }
func (nopStore) Clear(context.Context, string) error               { return nil }

type nopSubmitter struct{}

func (nopSubmitter) Submit(context.Context, []order.Detail) error { return nil }

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(nopStore{}, nopSubmitter{}, zap.NewNop())

	t.Run("creates state on first touch", func(t *testing.T) {
		state := r.Get("s1")
		require.NotNil(t, state)
		assert.NotNil(t, state.Cart)
		assert.NotNil(t, state.Checkout)
		assert.NotNil(t, state.Orders)
	})

	t.Run("returns the same state for the same session", func(t *testing.T) {
		assert.Same(t, r.Get("s1"), r.Get("s1"))
	})

	t.Run("isolates sessions from each other", func(t *testing.T) {
		s1, s2 := r.Get("s1"), r.Get("s2")
		assert.NotSame(t, s1, s2)

		s1.Cart.AddItem(context.Background(), cart.Item{ID: "a", Name: "A", Price: "$1.00"})
		assert.Empty(t, s2.Cart.Items())
	})
}

func TestRegistry_Drop(t *testing.T) {
	r := NewRegistry(nopStore{}, nopSubmitter{}, zap.NewNop())
	first := r.Get("s1")
	r.Drop("s1")

	assert.NotSame(t, first, r.Get("s1"))
}

func TestRegistry_ConcurrentGet(t *testing.T) {
	r := NewRegistry(nopStore{}, nopSubmitter{}, zap.NewNop())

	const goroutines = 32
	states := make([]*State, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			states[i] = r.Get("shared")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, states[0], states[i])
	}
	assert.Equal(t, 1, r.Len())
}
