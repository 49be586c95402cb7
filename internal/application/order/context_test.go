package order

import (
	"testing"

	"github.com/retrorevival/storefront/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_Latest(t *testing.T) {
	t.Run("reports none before any checkout", func(t *testing.T) {
		c := NewContext()
		_, ok := c.Latest()
		assert.False(t, ok)
	})

	t.Run("returns the published order", func(t *testing.T) {
		c := NewContext()
		details := []order.Detail{{ItemID: "a"}, {ItemID: "b"}}
		c.Publish(details, "Alex")

		got, ok := c.Latest()
		require.True(t, ok)
		assert.Equal(t, details, got.Details)
		assert.Equal(t, "Alex", got.BuyerName)
		assert.False(t, got.PlacedAt.IsZero())
	})

	t.Run("is not consumed on read", func(t *testing.T) {
		c := NewContext()
		c.Publish([]order.Detail{{ItemID: "a"}}, "Alex")

		_, ok := c.Latest()
		require.True(t, ok)
		_, ok = c.Latest()
		assert.True(t, ok)
	})

	t.Run("each checkout overwrites the previous order", func(t *testing.T) {
		c := NewContext()
		c.Publish([]order.Detail{{ItemID: "a"}}, "Alex")
		c.Publish([]order.Detail{{ItemID: "b"}}, "Alex")

		got, ok := c.Latest()
		require.True(t, ok)
		require.Len(t, got.Details, 1)
		assert.Equal(t, "b", got.Details[0].ItemID)
	})

	t.Run("published details are copied", func(t *testing.T) {
		c := NewContext()
		details := []order.Detail{{ItemID: "a"}}
		c.Publish(details, "Alex")
		details[0].ItemID = "mutated"

		got, _ := c.Latest()
		assert.Equal(t, "a", got.Details[0].ItemID)
	})
}
