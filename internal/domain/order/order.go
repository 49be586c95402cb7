package order

import (
	"time"

	"github.com/retrorevival/storefront/internal/domain/cart"
)

// Detail identifies one ordered item. Price and description are
// deliberately omitted: the shop API is the source of truth for
// pricing at order time.
type Detail struct {
	ItemID string `json:"item_id"`
}

// CompletedOrder is the detail sequence submitted in the last
// successful checkout, together with the buyer's first name for the
// confirmation greeting.
type CompletedOrder struct {
	Details   []Detail  `json:"order_details"`
	BuyerName string    `json:"buyer_name"`
	PlacedAt  time.Time `json:"placed_at"`
}

// DetailsFromItems maps cart slots one-to-one to order details,
// preserving order. Duplicate slots yield duplicate details.
func DetailsFromItems(items []cart.Item) []Detail {
	details := make([]Detail, len(items))
	for i, item := range items {
		details[i] = Detail{ItemID: item.ID}
	}
	return details
}
