package cart

import (
	"fmt"
	"strings"

	"github.com/retrorevival/storefront/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item is a single cart slot. Items are immutable once placed in the
// cart; the only mutation the cart supports is removal of the slot.
// Two slots may carry the same item ID - duplicates are not merged
// into a quantity.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ImageAlt    string `json:"image_alt"`
}

// NewItem creates a cart item, validating the fields a slot cannot do
// without. Price is a decimal string with an optional leading currency
// symbol, e.g. "$10.00".
func NewItem(id, name, price, description, imageURL, imageAlt string) (Item, error) {
	if id == "" {
		return Item{}, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if name == "" {
		return Item{}, shared.NewDomainError("INVALID_ITEM", "Item name cannot be empty")
	}
	if _, err := ParsePrice(price); err != nil {
		return Item{}, err
	}
	return Item{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
		ImageAlt:    imageAlt,
	}, nil
}

// PriceAmount returns the numeric part of the item price.
func (i Item) PriceAmount() (decimal.Decimal, error) {
	return ParsePrice(i.Price)
}

// ParsePrice strips a leading currency symbol and parses the remainder
// as a decimal amount.
func ParsePrice(price string) (decimal.Decimal, error) {
	s := strings.TrimPrefix(strings.TrimSpace(price), "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_PRICE", fmt.Sprintf("Invalid item price %q", price))
	}
	return d, nil
}
