package models

import (
	"encoding/json"
	"time"

	"github.com/retrorevival/storefront/internal/domain/cart"
)

// CartRecord stores one session's cart as a serialized item sequence,
// mirroring the single storage key the web client kept its cart under.
type CartRecord struct {
	SessionID string    `gorm:"column:session_id;primaryKey;size:64"`
	Items     string    `gorm:"column:items;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (CartRecord) TableName() string {
	return "session_carts"
}

// NewCartRecord serializes a domain item sequence into a record
func NewCartRecord(sessionID string, items []cart.Item) (*CartRecord, error) {
	if items == nil {
		items = []cart.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return &CartRecord{
		SessionID: sessionID,
		Items:     string(data),
		UpdatedAt: time.Now(),
	}, nil
}

// ToDomain deserializes the stored item sequence. The caller treats a
// decoding error as an absent cart.
func (r *CartRecord) ToDomain() ([]cart.Item, error) {
	var items []cart.Item
	if err := json.Unmarshal([]byte(r.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}
