package persistence

import (
	"context"
	"errors"

	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartStore implements cart.Store on a relational database. One
// row per session holds the serialized item sequence. A row that no
// longer deserializes is treated as an absent cart and reset, never
// surfaced as an error.
type GormCartStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGormCartStore creates a new GormCartStore
func NewGormCartStore(db *gorm.DB, log *zap.Logger) *GormCartStore {
	return &GormCartStore{db: db, log: log}
}

// Load returns the stored item sequence for a session, or an empty
// sequence when nothing (or nothing readable) is stored.
func (s *GormCartStore) Load(ctx context.Context, sessionID string) ([]cart.Item, error) {
	var record models.CartRecord
	if err := s.db.WithContext(ctx).First(&record, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []cart.Item{}, nil
		}
		return nil, err
	}

	items, err := record.ToDomain()
	if err != nil {
		s.log.Warn("malformed cart record, resetting to empty",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		if err := s.Clear(ctx, sessionID); err != nil {
			s.log.Warn("failed to remove malformed cart record", zap.Error(err))
		}
		return []cart.Item{}, nil
	}
	return items, nil
}

// Save replaces the stored item sequence for a session
func (s *GormCartStore) Save(ctx context.Context, sessionID string, items []cart.Item) error {
	record, err := models.NewCartRecord(sessionID, items)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(record).Error
}

// Clear removes the stored cart for a session
func (s *GormCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).
		Delete(&models.CartRecord{}, "session_id = ?", sessionID).Error
}
