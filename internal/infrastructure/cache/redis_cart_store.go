package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/retrorevival/storefront/internal/domain/cart"
	"github.com/retrorevival/storefront/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultCartKeyPrefix = "storefront:cart:"

// RedisCartStore implements cart.Store on Redis. Each session's cart
// is a single JSON value under a prefixed key. This is suitable for
// distributed deployments where multiple instances serve the same
// sessions.
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	log       *zap.Logger
}

// NewRedisCartStore creates a Redis-backed cart store from configuration
func NewRedisCartStore(cfg *config.RedisConfig, ttl time.Duration, log *zap.Logger) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCartStoreWithClient(client, defaultCartKeyPrefix, ttl, log), nil
}

// NewRedisCartStoreWithClient creates a store with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisCartStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration, log *zap.Logger) *RedisCartStore {
	if keyPrefix == "" {
		keyPrefix = defaultCartKeyPrefix
	}
	return &RedisCartStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		log:       log,
	}
}

// Load returns the stored item sequence for a session. A missing key
// or a value that no longer deserializes loads as the empty sequence.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) ([]cart.Item, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []cart.Item{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []cart.Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("malformed cart value, resetting to empty",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		if err := s.Clear(ctx, sessionID); err != nil {
			s.log.Warn("failed to remove malformed cart value", zap.Error(err))
		}
		return []cart.Item{}, nil
	}
	return items, nil
}

// Save replaces the stored item sequence for a session, refreshing its TTL
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear removes the stored cart for a session
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}
