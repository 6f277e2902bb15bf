package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sportreg/internal/catalog/models"
)

const (
	sportListKey = "catalog:sports"
	sportListTTL = 5 * time.Minute
)

// CachedStore is a Redis read-through cache in front of a catalog store.
// The sport list is hot and changes only through the administrative path,
// so listings tolerate a short TTL. Cache failures degrade to the database
// and never fail the request.
type CachedStore struct {
	inner  Store
	client *redis.Client
	logger *slog.Logger
}

// NewCached wraps inner with a Redis cache.
func NewCached(inner Store, client *redis.Client, logger *slog.Logger) *CachedStore {
	return &CachedStore{inner: inner, client: client, logger: logger}
}

func (s *CachedStore) List(ctx context.Context) ([]models.Sport, error) {
	payload, err := s.client.Get(ctx, sportListKey).Bytes()
	if err == nil {
		var sports []models.Sport
		if err := json.Unmarshal(payload, &sports); err == nil {
			return sports, nil
		}
		// Corrupt cache entry: fall through to the database and rewrite.
	} else if !errors.Is(err, redis.Nil) {
		s.logger.WarnContext(ctx, "sport cache read failed", "error", err)
	}

	sports, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(sports); err == nil {
		if err := s.client.Set(ctx, sportListKey, payload, sportListTTL).Err(); err != nil {
			s.logger.WarnContext(ctx, "sport cache write failed", "error", err)
		}
	}
	return sports, nil
}

// Create writes through to the store and invalidates the cached list.
func (s *CachedStore) Create(ctx context.Context, title string) (int64, error) {
	id, err := s.inner.Create(ctx, title)
	if err != nil {
		return 0, err
	}
	if err := s.client.Del(ctx, sportListKey).Err(); err != nil {
		s.logger.WarnContext(ctx, "sport cache invalidation failed", "error", err)
	}
	return id, nil
}

// FindByID bypasses the cache; only the full listing is hot.
func (s *CachedStore) FindByID(ctx context.Context, id int64) (models.Sport, error) {
	return s.inner.FindByID(ctx, id)
}
