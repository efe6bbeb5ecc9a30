package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"solnet-sms/internal/domain/notification"

	"github.com/redis/go-redis/v9"
)

const templateCacheKey = "solnet:sms:templates"

var _ notification.TemplateStore = (*CachedTemplateStore)(nil)

// CachedTemplateStore is a Redis read-through cache in front of a
// TemplateStore. Templates are loaded on every notification, so the
// cache keeps the hot path off PostgREST. Redis failures fail open to
// the underlying store.
type CachedTemplateStore struct {
	client *redis.Client
	inner  notification.TemplateStore
	ttl    time.Duration
}

// NewCachedTemplateStore creates a Redis-backed template cache.
func NewCachedTemplateStore(redisAddr, password string, db int, inner notification.TemplateStore, ttl time.Duration) *CachedTemplateStore {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
	return &CachedTemplateStore{client: client, inner: inner, ttl: ttl}
}

// GetTemplateSets returns cached template sets when present, otherwise
// loads from the underlying store and repopulates the cache.
func (c *CachedTemplateStore) GetTemplateSets(ctx context.Context) ([]notification.TemplateSet, error) {
	cached, err := c.client.Get(ctx, templateCacheKey).Bytes()
	if err == nil {
		var sets []notification.TemplateSet
		if err := json.Unmarshal(cached, &sets); err == nil {
			return sets, nil
		}
		// Corrupt cache entry — drop it and reload.
		_ = c.client.Del(ctx, templateCacheKey).Err()
	} else if err != redis.Nil {
		slog.Warn("template cache unavailable, reading store directly", "error", err)
	}

	sets, err := c.inner.GetTemplateSets(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(sets); err == nil {
		if err := c.client.Set(ctx, templateCacheKey, encoded, c.ttl).Err(); err != nil {
			slog.Warn("failed to populate template cache", "error", err)
		}
	}

	return sets, nil
}

// Invalidate drops the cached template sets.
func (c *CachedTemplateStore) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, templateCacheKey).Err()
}

// Close closes the Redis connection.
func (c *CachedTemplateStore) Close() error {
	return c.client.Close()
}
