package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openfloor/planscan/internal/config"
	"github.com/openfloor/planscan/internal/export"
)

// ResultCache stores export documents in redis keyed by the SHA-256 of the
// uploaded bytes. The pipeline is deterministic, so a content hash fully
// identifies the result.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache connects a cache per the redis configuration.
func NewResultCache(cfg config.RedisConfig) *ResultCache {
	return &ResultCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: cfg.TTL,
	}
}

// Key derives the cache key for an uploaded image.
func (c *ResultCache) Key(data []byte) string {
	sum := sha256.Sum256(data)
	return "plan:" + hex.EncodeToString(sum[:])
}

// Ping checks connectivity.
func (c *ResultCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the cached document for a key, or (nil, nil) on a miss.
func (c *ResultCache) Get(ctx context.Context, key string) (*export.Document, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var doc export.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Set stores a document under a key with the configured TTL.
func (c *ResultCache) Set(ctx context.Context, key string, doc *export.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close releases the redis connection.
func (c *ResultCache) Close() error {
	return c.client.Close()
}
