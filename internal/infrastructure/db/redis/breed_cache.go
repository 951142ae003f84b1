package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/petowners/petregistry/internal/core/domain"
	"github.com/petowners/petregistry/internal/core/ports"
)

const (
	DefaultBreedTTL = 5 * time.Minute

	breedsAllKey = "breeds:all"
)

// BreedCache is a read-through cache in front of a breed repository.
// Key format: breed:<id> for single breeds, breeds:all for the catalog.
// Redis failures are logged and the call falls through to the backing
// repository; writes invalidate before returning.
type BreedCache struct {
	next   ports.BreedRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

var _ ports.BreedRepository = (*BreedCache)(nil)

// NewBreedCache wraps next. A non-positive ttl falls back to DefaultBreedTTL.
func NewBreedCache(next ports.BreedRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *BreedCache {
	if ttl <= 0 {
		ttl = DefaultBreedTTL
	}
	return &BreedCache{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "breed_cache").Logger(),
	}
}

func (c *BreedCache) FindByID(ctx context.Context, id int64) (*domain.Breed, error) {
	var cached domain.Breed
	if c.get(ctx, breedKey(id), &cached) {
		return &cached, nil
	}

	b, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, breedKey(id), b)
	return b, nil
}

func (c *BreedCache) FindAll(ctx context.Context) ([]domain.Breed, error) {
	var cached []domain.Breed
	if c.get(ctx, breedsAllKey, &cached) {
		return cached, nil
	}

	breeds, err := c.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, breedsAllKey, breeds)
	return breeds, nil
}

func (c *BreedCache) Create(ctx context.Context, b *domain.Breed) error {
	if err := c.next.Create(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, breedsAllKey)
	return nil
}

func (c *BreedCache) Update(ctx context.Context, b *domain.Breed) error {
	if err := c.next.Update(ctx, b); err != nil {
		return err
	}
	c.invalidate(ctx, breedKey(b.ID), breedsAllKey)
	return nil
}

func (c *BreedCache) Delete(ctx context.Context, id int64) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, breedKey(id), breedsAllKey)
	return nil
}

func (c *BreedCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry undecodable")
		return false
	}
	return true
}

func (c *BreedCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *BreedCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}

func breedKey(id int64) string {
	return fmt.Sprintf("breed:%d", id)
}
