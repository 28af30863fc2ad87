// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/sizopi-be/internal/core/domain"
	"github.com/ammerola/sizopi-be/internal/core/ports"
)

// CacheKeyPrefix namespaces cache keys per read model
type CacheKeyPrefix string

const (
	PrefixTopAdopters    CacheKeyPrefix = "adopters:top"
	PrefixAdopterDetails CacheKeyPrefix = "adopters:details"
)

// ErrCacheMiss is returned when a key is not found in cache
var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON-encoded values in Redis with a default TTL
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache creates a new cache instance
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// Set stores a value in cache with default TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	return c.SetWithTTL(ctx, key, value, c.ttl)
}

// SetWithTTL stores a value in cache with custom TTL
func (c *Cache) SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.ErrorContext(ctx, "failed to set cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache set",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

// Get decodes a cached value into dest, or returns ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.DebugContext(ctx, "cache miss", slog.String("key", key))
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	c.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
	return nil
}

// Delete removes the given keys
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	c.logger.DebugContext(ctx, "cache delete", slog.Any("keys", keys))
	return nil
}

// DeletePrefix removes every key under prefix
func (c *Cache) DeletePrefix(ctx context.Context, prefix CacheKeyPrefix) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, string(prefix)+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan error: %w", err)
	}
	return c.Delete(ctx, keys...)
}

// BuildKey creates a cache key with prefix
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	key := string(prefix)
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

// CachedAdopterRepository serves the leaderboard and adopter lookups from
// Redis, falling through to the wrapped repository on a miss. A Redis
// failure is logged and never fails the read.
type CachedAdopterRepository struct {
	next   ports.AdopterRepository
	cache  *Cache
	logger *slog.Logger
}

var _ ports.AdopterRepository = (*CachedAdopterRepository)(nil)

func NewCachedAdopterRepository(next ports.AdopterRepository, cache *Cache, logger *slog.Logger) *CachedAdopterRepository {
	return &CachedAdopterRepository{
		next:   next,
		cache:  cache,
		logger: logger.With(slog.String("component", "adopter_cache")),
	}
}

func (r *CachedAdopterRepository) TopAdopters(ctx context.Context, n int) ([]domain.TopAdopter, error) {
	key := BuildKey(PrefixTopAdopters, strconv.Itoa(n))

	var cached []domain.TopAdopter
	if r.lookup(ctx, key, &cached) {
		return cached, nil
	}

	top, err := r.next.TopAdopters(ctx, n)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, top)
	return top, nil
}

// GetAdopterWithDetails caches hits only, so a new adopter shows up at once
func (r *CachedAdopterRepository) GetAdopterWithDetails(ctx context.Context, id any) (*domain.AdopterDetails, error) {
	key := BuildKey(PrefixAdopterDetails, fmt.Sprint(id))

	var cached domain.AdopterDetails
	if r.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	details, err := r.next.GetAdopterWithDetails(ctx, id)
	if err != nil || details == nil {
		return details, err
	}
	r.store(ctx, key, details)
	return details, nil
}

// Invalidate drops the adopter's details and every cached leaderboard
func (r *CachedAdopterRepository) Invalidate(ctx context.Context, adopterID any) error {
	if err := r.cache.Delete(ctx, BuildKey(PrefixAdopterDetails, fmt.Sprint(adopterID))); err != nil {
		return err
	}
	return r.cache.DeletePrefix(ctx, PrefixTopAdopters)
}

func (r *CachedAdopterRepository) lookup(ctx context.Context, key string, dest any) bool {
	err := r.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
	return false
}

func (r *CachedAdopterRepository) store(ctx context.Context, key string, value any) {
	if err := r.cache.Set(ctx, key, value); err != nil {
		r.logger.WarnContext(ctx, "failed to cache value after fetch",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

// CachedAdoptionRepository invalidates the adopter read cache after each
// adoption write. An invalidation failure is logged; the cached entries then
// expire with their TTL.
type CachedAdoptionRepository struct {
	ports.AdoptionRepository
	adopters *CachedAdopterRepository
	logger   *slog.Logger
}

var _ ports.AdoptionRepository = (*CachedAdoptionRepository)(nil)

func NewCachedAdoptionRepository(next ports.AdoptionRepository, adopters *CachedAdopterRepository, logger *slog.Logger) *CachedAdoptionRepository {
	return &CachedAdoptionRepository{
		AdoptionRepository: next,
		adopters:           adopters,
		logger:             logger.With(slog.String("component", "adoption_cache")),
	}
}

func (r *CachedAdoptionRepository) Create(ctx context.Context, a *domain.Adoption) (*domain.Adoption, error) {
	created, err := r.AdoptionRepository.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	if err := r.adopters.Invalidate(ctx, created.AdopterID); err != nil {
		r.logger.WarnContext(ctx, "failed to invalidate adopter cache",
			slog.String("adopter_id", created.AdopterID.String()),
			slog.String("error", err.Error()))
	}
	return created, nil
}
