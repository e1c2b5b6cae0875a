package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"kundali-api/internal/models"
)

// Generic in-memory cache with type safety
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]*cacheItem[V]
	ttl   time.Duration
}

type cacheItem[V any] struct {
	value      V
	expiration time.Time
}

func NewCache[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	c := &Cache[K, V]{
		items: make(map[K]*cacheItem[V]),
		ttl:   ttl,
	}

	go c.cleanup()

	return c
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiration) {
		var zero V
		return zero, false
	}

	return item.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem[V]{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

func (c *Cache[K, V]) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expiration) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}

// GeocodeCache layers an optional Redis tier over the in-memory cache so
// resolved places survive restarts. Redis being down never fails a lookup.
type GeocodeCache struct {
	memory *Cache[string, *models.Location]
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewGeocodeCache(redisURL string, ttl time.Duration, logger *zap.Logger) *GeocodeCache {
	gc := &GeocodeCache{
		memory: NewCache[string, *models.Location](ttl),
		ttl:    ttl,
		logger: logger,
	}

	if redisURL == "" {
		logger.Info("geocode cache running in-memory only")
		return gc
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, falling back to in-memory cache", zap.Error(err))
		return gc
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, falling back to in-memory cache", zap.Error(err))
		_ = client.Close()
		return gc
	}

	logger.Info("geocode cache backed by redis")
	gc.redis = client
	return gc
}

func redisKey(place string) string {
	return "geocode:" + place
}

func (gc *GeocodeCache) Get(ctx context.Context, place string) (*models.Location, bool) {
	if loc, found := gc.memory.Get(place); found {
		return loc, true
	}

	if gc.redis != nil {
		data, err := gc.redis.Get(ctx, redisKey(place)).Bytes()
		if err == nil {
			var loc models.Location
			if err := json.Unmarshal(data, &loc); err == nil {
				gc.memory.Set(place, &loc)
				return &loc, true
			}
		} else if err != redis.Nil {
			gc.logger.Warn("redis get failed", zap.String("place", place), zap.Error(err))
		}
	}

	return nil, false
}

func (gc *GeocodeCache) Set(ctx context.Context, place string, loc *models.Location) {
	gc.memory.Set(place, loc)

	if gc.redis != nil {
		data, err := json.Marshal(loc)
		if err != nil {
			return
		}
		if err := gc.redis.Set(ctx, redisKey(place), data, gc.ttl).Err(); err != nil {
			gc.logger.Warn("redis set failed", zap.String("place", place), zap.Error(err))
		}
	}
}

func (gc *GeocodeCache) Close() error {
	if gc.redis != nil {
		return gc.redis.Close()
	}
	return nil
}
