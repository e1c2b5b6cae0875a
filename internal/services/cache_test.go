package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"kundali-api/internal/models"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache[string, int](time.Minute)

	c.Set("a", 1)
	v, found := c.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, v)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache[string, string](10 * time.Millisecond)

	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestGeocodeCacheMemoryOnly(t *testing.T) {
	gc := NewGeocodeCache("", time.Minute, zap.NewNop())
	defer gc.Close()

	ctx := context.Background()
	loc := &models.Location{Latitude: 23.36, Longitude: 85.33, Source: "nominatim"}

	_, found := gc.Get(ctx, "ranchi")
	assert.False(t, found)

	gc.Set(ctx, "ranchi", loc)
	got, found := gc.Get(ctx, "ranchi")
	assert.True(t, found)
	assert.Equal(t, loc, got)
}

func TestGeocodeCacheBadRedisURLFallsBack(t *testing.T) {
	gc := NewGeocodeCache("not-a-url", time.Minute, zap.NewNop())
	defer gc.Close()

	ctx := context.Background()
	gc.Set(ctx, "delhi", &models.Location{Latitude: 28.61, Longitude: 77.21})
	_, found := gc.Get(ctx, "delhi")
	assert.True(t, found)
}
