package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGeocodeService(t *testing.T, nominatimURL, photonURL string) *GeocodeService {
	t.Helper()
	cache := NewGeocodeCache("", time.Minute, zap.NewNop())
	t.Cleanup(func() { cache.Close() })
	return NewGeocodeService(cache, nominatimURL, photonURL, zap.NewNop())
}

func TestResolvePrefersNominatim(t *testing.T) {
	var gotQuery string
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`[{"lat":"23.36","lon":"85.33","display_name":"Ranchi"}]`))
	}))
	defer nominatim.Close()

	photon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[0,0]}}]}`))
	}))
	defer photon.Close()

	svc := newGeocodeService(t, nominatim.URL, photon.URL)
	loc, err := svc.Resolve(context.Background(), "  Ranchi ")
	require.NoError(t, err)

	assert.Equal(t, "ranchi", gotQuery)
	assert.Equal(t, "nominatim", loc.Source)
	assert.InDelta(t, 23.36, loc.Latitude, 1e-9)
	assert.InDelta(t, 85.33, loc.Longitude, 1e-9)
}

func TestResolveFallsBackToPhoton(t *testing.T) {
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer nominatim.Close()

	photon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[85.33,23.36]}}]}`))
	}))
	defer photon.Close()

	svc := newGeocodeService(t, nominatim.URL, photon.URL)
	loc, err := svc.Resolve(context.Background(), "ranchi")
	require.NoError(t, err)

	assert.Equal(t, "photon", loc.Source)
	assert.InDelta(t, 23.36, loc.Latitude, 1e-9)
	assert.InDelta(t, 85.33, loc.Longitude, 1e-9)
}

func TestResolveBothSourcesFail(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	svc := newGeocodeService(t, down.URL, down.URL)
	_, err := svc.Resolve(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestResolveEmptyPlace(t *testing.T) {
	svc := newGeocodeService(t, "http://127.0.0.1:1", "http://127.0.0.1:1")
	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestResolveUsesCache(t *testing.T) {
	var calls int
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"lat":"23.36","lon":"85.33"}]`))
	}))
	defer nominatim.Close()

	photon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer photon.Close()

	svc := newGeocodeService(t, nominatim.URL, photon.URL)

	_, err := svc.Resolve(context.Background(), "Ranchi")
	require.NoError(t, err)
	_, err = svc.Resolve(context.Background(), "RANCHI  ")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}
