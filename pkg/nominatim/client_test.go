package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ranchi", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"lat":"23.3600","lon":"85.3300","display_name":"Ranchi, Jharkhand"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	loc, err := c.Geocode(context.Background(), "ranchi")
	require.NoError(t, err)
	assert.InDelta(t, 23.36, loc.Latitude, 1e-9)
	assert.InDelta(t, 85.33, loc.Longitude, 1e-9)
	assert.Equal(t, "nominatim", loc.Source)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Geocode(context.Background(), "nowhere-at-all")
	assert.Error(t, err)
}

func TestGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Geocode(context.Background(), "ranchi")
	assert.Error(t, err)
}
