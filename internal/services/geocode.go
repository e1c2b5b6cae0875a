package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"kundali-api/internal/models"
	"kundali-api/pkg/nominatim"
	"kundali-api/pkg/photon"
)

// ErrPlaceNotFound is returned when no geocoding source can resolve the
// birth place. Handlers map it to a 400.
var ErrPlaceNotFound = errors.New("place not found")

// GeocodeService resolves free-text birth places against two sources,
// preferring Nominatim and falling back to Photon.
type GeocodeService struct {
	cache     *GeocodeCache
	nominatim *nominatim.Client
	photon    *photon.Client
	logger    *zap.Logger
}

func NewGeocodeService(cache *GeocodeCache, nominatimBaseURL, photonBaseURL string, logger *zap.Logger) *GeocodeService {
	return &GeocodeService{
		cache:     cache,
		nominatim: nominatim.NewClient(nominatimBaseURL),
		photon:    photon.NewClient(photonBaseURL),
		logger:    logger,
	}
}

// cacheKey normalizes a place so "Ranchi ", "ranchi" and "RANCHI" share an
// entry.
func cacheKey(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}

// Resolve returns coordinates for a birth place, consulting the cache first.
func (s *GeocodeService) Resolve(ctx context.Context, place string) (*models.Location, error) {
	key := cacheKey(place)
	if key == "" {
		return nil, ErrPlaceNotFound
	}

	if loc, found := s.cache.Get(ctx, key); found {
		s.logger.Debug("geocode cache hit", zap.String("place", key))
		return loc, nil
	}

	type result struct {
		loc *models.Location
		err error
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	nominatimCh := make(chan result, 1)
	photonCh := make(chan result, 1)

	go func() {
		loc, err := s.nominatim.Geocode(fetchCtx, key)
		nominatimCh <- result{loc, err}
	}()

	go func() {
		loc, err := s.photon.Geocode(fetchCtx, key)
		photonCh <- result{loc, err}
	}()

	// Prefer the Nominatim answer, fall back to Photon.
	res := <-nominatimCh
	if res.err != nil {
		s.logger.Warn("nominatim lookup failed", zap.String("place", key), zap.Error(res.err))
		res = <-photonCh
	}
	if res.err != nil {
		s.logger.Warn("photon lookup failed", zap.String("place", key), zap.Error(res.err))
		return nil, ErrPlaceNotFound
	}

	s.cache.Set(ctx, key, res.loc)
	s.logger.Debug("geocoded place",
		zap.String("place", key),
		zap.String("source", res.loc.Source),
		zap.Float64("lat", res.loc.Latitude),
		zap.Float64("lon", res.loc.Longitude))
	return res.loc, nil
}
