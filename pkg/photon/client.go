package photon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"kundali-api/internal/models"
)

const defaultBaseURL = "https://photon.komoot.io"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type featureCollection struct {
	Features []struct {
		Geometry struct {
			// GeoJSON order: [longitude, latitude].
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text place name to coordinates.
func (c *Client) Geocode(ctx context.Context, place string) (*models.Location, error) {
	endpoint := fmt.Sprintf("%s/api?q=%s&limit=1", c.baseURL, url.QueryEscape(place))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photon returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var fc featureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, err
	}

	if len(fc.Features) == 0 || len(fc.Features[0].Geometry.Coordinates) < 2 {
		return nil, fmt.Errorf("no results for place %q", place)
	}

	coords := fc.Features[0].Geometry.Coordinates
	return &models.Location{
		Latitude:  coords[1],
		Longitude: coords[0],
		Source:    "photon",
	}, nil
}
