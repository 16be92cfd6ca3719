// Package geocode talks to a Nominatim-compatible forward geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"travelmap/internal/domain"
)

// result is one record from the search endpoint. Latitude and longitude come
// back as numeric strings.
type result struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type Client struct {
	BaseURL    string
	UserAgent  string
	Limit      int
	HTTPClient *http.Client
}

func NewClient(baseURL, userAgent string, limit int) *Client {
	if limit <= 0 {
		limit = 5
	}
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		Limit:      limit,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search looks up free-text query and maps each usable record into a
// Destination with a synthetic id. Records with unparseable coordinates are
// skipped rather than failing the whole lookup.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	apiURL := fmt.Sprintf("%s?q=%s&format=json&limit=%d",
		c.BaseURL, url.QueryEscape(query), c.Limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	// Nominatim usage policy requires an identifying client marker.
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []result
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("geocoder response not parseable: %w", err)
	}

	dests := make([]domain.Destination, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		coords := domain.Coordinates{Lat: lat, Lon: lon}
		if !coords.Valid() {
			continue
		}
		dests = append(dests, domain.Destination{
			ID:          syntheticID(r.PlaceID),
			Name:        r.DisplayName,
			Coordinates: coords,
			Summary:     r.DisplayName,
		})
	}

	return dests, nil
}

func syntheticID(placeID int64) string {
	if placeID > 0 {
		return fmt.Sprintf("geo-%d", placeID)
	}
	return "geo-" + uuid.NewString()
}
