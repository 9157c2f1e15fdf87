package cities

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrRateLimited = errors.New("city search rate limited")

// GeoDBClient queries the GeoDB Cities API on RapidAPI. The base URL is a
// constructor parameter so tests can stand in a local server.
type GeoDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewGeoDB(baseURL, apiKey string) *GeoDBClient {
	return &GeoDBClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type geoDBResponse struct {
	Data []struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Country     string  `json:"country"`
		CountryCode string  `json:"countryCode"`
		Region      string  `json:"region"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Population  int     `json:"population"`
	} `json:"data"`
}

func (c *GeoDBClient) Search(ctx context.Context, query string) ([]City, error) {
	params := url.Values{}
	params.Set("namePrefix", query)
	params.Set("limit", "10")
	params.Set("offset", "0")
	params.Set("sort", "-population")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/geo/cities?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	c.setRapidAPIHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geodb error (%d): %s", resp.StatusCode, string(body))
	}

	var out geoDBResponse
	if err := decodeJSON(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("parse geodb response: %w", err)
	}

	results := make([]City, 0, len(out.Data))
	for _, d := range out.Data {
		results = append(results, City{
			ID:          d.ID,
			Name:        d.Name,
			Country:     d.Country,
			CountryCode: d.CountryCode,
			Region:      d.Region,
			Latitude:    d.Latitude,
			Longitude:   d.Longitude,
			Population:  d.Population,
		})
	}
	return results, nil
}

func (c *GeoDBClient) setRapidAPIHeaders(req *http.Request) {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", req.URL.Host)
}
