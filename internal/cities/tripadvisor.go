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

var ErrCityNotFound = errors.New("city not found")

const maxAttractions = 8

// tripAdvisorLocation is the resolved destination from the location search.
type tripAdvisorLocation struct {
	ID      string
	Name    string
	Country string
}

type TripAdvisorClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTripAdvisor(baseURL, apiKey string) *TripAdvisorClient {
	return &TripAdvisorClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type locationSearchResponse struct {
	Data []struct {
		ResultObject struct {
			LocationID string `json:"location_id"`
			Name       string `json:"name"`
			Country    string `json:"country"`
		} `json:"result_object"`
	} `json:"data"`
}

// resolve maps a free-text city name onto a provider location id. A miss is
// ErrCityNotFound; the caller decides whether to retry with a reworded name.
func (c *TripAdvisorClient) resolve(ctx context.Context, city string) (tripAdvisorLocation, error) {
	params := url.Values{}
	params.Set("query", city)
	params.Set("limit", "1")
	params.Set("offset", "0")
	params.Set("units", "km")
	params.Set("currency", "USD")
	params.Set("sort", "relevance")
	params.Set("lang", "en_US")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/locations/search?"+params.Encode(), nil)
	if err != nil {
		return tripAdvisorLocation{}, err
	}
	c.setRapidAPIHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tripAdvisorLocation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return tripAdvisorLocation{}, fmt.Errorf("tripadvisor error (%d): %s", resp.StatusCode, string(body))
	}

	var out locationSearchResponse
	if err := decodeJSON(resp.Body, &out); err != nil {
		return tripAdvisorLocation{}, fmt.Errorf("parse location search: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].ResultObject.LocationID == "" {
		return tripAdvisorLocation{}, ErrCityNotFound
	}

	ro := out.Data[0].ResultObject
	return tripAdvisorLocation{ID: ro.LocationID, Name: ro.Name, Country: ro.Country}, nil
}

type attractionsResponse struct {
	Data []struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Photo   *struct {
			Images struct {
				Small struct {
					URL string `json:"url"`
				} `json:"small"`
			} `json:"images"`
		} `json:"photo"`
		Description string `json:"description"`
		Rating      string `json:"rating"`
	} `json:"data"`
}

// attractions keeps only entries carrying both a name and a photo and caps
// the list, matching what the planner view can actually render.
func (c *TripAdvisorClient) attractions(ctx context.Context, locationID string) ([]Attraction, error) {
	params := url.Values{}
	params.Set("location_id", locationID)
	params.Set("currency", "USD")
	params.Set("lang", "en_US")
	params.Set("lunit", "km")
	params.Set("sort", "recommended")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/attractions/list?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	c.setRapidAPIHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tripadvisor error (%d): %s", resp.StatusCode, string(body))
	}

	var out attractionsResponse
	if err := decodeJSON(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("parse attractions: %w", err)
	}

	results := []Attraction{}
	for _, item := range out.Data {
		if item.Name == "" || item.Photo == nil {
			continue
		}
		results = append(results, Attraction{
			Name:        item.Name,
			Address:     item.Address,
			Photo:       item.Photo.Images.Small.URL,
			Description: item.Description,
			Rating:      item.Rating,
		})
		if len(results) == maxAttractions {
			break
		}
	}
	return results, nil
}

func (c *TripAdvisorClient) setRapidAPIHeaders(req *http.Request) {
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", req.URL.Host)
}
