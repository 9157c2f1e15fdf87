// Package client is the Go counterpart of the WanderWise browser views: a
// typed API client plus the view-model logic the pages run on top of it.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// APIError is a non-2xx response decoded into its status and message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// TokenSource supplies the Firebase ID token attached to authenticated
// calls. A nil source leaves requests unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type City struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Population  int     `json:"population"`
}

type Attraction struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
}

type Insights struct {
	City            string       `json:"city"`
	Country         string       `json:"country"`
	MainAttractions []Attraction `json:"mainAttractions"`
	Tips            []string     `json:"tips"`
}

type Weather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature int     `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Destination struct {
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Trip struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Destination Destination `json:"destination"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Description string      `json:"description"`
	Notes       string      `json:"notes"`
	Budget      float64     `json:"budget"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type Profile struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	DisplayName       string   `json:"displayName"`
	PhotoURL          string   `json:"photoURL"`
	Bio               string   `json:"bio"`
	Location          string   `json:"location"`
	TravelPreferences []string `json:"travelPreferences"`
	Stats             struct {
		TripsPlanned     int `json:"tripsPlanned"`
		CitiesVisited    int `json:"citiesVisited"`
		CountriesVisited int `json:"countriesVisited"`
	} `json:"stats"`
}

func (c *Client) SearchCities(ctx context.Context, query string) ([]City, error) {
	var out []City
	err := c.do(ctx, http.MethodGet, "/api/cities/search?q="+url.QueryEscape(query), nil, false, &out)
	return out, err
}

func (c *Client) CityInsights(ctx context.Context, city string) (Insights, error) {
	var out Insights
	err := c.do(ctx, http.MethodGet, "/api/cities/insights?city="+url.QueryEscape(city), nil, false, &out)
	return out, err
}

// WeatherByCity accepts "Name" or "Name,CC"; the planner passes the country
// code along when the search result carries one.
func (c *Client) WeatherByCity(ctx context.Context, city string) (Weather, error) {
	var out Weather
	err := c.do(ctx, http.MethodGet, "/api/weather/city?city="+url.QueryEscape(city), nil, false, &out)
	return out, err
}

func (c *Client) CurrentWeather(ctx context.Context, lat, lng float64) (Weather, error) {
	var out Weather
	path := "/api/weather/current?lat=" + strconv.FormatFloat(lat, 'f', -1, 64) +
		"&lng=" + strconv.FormatFloat(lng, 'f', -1, 64)
	err := c.do(ctx, http.MethodGet, path, nil, false, &out)
	return out, err
}

func (c *Client) Trips(ctx context.Context) ([]Trip, error) {
	var out []Trip
	err := c.do(ctx, http.MethodGet, "/api/trips", nil, true, &out)
	return out, err
}

func (c *Client) Trip(ctx context.Context, id string) (Trip, error) {
	var out Trip
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(id), nil, true, &out)
	return out, err
}

func (c *Client) CreateTrip(ctx context.Context, trip Trip) (Trip, error) {
	var out Trip
	err := c.do(ctx, http.MethodPost, "/api/trips", trip, true, &out)
	return out, err
}

func (c *Client) UpdateTrip(ctx context.Context, id string, trip Trip) (Trip, error) {
	var out Trip
	err := c.do(ctx, http.MethodPut, "/api/trips/"+url.PathEscape(id), trip, true, &out)
	return out, err
}

func (c *Client) DeleteTrip(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/trips/"+url.PathEscape(id), nil, true, nil)
}

func (c *Client) Profile(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, true, &out)
	return out, err
}

func (c *Client) CreateProfile(ctx context.Context, profile Profile) (Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodPost, "/api/users/profile", profile, true, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, update map[string]any) (Profile, error) {
	var out Profile
	err := c.do(ctx, http.MethodPut, "/api/users/profile", update, true, &out)
	return out, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, false, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, authed bool, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return fmt.Errorf("token source: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// errorMessage pulls the message out of a JSON error body, falling back to
// the raw text the default fiber error handler writes.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return string(raw)
}
