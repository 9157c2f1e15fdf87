package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

var ErrCityNotFound = errors.New("city not found")

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is the reshaped OpenWeather reading. Condition carries the coarse
// weather group (Clear, Rain, ...) that clients map onto icons and advice;
// description and icon are the provider's finer-grained pair.
type Report struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Temperature int         `json:"temperature"`
	Condition   string      `json:"condition"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Humidity    int         `json:"humidity"`
	WindSpeed   float64     `json:"windSpeed"`
	Coordinates Coordinates `json:"coordinates"`
}

type OpenWeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOpenWeather(baseURL, apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

func (c *OpenWeatherClient) ByCity(ctx context.Context, city string) (Report, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.fetch(ctx, params)
}

func (c *OpenWeatherClient) ByCoordinates(ctx context.Context, lat, lng float64) (Report, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	return c.fetch(ctx, params)
}

func (c *OpenWeatherClient) fetch(ctx context.Context, params url.Values) (Report, error) {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/data/2.5/weather?"+params.Encode(), nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Report{}, ErrCityNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Report{}, fmt.Errorf("openweather error (%d): %s", resp.StatusCode, string(body))
	}

	var out openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Report{}, fmt.Errorf("parse openweather response: %w", err)
	}
	if len(out.Weather) == 0 {
		return Report{}, fmt.Errorf("openweather response missing weather block")
	}

	return Report{
		City:        out.Name,
		Country:     out.Sys.Country,
		Temperature: int(math.Round(out.Main.Temp)),
		Condition:   out.Weather[0].Main,
		Description: out.Weather[0].Description,
		Icon:        out.Weather[0].Icon,
		Humidity:    out.Main.Humidity,
		WindSpeed:   out.Wind.Speed,
		Coordinates: Coordinates{Lat: out.Coord.Lat, Lng: out.Coord.Lon},
	}, nil
}
