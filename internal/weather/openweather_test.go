package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const parisWeather = `{
	"name": "Paris",
	"sys": {"country": "FR"},
	"main": {"temp": 18.6, "humidity": 63},
	"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
	"wind": {"speed": 4.1},
	"coord": {"lat": 48.8566, "lon": 2.3522}
}`

func weatherServer(t *testing.T, hits *int, status int, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("units") != "metric" || q.Get("appid") != "test-key" {
			t.Errorf("unexpected query %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestByCityMapsResponse(t *testing.T) {
	hits := 0
	srv := weatherServer(t, &hits, http.StatusOK, parisWeather)
	ow := NewOpenWeather(srv.URL, "test-key")

	report, err := ow.ByCity(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("by city: %v", err)
	}
	if report.City != "Paris" || report.Country != "FR" {
		t.Fatalf("unexpected location: %+v", report)
	}
	if report.Temperature != 19 {
		t.Fatalf("expected rounded temperature 19, got %d", report.Temperature)
	}
	if report.Condition != "Clouds" || report.Description != "scattered clouds" || report.Icon != "03d" {
		t.Fatalf("unexpected weather block: %+v", report)
	}
	if report.Coordinates.Lat != 48.8566 || report.Coordinates.Lng != 2.3522 {
		t.Fatalf("unexpected coordinates: %+v", report.Coordinates)
	}
}

func TestByCityNotFound(t *testing.T) {
	hits := 0
	srv := weatherServer(t, &hits, http.StatusNotFound, `{"cod":"404","message":"city not found"}`)
	ow := NewOpenWeather(srv.URL, "test-key")

	if _, err := ow.ByCity(context.Background(), "Nowhereville"); !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestByCoordinatesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "48.8566" || q.Get("lon") != "2.3522" {
			t.Errorf("unexpected coordinates %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, parisWeather)
	}))
	defer srv.Close()
	ow := NewOpenWeather(srv.URL, "test-key")

	if _, err := ow.ByCoordinates(context.Background(), 48.8566, 2.3522); err != nil {
		t.Fatalf("by coordinates: %v", err)
	}
}

func TestUpstreamFailure(t *testing.T) {
	hits := 0
	srv := weatherServer(t, &hits, http.StatusInternalServerError, `{"cod":"500"}`)
	ow := NewOpenWeather(srv.URL, "test-key")

	_, err := ow.ByCity(context.Background(), "Paris")
	if err == nil || errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected generic failure, got %v", err)
	}
}
