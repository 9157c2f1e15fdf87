package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchCitiesDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cities/search" || r.URL.Query().Get("q") != "paris" {
			t.Errorf("unexpected request %s %s", r.URL.Path, r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("search must be unauthenticated")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":1,"name":"Paris","country":"France","countryCode":"FR"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	cities, err := c.SearchCities(context.Background(), "paris")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(cities) != 1 || cities[0].Name != "Paris" {
		t.Fatalf("unexpected cities: %+v", cities)
	}
}

func TestTripsSendBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer id-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(func(context.Context) (string, error) {
		return "id-token", nil
	}))
	if _, err := c.Trips(context.Background()); err != nil {
		t.Fatalf("trips: %v", err)
	}
}

func TestTokenSourceFailure(t *testing.T) {
	c := New("http://unused", WithTokenSource(func(context.Context) (string, error) {
		return "", errors.New("not signed in")
	}))
	if _, err := c.Trips(context.Background()); err == nil {
		t.Fatalf("expected token source error")
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Trip not found"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Trip(context.Background(), "missing")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Trip not found" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestAPIErrorPlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "missing or invalid token")
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Health(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "missing or invalid token" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestCreateTripRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/trips" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing content type")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"t-1","title":"Paris Trip","status":"planned"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(func(context.Context) (string, error) { return "id-token", nil }))
	created, err := c.CreateTrip(context.Background(), Trip{Title: "Paris Trip"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "t-1" || created.Status != "planned" {
		t.Fatalf("unexpected trip: %+v", created)
	}
}

func TestDeleteTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/trips/t-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":"Trip deleted successfully"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteTrip(context.Background(), "t-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
