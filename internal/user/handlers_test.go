package user

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend-wanderwise/internal/auth"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

func newProfileApp(store Store, claims auth.Claims) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/users"), NewService(store), auth.WithClaims(claims))
	return app
}

func verifiedClaims() auth.Claims {
	return auth.Claims{
		UID:           "uid-1",
		Email:         "traveler@example.com",
		EmailVerified: true,
		Name:          "Traveler",
		Picture:       "https://example.com/me.png",
	}
}

func TestGetProfileNotFound(t *testing.T) {
	app := newProfileApp(newFakeStore(), verifiedClaims())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/profile", nil))
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v %d", err, resp.StatusCode)
	}
}

func TestGetProfileUnverifiedEmail(t *testing.T) {
	store := newFakeStore()
	store.users["uid-1"] = User{FirebaseUID: "uid-1", DisplayName: "Traveler"}

	claims := verifiedClaims()
	claims.EmailVerified = false
	app := newProfileApp(store, claims)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/profile", nil))
	if err != nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %v %d", err, resp.StatusCode)
	}
}

func TestGetProfileOK(t *testing.T) {
	store := newFakeStore()
	store.users["uid-1"] = User{ID: "rec-1", FirebaseUID: "uid-1", DisplayName: "Traveler"}
	app := newProfileApp(store, verifiedClaims())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/profile", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %v %d", err, resp.StatusCode)
	}

	var u User
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.ID != "rec-1" {
		t.Fatalf("unexpected profile: %+v", u)
	}
}

func TestCreateProfileFillsFromClaims(t *testing.T) {
	store := newFakeStore()
	app := newProfileApp(store, verifiedClaims())

	req := httptest.NewRequest(http.MethodPost, "/users/profile", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %v %d", err, resp.StatusCode)
	}

	created := store.users["uid-1"]
	if created.Email != "traveler@example.com" || created.DisplayName != "Traveler" {
		t.Fatalf("expected claim-filled profile, got %+v", created)
	}
	if created.PhotoURL != "https://example.com/me.png" {
		t.Fatalf("expected claim-filled photo url")
	}
}

func TestCreateProfileBodyWins(t *testing.T) {
	store := newFakeStore()
	app := newProfileApp(store, verifiedClaims())

	payload := []byte(`{"displayName":"Explicit Name","email":"explicit@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %v %d", err, resp.StatusCode)
	}

	created := store.users["uid-1"]
	if created.Email != "explicit@example.com" || created.DisplayName != "Explicit Name" {
		t.Fatalf("expected body fields to win, got %+v", created)
	}
}

func TestCreateProfileAlreadyExists(t *testing.T) {
	store := newFakeStore()
	store.users["uid-1"] = User{FirebaseUID: "uid-1"}
	app := newProfileApp(store, verifiedClaims())

	req := httptest.NewRequest(http.MethodPost, "/users/profile", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v %d", err, resp.StatusCode)
	}
}

func TestUpdateProfilePartialBody(t *testing.T) {
	store := newFakeStore()
	store.users["uid-1"] = User{FirebaseUID: "uid-1", DisplayName: "Old", Location: "Berlin"}
	app := newProfileApp(store, verifiedClaims())

	payload := []byte(`{"bio":"world wanderer"}`)
	req := httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %v %d", err, resp.StatusCode)
	}

	updated := store.users["uid-1"]
	if updated.Bio != "world wanderer" || updated.Location != "Berlin" || updated.DisplayName != "Old" {
		t.Fatalf("expected partial update, got %+v", updated)
	}
}

func TestUpdateProfileNotFoundStatus(t *testing.T) {
	app := newProfileApp(newFakeStore(), verifiedClaims())

	req := httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewReader([]byte(`{"bio":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v %d", err, resp.StatusCode)
	}
}
