package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.MongoURI == "" {
		t.Fatalf("expected default mongo uri")
	}
	if cfg.MongoDB != "wanderwise" {
		t.Fatalf("expected default database name")
	}
	if cfg.GoogleCertsURL == "" {
		t.Fatalf("expected default certs url")
	}
}

func TestLoadAPIKeysFromEnvOnly(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("RAPIDAPI_KEY", "")

	cfg := Load()
	if cfg.OpenWeatherAPIKey != "" || cfg.RapidAPIKey != "" {
		t.Fatalf("expected empty api keys without env values, got %+v", cfg)
	}

	t.Setenv("OPENWEATHER_API_KEY", "ow-key")
	t.Setenv("RAPIDAPI_KEY", "rapid-key")

	cfg = Load()
	if cfg.OpenWeatherAPIKey != "ow-key" || cfg.RapidAPIKey != "rapid-key" {
		t.Fatalf("expected env-supplied api keys, got %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("MONGO_URI", "mongodb://example:27017")
	t.Setenv("FIREBASE_PROJECT_ID", "wanderwise-prod")
	t.Setenv("OPENWEATHER_API_KEY", "ow-key")
	t.Setenv("RAPIDAPI_KEY", "rapid-key")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.MongoURI != "mongodb://example:27017" {
		t.Fatalf("expected override mongo uri")
	}
	if cfg.FirebaseProjectID != "wanderwise-prod" {
		t.Fatalf("expected override project id")
	}
	if cfg.OpenWeatherAPIKey != "ow-key" || cfg.RapidAPIKey != "rapid-key" {
		t.Fatalf("expected override api keys")
	}
}

func TestOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: "http://localhost:5173, https://wanderwise.app ,"}
	origins := cfg.Origins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(origins))
	}
	if origins[1] != "https://wanderwise.app" {
		t.Fatalf("expected trimmed origin")
	}
}
