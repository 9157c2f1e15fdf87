package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	MongoURI          string `mapstructure:"MONGO_URI"`
	MongoDB           string `mapstructure:"MONGO_DB"`
	FirebaseProjectID string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleCertsURL    string `mapstructure:"GOOGLE_CERTS_URL"`
	OpenWeatherAPIKey string `mapstructure:"OPENWEATHER_API_KEY"`
	RapidAPIKey       string `mapstructure:"RAPIDAPI_KEY"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "wanderwise")
	viper.SetDefault("FIREBASE_PROJECT_ID", "wanderwise-dev")
	viper.SetDefault("GOOGLE_CERTS_URL", "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com")
	// Empty defaults keep the key registered with viper; keys absent from
	// AllKeys are skipped by Unmarshal even with AutomaticEnv on.
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("RAPIDAPI_KEY", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// Origins returns the allowed CORS origins as a slice.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
