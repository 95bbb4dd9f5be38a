package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the server settings read from the environment.
type Config struct {
	Port           string
	FrontendOrigin string
	CityDBPath     string
	// Optional; when set cities are read from Postgres instead of CityDBPath.
	DatabaseURL string

	LogLevel  string
	LogFormat string

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           Get("PORT", "8080"),
		FrontendOrigin: Get("FRONTEND_ORIGIN", "http://localhost:3000"),
		CityDBPath:     Get("CITY_DB_PATH", "data/citydb.json"),
		DatabaseURL:    Get("DATABASE_URL", ""),
		LogLevel:       Get("LOG_LEVEL", "info"),
		LogFormat:      Get("LOG_FORMAT", "json"),
	}

	n, err := strconv.Atoi(Get("RATE_LIMIT_REQUESTS", "120"))
	if err != nil || n < 1 {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_REQUESTS must be a positive integer")
	}
	cfg.RateLimitRequests = n

	window, err := time.ParseDuration(Get("RATE_LIMIT_WINDOW", "1m"))
	if err != nil || window <= 0 {
		return Config{}, fmt.Errorf("load config: RATE_LIMIT_WINDOW must be a positive duration")
	}
	cfg.RateLimitWindow = window

	return cfg, nil
}

// AllowedOrigins expands FrontendOrigin into the CORS origin list.
func (c Config) AllowedOrigins() []string {
	if c.FrontendOrigin == "*" {
		return []string{"*"}
	}

	var out []string
	for _, o := range strings.Split(c.FrontendOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
