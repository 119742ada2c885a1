package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultRatesAPIURL       = "https://open.er-api.com/v6/latest"
	defaultRatesFetchTimeout = 8 * time.Second
	minRatesFetchTimeout     = 5 * time.Second
	maxRatesFetchTimeout     = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Quote service
	RatesAPIURL       string
	RatesFetchTimeout time.Duration
	RatesMaxRPS       float64
	RatesBurst        int

	// Inbound API throttling, ulule/limiter format (e.g. "120-M")
	APIRateLimit string

	// Per-connection throttling of live session messages; non-positive disables it
	SessionMessageRPS   float64
	SessionMessageBurst int

	FrontendBaseURL string

	PosthogAPIKey   string
	PosthogEndpoint string

	// Optional YAML catalog replacing the embedded one
	CatalogFile string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Values from .env are now in the process environment; real environment variables win.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATES_API_URL", defaultRatesAPIURL)
	v.SetDefault("RATES_FETCH_TIMEOUT", defaultRatesFetchTimeout.String())
	v.SetDefault("RATES_MAX_RPS", 5.0)
	v.SetDefault("RATES_BURST", 5)
	v.SetDefault("API_RATE_LIMIT", "120-M")
	v.SetDefault("SESSION_MESSAGE_RPS", 2.0)
	v.SetDefault("SESSION_MESSAGE_BURST", 5)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("CATALOG_FILE", "")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.RatesAPIURL = v.GetString("RATES_API_URL")
	if cfg.RatesAPIURL == "" {
		cfg.RatesAPIURL = defaultRatesAPIURL
		log.Printf("Warning: RATES_API_URL is empty. Defaulting to %s.\n", cfg.RatesAPIURL)
	}

	// Load fetch timeout (e.g., "8s"); kept inside a 5-10s window
	timeoutStr := v.GetString("RATES_FETCH_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = defaultRatesFetchTimeout
		log.Printf("Warning: Invalid value for RATES_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	if timeout < minRatesFetchTimeout || timeout > maxRatesFetchTimeout {
		clamped := clampDuration(timeout, minRatesFetchTimeout, maxRatesFetchTimeout)
		log.Printf("Warning: RATES_FETCH_TIMEOUT %s outside [%s, %s]. Using %s.\n", timeout, minRatesFetchTimeout, maxRatesFetchTimeout, clamped)
		timeout = clamped
	}
	cfg.RatesFetchTimeout = timeout

	cfg.RatesMaxRPS = v.GetFloat64("RATES_MAX_RPS")
	cfg.RatesBurst = v.GetInt("RATES_BURST")
	if cfg.RatesBurst < 1 {
		cfg.RatesBurst = 1
	}

	cfg.APIRateLimit = v.GetString("API_RATE_LIMIT")

	cfg.SessionMessageRPS = v.GetFloat64("SESSION_MESSAGE_RPS")
	cfg.SessionMessageBurst = v.GetInt("SESSION_MESSAGE_BURST")
	if cfg.SessionMessageBurst < 1 {
		cfg.SessionMessageBurst = 1
	}
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics events will not be sent.")
	}

	cfg.CatalogFile = v.GetString("CATALOG_FILE")

	return cfg
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
