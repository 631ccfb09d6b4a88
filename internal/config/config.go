package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Upstream   UpstreamConfig
	Routing    RoutingConfig
	Backfill   BackfillConfig
	Directory  DirectoryConfig
	Attendance AttendanceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// UpstreamConfig holds the backend API configuration
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RoutingConfig holds the routing provider configuration
type RoutingConfig struct {
	TokenURL      string
	DirectionsURL string
	ClientID      string
	ClientSecret  string
	RatePerSec    float64
}

// BackfillConfig bounds the distance back-fill workers
type BackfillConfig struct {
	MaxConcurrentDays int
}

// DirectoryConfig controls the employee directory cache refresh
type DirectoryConfig struct {
	RefreshInterval time.Duration
}

// AttendanceConfig controls day classification for visit reports
type AttendanceConfig struct {
	IncludeSundays bool
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Upstream backend configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: strings.TrimSuffix(getEnv("UPSTREAM_BASE_URL", ""), "/"),
		Timeout: upstreamTimeout,
	}

	// Routing provider configuration
	routingRate, err := strconv.ParseFloat(getEnv("ROUTING_RATE_PER_SEC", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ROUTING_RATE_PER_SEC: %w", err)
	}

	config.Routing = RoutingConfig{
		TokenURL:      getEnv("ROUTING_TOKEN_URL", ""),
		DirectionsURL: getEnv("ROUTING_DIRECTIONS_URL", ""),
		ClientID:      getEnv("ROUTING_CLIENT_ID", ""),
		ClientSecret:  getEnv("ROUTING_CLIENT_SECRET", ""),
		RatePerSec:    routingRate,
	}

	// Back-fill configuration
	maxDays, err := strconv.Atoi(getEnv("BACKFILL_MAX_CONCURRENT_DAYS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKFILL_MAX_CONCURRENT_DAYS: %w", err)
	}

	config.Backfill = BackfillConfig{
		MaxConcurrentDays: maxDays,
	}

	// Directory cache configuration
	refreshInterval, err := time.ParseDuration(getEnv("DIRECTORY_REFRESH_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_REFRESH_INTERVAL: %w", err)
	}

	config.Directory = DirectoryConfig{
		RefreshInterval: refreshInterval,
	}

	// Attendance classification configuration
	includeSundays, err := strconv.ParseBool(getEnv("ATTENDANCE_INCLUDE_SUNDAYS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_INCLUDE_SUNDAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		IncludeSundays: includeSundays,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.Routing.TokenURL == "" {
		return fmt.Errorf("ROUTING_TOKEN_URL is required")
	}
	if c.Routing.DirectionsURL == "" {
		return fmt.Errorf("ROUTING_DIRECTIONS_URL is required")
	}
	if c.Routing.ClientID == "" {
		return fmt.Errorf("ROUTING_CLIENT_ID is required")
	}
	if c.Routing.ClientSecret == "" {
		return fmt.Errorf("ROUTING_CLIENT_SECRET is required")
	}
	if c.Backfill.MaxConcurrentDays < 1 {
		return fmt.Errorf("BACKFILL_MAX_CONCURRENT_DAYS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
