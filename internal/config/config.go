package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Geofence  GeofenceConfig
	Integrity IntegrityConfig
	Admin     AdminConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
	Timezone    *time.Location
}

// GeofenceConfig is the office location and the allowed check-in radius.
// It is read once at startup and never changes while the process runs.
type GeofenceConfig struct {
	OfficeLatitude  float64
	OfficeLongitude float64
	RadiusMeters    float64
}

// IntegrityConfig tunes the duplicate device detector and its sweep job.
type IntegrityConfig struct {
	FetchTimeout   time.Duration
	MaxConcurrency int
	SweepInterval  time.Duration
}

// AdminConfig is the bootstrap dashboard account. Seeding is skipped when
// Password is empty.
type AdminConfig struct {
	Name     string
	Username string
	Email    string
	Password string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	} else if err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "magang_absensi"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	tz, err := time.LoadLocation(getEnv("APP_TIMEZONE", "Asia/Makassar"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Timezone:    tz,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	// Geofence configuration
	officeLat, err := getEnvFloat("OFFICE_LATITUDE", -3.3089332)
	if err != nil {
		return nil, err
	}
	officeLon, err := getEnvFloat("OFFICE_LONGITUDE", 114.613662)
	if err != nil {
		return nil, err
	}
	radius, err := getEnvFloat("GEOFENCE_RADIUS_METERS", 100)
	if err != nil {
		return nil, err
	}

	config.Geofence = GeofenceConfig{
		OfficeLatitude:  officeLat,
		OfficeLongitude: officeLon,
		RadiusMeters:    radius,
	}

	// Integrity configuration
	fetchTimeout, err := time.ParseDuration(getEnv("DUPLICATE_FETCH_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DUPLICATE_FETCH_TIMEOUT: %w", err)
	}
	maxConcurrency, err := strconv.Atoi(getEnv("DUPLICATE_MAX_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid DUPLICATE_MAX_CONCURRENCY: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("INTEGRITY_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid INTEGRITY_SWEEP_INTERVAL: %w", err)
	}

	config.Integrity = IntegrityConfig{
		FetchTimeout:   fetchTimeout,
		MaxConcurrency: maxConcurrency,
		SweepInterval:  sweepInterval,
	}

	// Bootstrap admin
	config.Admin = AdminConfig{
		Name:     getEnv("ADMIN_NAME", "Administrator"),
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Email:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		Password: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME is invalid: %w", err)
	}
	if c.Geofence.OfficeLatitude < -90 || c.Geofence.OfficeLatitude > 90 {
		return fmt.Errorf("OFFICE_LATITUDE must be between -90 and 90")
	}
	if c.Geofence.OfficeLongitude < -180 || c.Geofence.OfficeLongitude > 180 {
		return fmt.Errorf("OFFICE_LONGITUDE must be between -180 and 180")
	}
	if math.IsNaN(c.Geofence.RadiusMeters) || c.Geofence.RadiusMeters < 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must not be negative")
	}
	if c.Integrity.FetchTimeout <= 0 {
		return fmt.Errorf("DUPLICATE_FETCH_TIMEOUT must be positive")
	}
	if c.Integrity.MaxConcurrency <= 0 {
		return fmt.Errorf("DUPLICATE_MAX_CONCURRENCY must be positive")
	}
	if c.Integrity.SweepInterval <= 0 {
		return fmt.Errorf("INTEGRITY_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
