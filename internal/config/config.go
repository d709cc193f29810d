package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Admin        AdminConfig
	Notification NotificationConfig
	Calendarific CalendarificConfig
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
	Port               int
	Env                string
	LogLevel           string
	Name               string
	URL                string
	Timezone           string
	CORSAllowedOrigins []string
}

// AdminConfig holds the bcrypt hash of the admin PIN
type AdminConfig struct {
	PINHash string
}

type NotificationConfig struct {
	CheckInterval  time.Duration
	WebhookTimeout time.Duration
}

// CalendarificConfig holds the public holiday API settings.
// An empty APIKey leaves the cached and built-in holiday lists in use.
type CalendarificConfig struct {
	APIKey  string
	BaseURL string
	Country string
	Timeout time.Duration
}

func Load() (*Config, error) {
	// .env is optional in containers where the environment is injected
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
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
		Name:     getEnv("DB_NAME", "paracal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3001"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Name:               getEnv("APP_NAME", "paracal"),
		URL:                getEnv("APP_URL", "http://localhost:3000"),
		Timezone:           getEnv("APP_TIMEZONE", "Asia/Bangkok"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Admin = AdminConfig{
		PINHash: getEnv("ADMIN_PIN_HASH", ""),
	}

	checkInterval, err := time.ParseDuration(getEnv("NOTIFICATION_CHECK_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_CHECK_INTERVAL: %w", err)
	}
	webhookTimeout, err := time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_TIMEOUT: %w", err)
	}

	config.Notification = NotificationConfig{
		CheckInterval:  checkInterval,
		WebhookTimeout: webhookTimeout,
	}

	calendarificTimeout, err := time.ParseDuration(getEnv("CALENDARIFIC_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDARIFIC_TIMEOUT: %w", err)
	}

	config.Calendarific = CalendarificConfig{
		APIKey:  getEnv("CALENDARIFIC_API_KEY", ""),
		BaseURL: getEnv("CALENDARIFIC_BASE_URL", "https://calendarific.com/api/v2"),
		Country: getEnv("CALENDARIFIC_COUNTRY", "TH"),
		Timeout: calendarificTimeout,
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
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Admin.PINHash == "" {
		return fmt.Errorf("ADMIN_PIN_HASH is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	if c.Notification.CheckInterval <= 0 {
		return fmt.Errorf("NOTIFICATION_CHECK_INTERVAL must be positive")
	}
	if c.Calendarific.Timeout <= 0 {
		return fmt.Errorf("CALENDARIFIC_TIMEOUT must be positive")
	}
	return nil
}

// Location returns the time zone used for "today" and schedule checks.
// Validate guarantees the name resolves.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
