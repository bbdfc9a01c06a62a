package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type UpsApiConfig struct {
	BaseUri      string
	ClientId     string
	ClientSecret string
}

// Enabled reports whether UPS credentials are configured.
func (c *UpsApiConfig) Enabled() bool {
	return c != nil && c.BaseUri != "" && c.ClientId != "" && c.ClientSecret != ""
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	CookieName string
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

type Config struct {
	DSN              string
	HTTPPort         string
	LogsDirectory    string
	LogLevel         string
	UploadsDirectory string
	MaxUploadBytes   int64
	CORSOrigins      []string
	TrackingSchedule string
	OCRSchedule      string
	Auth             *AuthConfig
	RateLimit        *RateLimitConfig
	UPSApi           *UpsApiConfig
}

// LoadConfig reads the process configuration once at startup.
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		DSN:              os.Getenv("DATABASE_DSN"),
		HTTPPort:         envString("HTTP_PORT", "3000"),
		LogsDirectory:    os.Getenv("LOGS_DIRECTORY"),
		LogLevel:         envString("LOG_LEVEL", "info"),
		UploadsDirectory: envString("UPLOADS_DIRECTORY", "./uploads"),
		MaxUploadBytes:   int64(envInt("MAX_UPLOAD_MB", 10)) << 20,
		CORSOrigins:      envList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		TrackingSchedule: envString("TRACKING_SCHEDULE", "*/30 * * * *"),
		OCRSchedule:      envString("OCR_SCHEDULE", "*/5 * * * *"),
		Auth: &AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenTTL:   envDuration("JWT_TTL", 24*time.Hour),
			CookieName: envString("AUTH_COOKIE_NAME", "access_token"),
		},
		RateLimit: &RateLimitConfig{
			RequestsPerSecond: envInt("RATE_LIMIT_RPS", 20),
			Burst:             envInt("RATE_LIMIT_BURST", 40),
		},
		UPSApi: &UpsApiConfig{
			BaseUri:      os.Getenv("UPS_API_BASE_URI"),
			ClientId:     os.Getenv("UPS_API_CLIENT_ID"),
			ClientSecret: os.Getenv("UPS_API_CLIENT_SECRET"),
		},
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if c.DSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if c.Auth == nil || c.Auth.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}

func envString(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envList(name string, fallback []string) []string {
	var out []string
	for _, value := range strings.Split(os.Getenv(name), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
