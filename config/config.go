package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port   string // e.g. "8080"
	AppEnv string // "production" switches the webhook secret

	StorageType string // postgres or memory
	DBURL       string

	JWTSecret         string
	WebhookSecret     string
	WebhookSecretProd string

	SourceURL     string        // upstream posts endpoint
	HTTPTimeout   time.Duration // upstream client timeout
	IngestTimeout time.Duration // whole ingestion run

	CORSOrigins []string
	LogLevel    string
	LogFile     string
}

// Load reads .env when present, then the environment.
func Load() Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	c := Config{}

	c.Port = getenv("PORT", "8080")
	c.AppEnv = getenv("APP_ENV", "development")

	c.StorageType = strings.ToLower(getenv("STORAGE_TYPE", StoragePostgres))
	c.DBURL = os.Getenv("DB_URL")

	c.JWTSecret = os.Getenv("JWT_SECRET")
	c.WebhookSecret = os.Getenv("WEBHOOK_SECRET")
	c.WebhookSecretProd = os.Getenv("WEBHOOK_SECRET_PROD")

	c.SourceURL = getenv("SOURCE_URL", "https://jsonplaceholder.typicode.com/posts")
	c.HTTPTimeout = getduration("HTTP_TIMEOUT", 10*time.Second)
	c.IngestTimeout = getduration("INGEST_TIMEOUT", 30*time.Second)

	c.CORSOrigins = splitList(getenv("CORS_ORIGINS", "*"))
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.LogFile = os.Getenv("LOG_FILE")

	return c
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ActiveWebhookSecret picks the production secret in production.
func (c Config) ActiveWebhookSecret() string {
	if c.IsProduction() {
		return c.WebhookSecretProd
	}
	return c.WebhookSecret
}

func (c Config) Validate() error {
	switch c.StorageType {
	case StoragePostgres:
		if c.DBURL == "" {
			return errors.New("DB_URL must be set when STORAGE_TYPE is postgres")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.StorageType)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
