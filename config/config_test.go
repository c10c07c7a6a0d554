package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_TYPE", "SOURCE_URL", "HTTP_TIMEOUT", "INGEST_TIMEOUT", "CORS_ORIGINS", "LOG_LEVEL", "APP_ENV"} {
		t.Setenv(k, "")
	}

	c := FromEnv()

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, StoragePostgres, c.StorageType)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/posts", c.SourceURL)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, 30*time.Second, c.IngestTimeout)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "MEMORY")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("INGEST_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://blog.example.com,")

	c := FromEnv()

	assert.Equal(t, StorageMemory, c.StorageType)
	assert.Equal(t, 2*time.Second, c.HTTPTimeout)
	assert.Equal(t, 30*time.Second, c.IngestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://blog.example.com"}, c.CORSOrigins)
}

func TestActiveWebhookSecret(t *testing.T) {
	c := Config{WebhookSecret: "dev", WebhookSecretProd: "prod"}
	assert.Equal(t, "dev", c.ActiveWebhookSecret())

	c.AppEnv = "production"
	assert.Equal(t, "prod", c.ActiveWebhookSecret())
}

func TestValidate(t *testing.T) {
	c := Config{StorageType: StoragePostgres, JWTSecret: "s"}
	assert.Error(t, c.Validate())

	c.DBURL = "postgres://localhost/blog"
	assert.NoError(t, c.Validate())

	c = Config{StorageType: StorageMemory}
	assert.Error(t, c.Validate(), "JWT secret is required")

	c.JWTSecret = "s"
	assert.NoError(t, c.Validate())

	c.StorageType = "sqlite"
	assert.Error(t, c.Validate())
}
