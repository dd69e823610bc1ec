package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/portfolio", cfg.MongoURI)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db:27017/site")
	t.Setenv("ALLOWED_ORIGINS", "https://example.com, https://www.example.com")
	t.Setenv("ENV", "Production")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017/site", cfg.MongoURI)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestMongoURIFallback(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://fallback:27017/x")

	cfg := Load()
	assert.Equal(t, "mongodb://fallback:27017/x", cfg.MongoURI)
}
