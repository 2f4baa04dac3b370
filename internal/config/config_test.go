package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "carplog")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("CATCH_AUTH_OPTIONAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "carplog", cfg.DBName)
	assert.Equal(t, defaultSecret, cfg.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.CatchAuthOptional)
}

func TestLoad_MissingMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "carplog")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "carplog")
	t.Setenv("ACCESS_TOKEN_TTL", "24h")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CATCH_AUTH_OPTIONAL", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.CatchAuthOptional)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "carplog")
	t.Setenv("ACCESS_TOKEN_TTL", "next-week")

	_, err := Load()
	assert.Error(t, err)
}
