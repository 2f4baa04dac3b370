package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultSecret = "your-secret-key-change-in-production"

type Config struct {
	MongoURL  string
	DBName    string
	JWTSecret string
	TokenTTL  time.Duration

	Port        string
	CORSOrigins []string

	MetricsUser string
	MetricsPass string

	// CatchAuthOptional switches the catch routes onto optional
	// authentication. Catch operations are owner-scoped, so requests
	// without a bearer identity are still rejected by the handlers.
	CatchAuthOptional bool
}

func Load() (*Config, error) {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL environment variable is not set")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME environment variable is not set")
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Println("JWT_SECRET_KEY not set, using insecure default")
		secret = defaultSecret
	}

	ttl := 7 * 24 * time.Hour
	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		ttl = parsed
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	catchAuthOptional := false
	if raw := os.Getenv("CATCH_AUTH_OPTIONAL"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CATCH_AUTH_OPTIONAL: %w", err)
		}
		catchAuthOptional = parsed
	}

	return &Config{
		MongoURL:          mongoURL,
		DBName:            dbName,
		JWTSecret:         secret,
		TokenTTL:          ttl,
		Port:              port,
		CORSOrigins:       origins,
		MetricsUser:       os.Getenv("METRICS_USER"),
		MetricsPass:       os.Getenv("METRICS_PASS"),
		CatchAuthOptional: catchAuthOptional,
	}, nil
}
