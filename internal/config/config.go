package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultServerAddr  = ":8080"
	defaultDatabaseDSN = "six-cities.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"

	defaultBaseURL = "http://localhost:8080/six-cities"
	defaultTimeout = "5s"
)

// ServerConfig configures the development API stub.
type ServerConfig struct {
	Addr        string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
}

// ClientConfig configures the transport client of the state engine.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	TokenFile string
}

func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:        getEnv("SERVER_ADDR", defaultServerAddr),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDatabaseDSN),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{
		BaseURL:   getEnv("API_BASE_URL", defaultBaseURL),
		TokenFile: os.Getenv("TOKEN_FILE"),
	}

	var err error
	cfg.Timeout, err = parseDurationEnv("API_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
