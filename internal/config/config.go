// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ventoryhq/ventory/internal/auth"
)

// Auth modes accepted by AUTH_MODE.
const (
	// AuthModeOpen issues a token for any submitted email without a
	// credential check. Development and internal deployments only.
	AuthModeOpen = "open"
	// AuthModePassword requires registration and bcrypt password
	// verification before a token is issued.
	AuthModePassword = "password"
)

// Config holds all runtime settings. Values are injected into constructors;
// nothing reads the environment after startup.
type Config struct {
	// HTTPAddr is the listen address, e.g. ":5000".
	HTTPAddr string

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs and verifies identity tokens. Required.
	JWTSecret string

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration

	// AuthMode selects the authenticator: AuthModeOpen or AuthModePassword.
	AuthMode string

	// EnforceOwnership rejects quantity updates and deletes on items the
	// caller does not own. Off by default, matching the service's original
	// any-authenticated-caller behavior.
	EnforceOwnership bool

	// CORSOrigins lists allowed CORS origins. Defaults to allowing all.
	CORSOrigins []string
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything except JWT_SECRET, which must be set.
//
//	HTTP_ADDR          listen address         (default ":5000")
//	DB_PATH            sqlite file path       (default "./data/ventory.db")
//	JWT_SECRET         token signing secret   (required)
//	TOKEN_TTL          token validity window  (default "1h")
//	AUTH_MODE          "open" or "password"   (default "open")
//	ENFORCE_OWNERSHIP  "true" to enable       (default "false")
//	CORS_ORIGINS       comma-separated list   (default "*")
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
		DBPath:   getEnv("DB_PATH", "./data/ventory.db"),
		AuthMode: getEnv("AUTH_MODE", AuthModeOpen),
		TokenTTL: auth.DefaultTokenDuration,
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.AuthMode != AuthModeOpen && cfg.AuthMode != AuthModePassword {
		return nil, fmt.Errorf("invalid AUTH_MODE %q: want %q or %q", cfg.AuthMode, AuthModeOpen, AuthModePassword)
	}

	if v := os.Getenv("ENFORCE_OWNERSHIP"); v != "" {
		enforce, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ENFORCE_OWNERSHIP %q: %w", v, err)
		}
		cfg.EnforceOwnership = enforce
	}

	cfg.CORSOrigins = []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
