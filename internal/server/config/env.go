package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS                   full bind address (e.g., ":5000")
//	PORT                      port only, kept for parity with the web
//	                          client's expectations; ADDRESS wins if both set
//	DATABASE_DSN              PostgreSQL DSN
//	JWT_SECRET                JWT HMAC secret key
//	SESSION_TTL               token/session lifetime (time.ParseDuration)
//	SESSION_CLEANUP_INTERVAL  expired-session purge interval
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddr = ":" + v
	}
	if v, ok := os.LookupEnv("ADDRESS"); ok && v != "" {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("SESSION_TTL"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("SESSION_CLEANUP_INTERVAL"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionCleanupInterval = d
		}
	}
}
