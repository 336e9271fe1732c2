// Package config holds the library's runtime configuration. Values come
// from compiled defaults, optionally overridden by environment
// variables (and an optional .env file via Load).
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultProduct = "librequests"
	defaultVersion = "0.1"
)

// Config is the central typed configuration struct.
type Config struct {
	Client ClientConfig
	HTTP   HTTPConfig
}

// ClientConfig names the client for the User-Agent string.
type ClientConfig struct {
	Product string
	Version string
}

// HTTPConfig bounds the default engine and the response accumulator.
type HTTPConfig struct {
	// Timeout applies to the default engine's http.Client. Zero means
	// no timeout.
	Timeout time.Duration
	// MaxBodySize caps accumulated response bytes. Zero means unlimited.
	MaxBodySize int64
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			Product: defaultProduct,
			Version: defaultVersion,
		},
	}
}

// Load reads .env (if present) and populates a Config from environment
// variables, falling back to compiled defaults.
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist
	_ = godotenv.Load(files...)

	return &Config{
		Client: ClientConfig{
			Product: env("LIBREQUESTS_PRODUCT", defaultProduct),
			Version: env("LIBREQUESTS_VERSION", defaultVersion),
		},
		HTTP: HTTPConfig{
			Timeout:     envDuration("LIBREQUESTS_TIMEOUT", 0),
			MaxBodySize: envInt64("LIBREQUESTS_MAX_BODY_SIZE", 0),
		},
	}
}

func env(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func envInt64(key string, defaultVal int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}
