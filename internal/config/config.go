package config

import (
	"os"
	"time"
)

// Config is read once from the environment at startup.
type Config struct {
	// APIBaseURL is the remote store backend.
	APIBaseURL string
	// ListenAddr is where the payment return listener serves.
	ListenAddr      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		APIBaseURL:      getEnv("STOREFRONT_API_URL", "http://localhost:3000"),
		ListenAddr:      getEnv("STOREFRONT_LISTEN_ADDR", ":8080"),
		RequestTimeout:  getDuration("STOREFRONT_REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("STOREFRONT_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
