package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"STOREFRONT_API_URL", "STOREFRONT_LISTEN_ADDR",
		"STOREFRONT_REQUEST_TIMEOUT", "STOREFRONT_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://api.example.com")
	t.Setenv("STOREFRONT_LISTEN_ADDR", ":9090")
	t.Setenv("STOREFRONT_REQUEST_TIMEOUT", "5s")
	t.Setenv("STOREFRONT_SHUTDOWN_TIMEOUT", "2s")

	cfg := Load()

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("STOREFRONT_REQUEST_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
