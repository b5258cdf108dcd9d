package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"RELAY_URLS", "CACHE_TTL", "MAX_PAGES", "LOG_LEVEL", "MAX_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, []string{"direct"}, cfg.RelayURLs)
	assert.Equal(t, DEFAULT_CACHE_TTL, cfg.CacheTTL)
	assert.Equal(t, DEFAULT_MAX_PAGES, cfg.MaxPages)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RELAY_URLS", " https://relay.one/?url={url} , direct ,")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("MAX_PAGES", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_RETRIES", "not-a-number")

	cfg := Load()

	assert.Equal(t, []string{"https://relay.one/?url={url}", "direct"}, cfg.RelayURLs)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.MaxPages)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, DEFAULT_MAX_RETRIES, cfg.MaxRetries)
}
