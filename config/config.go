package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DEFAULT_CACHE_TTL       = 5 * time.Minute
	DEFAULT_MAX_PAGES       = 10
	DEFAULT_PAGE_SIZE       = 100
	DEFAULT_HTTP_TIMEOUT    = 15 * time.Second
	DEFAULT_MAX_RETRIES     = 3
	DEFAULT_INITIAL_BACKOFF = 2 * time.Second
	DEFAULT_MAX_BACKOFF     = 32 * time.Second
	DEFAULT_REPORT_TTL      = 24 * time.Hour
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// RelayURLs are tried in order after the OAuth adapter. The literal entry
	// "direct" stands for a plain request to the upstream API.
	RelayURLs          []string
	RedditClientID     string
	RedditClientSecret string
	RequestsPerSecond  float64
	HTTPTimeout        time.Duration

	MaxPages int
	PageSize int
	CacheTTL time.Duration

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool

	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	ReportTable string
	ReportTTL   time.Duration
	AWSEndpoint string
	AWSRegion   string
}

// Load reads the process environment. Call LoadEnv first to pick up the
// per-environment .env file.
func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getLevel("LOG_LEVEL", slog.LevelInfo),

		RelayURLs:          getList("RELAY_URLS", []string{"direct"}),
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		RequestsPerSecond:  getFloat("REQUESTS_PER_SECOND", 1),
		HTTPTimeout:        getDuration("HTTP_TIMEOUT", DEFAULT_HTTP_TIMEOUT),

		MaxPages: getInt("MAX_PAGES", DEFAULT_MAX_PAGES),
		PageSize: getInt("PAGE_SIZE", DEFAULT_PAGE_SIZE),
		CacheTTL: getDuration("CACHE_TTL", DEFAULT_CACHE_TTL),

		ValkeyAddress:  os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:      os.Getenv("VALKEY_TLS") == "true",

		MaxRetries:     getInt("MAX_RETRIES", DEFAULT_MAX_RETRIES),
		InitialBackoff: getDuration("INITIAL_BACKOFF", DEFAULT_INITIAL_BACKOFF),
		MaxBackoff:     getDuration("MAX_BACKOFF", DEFAULT_MAX_BACKOFF),

		ReportTable: os.Getenv("REPORT_TABLE"),
		ReportTTL:   getDuration("REPORT_TTL", DEFAULT_REPORT_TTL),
		AWSEndpoint: os.Getenv("AWS_ENDPOINT"),
		AWSRegion:   getEnv("AWS_REGION", "us-west-2"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key), slog.String("value", raw))
		return defaultValue
	}
	return v
}

func getFloat(key string, defaultValue float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid number, using default",
			slog.String("key", key), slog.String("value", raw))
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid duration, using default",
			slog.String("key", key), slog.String("value", raw))
		return defaultValue
	}
	return v
}

func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getLevel(key string, defaultValue slog.Level) slog.Level {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return defaultValue
	}
	return level
}
