package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds the runtime settings for the search service.
type Config struct {
	AppPort   int
	SitesPath string
	ProxyURL  string

	// Rendering
	Headless  bool
	UserAgent string

	// Timeouts
	NavTimeout      time.Duration
	SelectorTimeout time.Duration

	// Concurrency: max simultaneous rendering sessions; 0 means one per site.
	MaxSessions int
}

func Load() (*Config, error) {
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	maxSessions, err := strconv.Atoi(getEnv("MAX_SESSIONS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SESSIONS: %w", err)
	}
	navTimeout, err := getEnvSeconds("NAV_TIMEOUT_SEC", 45)
	if err != nil {
		return nil, err
	}
	selectorTimeout, err := getEnvSeconds("SELECTOR_TIMEOUT_SEC", 30)
	if err != nil {
		return nil, err
	}

	return &Config{
		AppPort:         appPort,
		SitesPath:       getEnv("SITES_CONFIG_PATH", "sites.yaml"),
		ProxyURL:        os.Getenv("PROXY_URL"),
		Headless:        getEnv("HEADLESS", "true") != "false",
		UserAgent:       getEnv("USER_AGENT", defaultUserAgent),
		NavTimeout:      navTimeout,
		SelectorTimeout: selectorTimeout,
		MaxSessions:     maxSessions,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second, nil
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return time.Duration(secs) * time.Second, nil
}
