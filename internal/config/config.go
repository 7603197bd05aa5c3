package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-level settings read from the environment
type Config struct {
	// Remote content
	FeedAPIBase      string
	TrendingFeedURL  string
	FetchTimeout     time.Duration
	TrendingLimit    int
	TrendingPlatform string

	// Local state
	CachePath string

	// Logging
	LogLevel string

	// Dev mock server
	MockAPIAddr string
}

// Load reads the configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		FeedAPIBase:      getEnv("FEED_API_BASE", "http://localhost:8090"),
		TrendingFeedURL:  getEnv("TRENDING_FEED_URL", "http://localhost:8090/hotsearch.xml"),
		FetchTimeout:     getEnvDuration("FETCH_TIMEOUT", 15*time.Second),
		TrendingLimit:    getEnvInt("TRENDING_LIMIT", 50),
		TrendingPlatform: getEnv("TRENDING_PLATFORM", "weibo"),
		CachePath:        getEnv("CACHE_PATH", "feed-cache.db"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MockAPIAddr:      getEnv("MOCKAPI_ADDR", ":8090"),
	}
}

// LoadDotEnv reads KEY=value pairs from the given files into the process
// environment. Variables already set win; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
