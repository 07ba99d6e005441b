// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loaded once at process start into an immutable struct and injected into components

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Wiki contains wiki host and parser settings
	Wiki WikiConfig

	// Hiscores contains the per-game-mode leaderboard endpoints
	Hiscores HiscoresConfig

	// Prices contains the price and graph API endpoints
	Prices PricesConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Store contains the SQLite store configuration
	Store StoreConfig
}

// WikiConfig holds wiki fetch and parse settings
type WikiConfig struct {
	// BaseURL is the article base, slug appended directly
	BaseURL string

	// UserAgent is sent on every outbound request
	UserAgent string

	// MinDescriptionLength is the minimum visible length for a lead
	// paragraph. Historical revisions used 34, 56, 84 and 108; 34 is the
	// canonical value, but short legitimate articles may be classified as
	// stubs, so it stays configurable.
	MinDescriptionLength int

	// PageCacheTTLSeconds is how long parsed pages stay cached
	PageCacheTTLSeconds int

	// FetchTimeoutSeconds is the per-request HTTP timeout
	FetchTimeoutSeconds int

	// RequestsPerSecond limits outbound wiki traffic
	RequestsPerSecond float64

	// Icons are the static fallback thumbnails
	Icons IconConfig
}

// IconConfig holds the static thumbnail URLs used when a page has none
type IconConfig struct {
	Filler   string
	Minigame string
	Quest    string
	Stub     string
}

// HiscoresConfig holds the leaderboard endpoints
type HiscoresConfig struct {
	// BaseURL is the leaderboard host
	BaseURL string

	// modePaths maps a game-mode name to its endpoint path segment
	modePaths map[string]string

	// MaxUsernameLength is the validation limit for usernames
	MaxUsernameLength int
}

// NewHiscoresConfig builds a hiscores config with the standard game-mode
// endpoint paths.
func NewHiscoresConfig(baseURL string, maxUsernameLength int) HiscoresConfig {
	return HiscoresConfig{
		BaseURL: baseURL,
		modePaths: map[string]string{
			"Normal":             "m=hiscore_oldschool",
			"Ironman":            "m=hiscore_oldschool_ironman",
			"Hardcore Ironman":   "m=hiscore_oldschool_hardcore_ironman",
			"Ultimate Ironman":   "m=hiscore_oldschool_ultimate",
			"Skiller":            "m=hiscore_oldschool_skiller",
			"1 Defence":          "m=hiscore_oldschool_skiller_defence",
			"Fresh Start Worlds": "m=hiscore_oldschool_fresh_start",
		},
		MaxUsernameLength: maxUsernameLength,
	}
}

// LookupURL returns the index_lite endpoint for a game mode and username.
// The second return is false for unknown modes.
func (h HiscoresConfig) LookupURL(mode, username string) (string, bool) {
	path, ok := h.modePaths[mode]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s/%s/index_lite.ws?player=%s", h.BaseURL, path, username), true
}

// PricesConfig holds the price API endpoints
type PricesConfig struct {
	// LatestURL serves the latest high/low snapshot, item id appended
	LatestURL string

	// DetailURL serves the catalogue detail document, item id appended
	DetailURL string

	// GraphURL serves the 180-day series, "{id}.json" appended
	GraphURL string

	// TimeoutSeconds is the ceiling for the whole price pipeline
	TimeoutSeconds int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// StoreConfig holds the SQLite store configuration
type StoreConfig struct {
	// Path is the SQLite database file
	Path string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Wiki: WikiConfig{
			BaseURL:              getEnvOrDefault("WIKI_BASE_URL", "https://oldschool.runescape.wiki/w/"),
			UserAgent:            getEnvOrDefault("WIKI_USER_AGENT", "RuneBot/1.0 (wiki lookup)"),
			MinDescriptionLength: getEnvAsIntOrDefault("WIKI_MIN_DESCRIPTION_LENGTH", 34),
			PageCacheTTLSeconds:  getEnvAsIntOrDefault("WIKI_PAGE_CACHE_TTL", 60),
			FetchTimeoutSeconds:  getEnvAsIntOrDefault("WIKI_FETCH_TIMEOUT", 30),
			RequestsPerSecond:    getEnvAsFloatOrDefault("WIKI_REQUESTS_PER_SECOND", 5),
			Icons: IconConfig{
				Filler:   getEnvOrDefault("ICON_FILLER", "https://oldschool.runescape.wiki/images/Bucket.png"),
				Minigame: getEnvOrDefault("ICON_MINIGAME", "https://oldschool.runescape.wiki/images/Minigame_icon.png"),
				Quest:    getEnvOrDefault("ICON_QUEST", "https://oldschool.runescape.wiki/images/Quest_point_icon.png"),
				Stub:     getEnvOrDefault("ICON_STUB", "https://oldschool.runescape.wiki/images/Null.png"),
			},
		},
		Hiscores: NewHiscoresConfig(
			getEnvOrDefault("HISCORES_BASE_URL", "https://secure.runescape.com"),
			getEnvAsIntOrDefault("HISCORES_MAX_USERNAME", 12),
		),
		Prices: PricesConfig{
			LatestURL:      getEnvOrDefault("PRICES_LATEST_URL", "https://prices.runescape.wiki/api/v1/osrs/latest?id="),
			DetailURL:      getEnvOrDefault("PRICES_DETAIL_URL", "https://secure.runescape.com/m=itemdb_oldschool/api/catalogue/detail.json?item="),
			GraphURL:       getEnvOrDefault("PRICES_GRAPH_URL", "https://secure.runescape.com/m=itemdb_oldschool/api/graph/"),
			TimeoutSeconds: getEnvAsIntOrDefault("PRICES_TIMEOUT", 60),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Store: StoreConfig{
			Path: getEnvOrDefault("STORE_PATH", "runebot.db"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Wiki.BaseURL == "" {
		return errors.New("wiki base URL cannot be empty")
	}

	if !strings.HasSuffix(c.Wiki.BaseURL, "/") {
		return errors.New("wiki base URL must end with a slash")
	}

	if c.Wiki.MinDescriptionLength < 1 {
		return errors.New("minimum description length must be at least 1")
	}

	if c.Wiki.FetchTimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Hiscores.MaxUsernameLength < 1 {
		return errors.New("max username length must be at least 1")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
