package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// LRU cache settings for computed loadsheets
	LoadsheetLRUSize       int
	LoadsheetLRUTTLMinutes int

	// DynamoDB cache settings
	LoadsheetDynamoTTLDays int

	// Aircraft catalog cache settings
	ProfileListTTLHours int

	// Batch processing settings
	BatchSize       int
	MaxBatchRetries int

	// General settings
	EnableLRUCache    bool
	EnableDynamoCache bool
}

const (
	// Default values
	defaultLoadsheetLRUSize       = 1000
	defaultLoadsheetLRUTTLMinutes = 15
	defaultLoadsheetDynamoTTLDays = 7
	defaultProfileListTTLHours    = 24
	defaultBatchSize              = 25
	defaultMaxBatchRetries        = 3
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		LoadsheetLRUSize:       getEnvInt("CACHE_LOADSHEET_LRU_SIZE", defaultLoadsheetLRUSize),
		LoadsheetLRUTTLMinutes: getEnvInt("CACHE_LOADSHEET_LRU_TTL_MINUTES", defaultLoadsheetLRUTTLMinutes),
		LoadsheetDynamoTTLDays: getEnvInt("CACHE_DYNAMO_TTL_DAYS", defaultLoadsheetDynamoTTLDays),
		ProfileListTTLHours:    getEnvInt("CACHE_PROFILE_LIST_TTL_HOURS", defaultProfileListTTLHours),
		BatchSize:              getEnvInt("CACHE_BATCH_SIZE", defaultBatchSize),
		MaxBatchRetries:        getEnvInt("CACHE_MAX_BATCH_RETRIES", defaultMaxBatchRetries),
		EnableLRUCache:         getEnvBool("CACHE_ENABLE_LRU", true),
		EnableDynamoCache:      getEnvBool("CACHE_ENABLE_DYNAMO", true),
	}

	log.Debug().
		Int("LoadsheetLRUSize", config.LoadsheetLRUSize).
		Int("LoadsheetLRUTTLMinutes", config.LoadsheetLRUTTLMinutes).
		Int("LoadsheetDynamoTTLDays", config.LoadsheetDynamoTTLDays).
		Int("ProfileListTTLHours", config.ProfileListTTLHours).
		Int("BatchSize", config.BatchSize).
		Int("MaxBatchRetries", config.MaxBatchRetries).
		Bool("EnableLRUCache", config.EnableLRUCache).
		Bool("EnableDynamoCache", config.EnableDynamoCache).
		Msg("Cache configuration loaded")

	return config
}

// Helper methods for the CacheConfig struct
func (c *CacheConfig) GetLoadsheetLRUTTL() time.Duration {
	return time.Duration(c.LoadsheetLRUTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetDynamoTTL() time.Duration {
	return time.Duration(c.LoadsheetDynamoTTLDays) * 24 * time.Hour
}

func (c *CacheConfig) GetProfileListTTL() time.Duration {
	return time.Duration(c.ProfileListTTLHours) * time.Hour
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
