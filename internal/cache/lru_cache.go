package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/soaringlab/loadsheet/backend-go/internal/config"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

// LRUCacheEntry wraps the cached data with metadata
type LRUCacheEntry struct {
	Data      *models.LoadsheetRecord
	ExpiresAt time.Time
}

// CacheService provides a two-layer caching system for computed loadsheets:
// an in-process LRU in front of DynamoDB.
type CacheService struct {
	lru          *lru.Cache[string, *LRUCacheEntry]
	dynamoCache  *DynamoLoadsheetCache
	ttl          time.Duration
	clock        clock
	lruHits      uint64
	lruMisses    uint64
	dynamoHits   uint64
	dynamoMisses uint64
}

// NewCacheService creates a new cache service. The DynamoDB layer is skipped
// when disabled in the configuration.
func NewCacheService(ctx context.Context, cacheConfig *config.CacheConfig) (*CacheService, error) {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}

	lruCache, err := lru.New[string, *LRUCacheEntry](cacheConfig.LoadsheetLRUSize)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}

	var dynamoCache *DynamoLoadsheetCache
	if cacheConfig.EnableDynamoCache {
		dynamoClient, err := NewDynamoClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating DynamoDB client: %w", err)
		}
		dynamoCache = NewDynamoLoadsheetCache(dynamoClient, cacheConfig)
	}

	return &CacheService{
		lru:         lruCache,
		dynamoCache: dynamoCache,
		ttl:         cacheConfig.GetLoadsheetLRUTTL(),
		clock:       realClock{},
	}, nil
}

// cacheKey identifies one computed loadsheet.
func cacheKey(profileID, loadoutHash string) string {
	return fmt.Sprintf("%s:%s", profileID, loadoutHash)
}

// GetLoadsheet tries the LRU cache first, then DynamoDB. A nil record with
// nil error means a miss in both layers.
func (c *CacheService) GetLoadsheet(ctx context.Context, profileID, loadoutHash string) (*models.LoadsheetRecord, error) {
	key := cacheKey(profileID, loadoutHash)

	if entry, ok := c.lru.Get(key); ok {
		if c.clock.Now().Before(entry.ExpiresAt) {
			c.lruHits++
			return entry.Data, nil
		}
		// Entry expired, remove it
		c.lru.Remove(key)
	}
	c.lruMisses++

	if c.dynamoCache == nil {
		return nil, nil
	}

	record, err := c.dynamoCache.GetLoadsheet(ctx, profileID, loadoutHash)
	if err != nil {
		return nil, fmt.Errorf("getting loadsheet from DynamoDB: %w", err)
	}

	if record != nil {
		c.dynamoHits++
		// Hit in DynamoDB, promote to the LRU layer
		c.lru.Add(key, &LRUCacheEntry{
			Data:      record,
			ExpiresAt: c.clock.Now().Add(c.ttl),
		})
		return record, nil
	}
	c.dynamoMisses++

	return nil, nil
}

// SaveLoadsheet saves a computed loadsheet to both layers.
func (c *CacheService) SaveLoadsheet(ctx context.Context, record models.LoadsheetRecord) error {
	key := cacheKey(record.ProfileID, record.LoadoutHash)

	c.lru.Add(key, &LRUCacheEntry{
		Data:      &record,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	})

	if c.dynamoCache == nil {
		return nil
	}

	if err := c.dynamoCache.SaveLoadsheet(ctx, record); err != nil {
		return fmt.Errorf("saving loadsheet to DynamoDB: %w", err)
	}

	return nil
}

// SaveLoadsheetsBatch saves multiple loadsheets to both layers.
func (c *CacheService) SaveLoadsheetsBatch(ctx context.Context, records []models.LoadsheetRecord) error {
	for _, record := range records {
		recordCopy := record

		key := cacheKey(record.ProfileID, record.LoadoutHash)
		c.lru.Add(key, &LRUCacheEntry{
			Data:      &recordCopy,
			ExpiresAt: c.clock.Now().Add(c.ttl),
		})
	}

	if c.dynamoCache == nil {
		return nil
	}

	if err := c.dynamoCache.SaveLoadsheetsBatch(ctx, records); err != nil {
		return fmt.Errorf("saving loadsheet batch to DynamoDB: %w", err)
	}

	return nil
}

// GetCacheStats returns statistics about cache hits and misses
func (c *CacheService) GetCacheStats() map[string]uint64 {
	return map[string]uint64{
		"lru_hits":      c.lruHits,
		"lru_misses":    c.lruMisses,
		"dynamo_hits":   c.dynamoHits,
		"dynamo_misses": c.dynamoMisses,
	}
}

// Clear removes all entries from the LRU cache
func (c *CacheService) Clear() {
	c.lru.Purge()
}
