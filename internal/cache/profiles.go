package cache

import (
	"sync"
	"time"

	"github.com/soaringlab/loadsheet/backend-go/internal/config"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

// ProfileCache holds the aircraft catalog in memory between requests.
type ProfileCache struct {
	profiles    []models.AircraftProfile
	lastUpdated time.Time
	ttl         time.Duration
	mu          sync.RWMutex
	clock       clock
}

func NewProfileCache(cacheConfig *config.CacheConfig) *ProfileCache {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}
	return &ProfileCache{
		ttl:   cacheConfig.GetProfileListTTL(),
		clock: realClock{},
	}
}

// GetProfiles returns the cached catalog, or nil when empty or expired.
func (c *ProfileCache) GetProfiles() []models.AircraftProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.isExpired() {
		return nil
	}
	return c.profiles
}

func (c *ProfileCache) SetProfiles(profiles []models.AircraftProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profiles = profiles
	c.lastUpdated = c.clock.Now()
}

func (c *ProfileCache) isExpired() bool {
	return c.clock.Now().Sub(c.lastUpdated) > c.ttl
}
