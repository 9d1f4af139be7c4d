package aircraft

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/cache"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
	"github.com/soaringlab/loadsheet/backend-go/pkg/http/client"
)

type CatalogFactory interface {
	NewCatalog(httpClient *client.Client, memCache *cache.ProfileCache) (*Catalog, error)
}

type DefaultCatalogFactory struct{}

func (f *DefaultCatalogFactory) NewCatalog(httpClient *client.Client, memCache *cache.ProfileCache) (*Catalog, error) {
	return NewCatalog(httpClient, memCache)
}

// Catalog resolves aircraft profiles from the catalog origin, with an
// in-memory cache between requests and an optional S3 cache shared across
// cold starts.
type Catalog struct {
	httpClient *client.Client
	memCache   *cache.ProfileCache
	s3Cache    cache.ProfileListCacheProvider
	cacheMutex sync.RWMutex
}

var _ models.ProfileFinder = (*Catalog)(nil)

func NewCatalog(httpClient *client.Client, memCache *cache.ProfileCache) (*Catalog, error) {
	if memCache == nil {
		memCache = cache.NewProfileCache(nil) // Use default config
	}

	return &Catalog{
		httpClient: httpClient,
		memCache:   memCache,
	}, nil
}

// WithS3Cache attaches a shared catalog cache, checked after the in-memory
// cache and refreshed on origin fetches.
func (c *Catalog) WithS3Cache(s3Cache cache.ProfileListCacheProvider) *Catalog {
	c.s3Cache = s3Cache
	return c
}

func (c *Catalog) FindProfile(ctx context.Context, profileID string) (*models.AircraftProfile, error) {
	if profileID == "" {
		return nil, fmt.Errorf("empty profile id")
	}

	profiles, err := c.getProfileList(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting profile list: %w", err)
	}

	for _, profile := range profiles {
		if profile.ID == profileID {
			return &profile, nil
		}
	}

	return nil, fmt.Errorf("profile not found: %s", profileID)
}

// ListProfiles returns catalog profiles matching the given manufacturer and
// competition class, both optional and matched case-insensitively. Results
// are sorted by name.
func (c *Catalog) ListProfiles(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error) {
	profiles, err := c.getProfileList(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting profile list: %w", err)
	}

	result := make([]models.AircraftProfile, 0, len(profiles))
	for _, profile := range profiles {
		if manufacturer != "" && !strings.EqualFold(profile.Manufacturer, manufacturer) {
			continue
		}
		if class != "" && !strings.EqualFold(profile.Class, class) {
			continue
		}
		result = append(result, profile)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	if limit <= 0 {
		limit = 20 // Default limit if not specified
	}
	if limit > len(result) {
		limit = len(result)
	}

	return result[:limit], nil
}

func (c *Catalog) getProfileList(ctx context.Context) ([]models.AircraftProfile, error) {
	// Check memory cache first
	c.cacheMutex.RLock()
	profiles := c.memCache.GetProfiles()
	c.cacheMutex.RUnlock()

	if profiles != nil {
		log.Debug().Msg("Memory cache HIT for aircraft catalog")
		return profiles, nil
	}

	// Check S3 cache if available
	if c.s3Cache != nil {
		profiles, err := c.s3Cache.GetProfiles(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error getting aircraft catalog from S3 cache")
		} else if profiles != nil {
			log.Debug().Msg("S3 cache HIT for aircraft catalog")
			// Update memory cache
			c.cacheMutex.Lock()
			c.memCache.SetProfiles(profiles)
			c.cacheMutex.Unlock()
			return profiles, nil
		}
	}

	log.Debug().Msg("Cache MISS for aircraft catalog, fetching from origin")

	resp, err := c.httpClient.Get(ctx, "/v1/aircraft-profiles.json")
	if err != nil {
		return nil, fmt.Errorf("fetching aircraft catalog: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from catalog origin")
	}

	var catalog models.ProfileCatalog
	if err := json.Unmarshal(resp.Body, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	profiles = make([]models.AircraftProfile, 0, len(catalog.Profiles))
	for _, profile := range catalog.Profiles {
		if err := profile.Validate(); err != nil {
			log.Warn().Err(err).Str("profile_id", profile.ID).Msg("Skipping malformed catalog profile")
			continue
		}
		profiles = append(profiles, profile)
	}

	// Save to both caches asynchronously
	if c.s3Cache != nil {
		toSave := profiles
		go func() {
			if err := c.s3Cache.SaveProfiles(context.Background(), toSave); err != nil {
				log.Error().Err(err).Msg("Failed to save aircraft catalog to S3 cache")
			}
		}()
	}

	c.cacheMutex.Lock()
	c.memCache.SetProfiles(profiles)
	c.cacheMutex.Unlock()

	return profiles, nil
}
