package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/config"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

// S3Client defines the interface for S3 operations we need
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

const catalogCacheKey = "aircraft-profiles.json"

// ProfileListCacheProvider defines interface for aircraft catalog caching
type ProfileListCacheProvider interface {
	GetProfiles(ctx context.Context) ([]models.AircraftProfile, error)
	SaveProfiles(ctx context.Context, profiles []models.AircraftProfile) error
}

var _ ProfileListCacheProvider = (*S3ProfileCache)(nil)

// S3ProfileCache shares a fetched aircraft catalog across Lambda cold starts.
type S3ProfileCache struct {
	client     S3Client
	bucketName string
	ttl        time.Duration
	clock      clock
}

// CatalogCacheRecord is the cached catalog with freshness metadata.
type CatalogCacheRecord struct {
	Profiles    []models.AircraftProfile `json:"profiles"`
	LastUpdated int64                    `json:"lastUpdated"`
	TTL         int64                    `json:"ttl"`
}

// NewS3ProfileCache builds a cache against the given bucket using default
// AWS configuration.
func NewS3ProfileCache(ctx context.Context, bucketName string, cacheConfig *config.CacheConfig) (*S3ProfileCache, error) {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &S3ProfileCache{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		ttl:        cacheConfig.GetProfileListTTL(),
		clock:      realClock{},
	}, nil
}

// GetProfiles retrieves the catalog from S3 if present and fresh. A nil
// slice with nil error means a miss.
func (c *S3ProfileCache) GetProfiles(ctx context.Context) ([]models.AircraftProfile, error) {
	if c.bucketName == "" {
		return nil, fmt.Errorf("empty bucket name")
	}

	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(catalogCacheKey),
	})
	if err != nil {
		// Treat a missing object as a cache miss
		return nil, nil
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Error closing S3 object body")
		}
	}(result.Body)

	var record CatalogCacheRecord
	if err := json.NewDecoder(result.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decoding cache record: %w", err)
	}

	if c.clock.Now().Unix() > record.TTL {
		log.Debug().Msg("Aircraft catalog cache expired")
		return nil, nil
	}

	return record.Profiles, nil
}

// SaveProfiles saves the catalog to S3.
func (c *S3ProfileCache) SaveProfiles(ctx context.Context, profiles []models.AircraftProfile) error {
	if c.bucketName == "" {
		return fmt.Errorf("empty bucket name")
	}

	now := c.clock.Now().Unix()
	record := CatalogCacheRecord{
		Profiles:    profiles,
		LastUpdated: now,
		TTL:         now + int64(c.ttl.Seconds()),
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(record); err != nil {
		return fmt.Errorf("encoding cache record: %w", err)
	}

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(catalogCacheKey),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("saving to S3: %w", err)
	}

	log.Debug().Int("profile_count", len(profiles)).Msg("Saved aircraft catalog to S3 cache")
	return nil
}
