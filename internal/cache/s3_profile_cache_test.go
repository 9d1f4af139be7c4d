package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

// mockS3Client implements a mock S3 client for testing
var _ S3Client = (*mockS3Client)(nil)

type mockS3Client struct {
	getObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	putObjectFunc func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getObjectFunc != nil {
		return m.getObjectFunc(ctx, params, optFns...)
	}
	return &s3.GetObjectOutput{}, nil
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putObjectFunc != nil {
		return m.putObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func testProfiles() []models.AircraftProfile {
	return []models.AircraftProfile{
		{ID: "asw27", Name: "ASW 27", Manufacturer: "Schleicher", Source: models.SourceFactory},
		{ID: "discus2", Name: "Discus 2", Manufacturer: "Schempp-Hirth", Source: models.SourceFactory},
	}
}

func newTestS3Cache(client *mockS3Client, clk clock) *S3ProfileCache {
	if clk == nil {
		clk = &fakeClock{now: time.Now()}
	}
	return &S3ProfileCache{
		client:     client,
		bucketName: "test-bucket",
		ttl:        24 * time.Hour,
		clock:      clk,
	}
}

func TestS3ProfileCacheRoundTrip(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Now()}
	var stored []byte
	client := &mockS3Client{
		putObjectFunc: func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			var err error
			stored, err = io.ReadAll(params.Body)
			require.NoError(t, err)
			assert.Equal(t, catalogCacheKey, *params.Key)
			return &s3.PutObjectOutput{}, nil
		},
		getObjectFunc: func(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(stored))}, nil
		},
	}

	cache := newTestS3Cache(client, clk)

	require.NoError(t, cache.SaveProfiles(context.Background(), testProfiles()))

	got, err := cache.GetProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "asw27", got[0].ID)
}

func TestS3ProfileCacheExpired(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{now: time.Now()}
	record := CatalogCacheRecord{
		Profiles:    testProfiles(),
		LastUpdated: clk.Now().Unix(),
		TTL:         clk.Now().Unix() - 1, // already expired
	}
	body, err := json.Marshal(record)
	require.NoError(t, err)

	client := &mockS3Client{
		getObjectFunc: func(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
		},
	}

	cache := newTestS3Cache(client, clk)

	got, err := cache.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestS3ProfileCacheMissingObjectIsAMiss(t *testing.T) {
	t.Parallel()

	client := &mockS3Client{
		getObjectFunc: func(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return nil, context.DeadlineExceeded // any fetch error counts as a miss
		},
	}

	cache := newTestS3Cache(client, nil)

	got, err := cache.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestS3ProfileCacheEmptyBucketName(t *testing.T) {
	t.Parallel()

	cache := newTestS3Cache(&mockS3Client{}, nil)
	cache.bucketName = ""

	_, err := cache.GetProfiles(context.Background())
	assert.Error(t, err)

	err = cache.SaveProfiles(context.Background(), testProfiles())
	assert.Error(t, err)
}
