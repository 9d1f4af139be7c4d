package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/config"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

const loadsheetTableName = "loadsheet-cache"

// DynamoLoadsheetCache persists computed loadsheets in DynamoDB so repeated
// requests for the same profile and loadout skip the computation across
// Lambda cold starts.
type DynamoLoadsheetCache struct {
	client DynamoDBClient
	config *config.CacheConfig
	clock  clock
}

func NewDynamoLoadsheetCache(client DynamoDBClient, cacheConfig *config.CacheConfig) *DynamoLoadsheetCache {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}
	return &DynamoLoadsheetCache{
		client: client,
		config: cacheConfig,
		clock:  realClock{},
	}
}

// GetLoadsheet retrieves a cached loadsheet for a profile and loadout hash.
// A nil record with nil error means a miss.
func (c *DynamoLoadsheetCache) GetLoadsheet(ctx context.Context, profileID, loadoutHash string) (*models.LoadsheetRecord, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(loadsheetTableName),
		Key: map[string]types.AttributeValue{
			"profileId":   &types.AttributeValueMemberS{Value: profileID},
			"loadoutHash": &types.AttributeValueMemberS{Value: loadoutHash},
		},
	}

	result, err := c.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("getting loadsheet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record models.LoadsheetRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling loadsheet record: %w", err)
	}

	if !c.isValid(record) {
		log.Debug().
			Str("profile_id", profileID).
			Str("loadout_hash", loadoutHash).
			Msg("Cache expired")
		return nil, nil
	}

	return &record, nil
}

// SaveLoadsheet saves a computed loadsheet to the cache
func (c *DynamoLoadsheetCache) SaveLoadsheet(ctx context.Context, record models.LoadsheetRecord) error {
	// Validate the record first
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid loadsheet record: %w", err)
	}

	now := c.clock.Now().Unix()
	record.LastUpdated = now
	record.TTL = now + int64(c.config.GetDynamoTTL().Seconds())

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling loadsheet record: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(loadsheetTableName),
		Item:      item,
	}

	if _, err := c.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("putting loadsheet in DynamoDB: %w", err)
	}

	log.Debug().
		Str("profile_id", record.ProfileID).
		Str("loadout_hash", record.LoadoutHash).
		Msg("Saved loadsheet to cache")

	return nil
}

// SaveLoadsheetsBatch saves multiple loadsheet records to the cache,
// retrying each batch with exponential backoff.
func (c *DynamoLoadsheetCache) SaveLoadsheetsBatch(ctx context.Context, records []models.LoadsheetRecord) error {
	// Validate all records first
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("invalid loadsheet record: %w", err)
		}
	}

	batchSize := c.config.BatchSize
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}

		batch := records[i:end]
		var writeRequests []types.WriteRequest

		for _, record := range batch {
			now := c.clock.Now().Unix()
			record.LastUpdated = now
			record.TTL = now + int64(c.config.GetDynamoTTL().Seconds())

			item, err := attributevalue.MarshalMap(record)
			if err != nil {
				return fmt.Errorf("marshaling loadsheet record: %w", err)
			}

			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{
					Item: item,
				},
			})
		}

		var lastErr error
		for retry := 0; retry < c.config.MaxBatchRetries; retry++ {
			input := &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					loadsheetTableName: writeRequests,
				},
			}

			if _, err := c.client.BatchWriteItem(ctx, input); err != nil {
				lastErr = err
				time.Sleep(time.Duration(1<<retry) * 100 * time.Millisecond)
				continue
			}
			lastErr = nil
			break
		}
		if lastErr != nil {
			return fmt.Errorf("batch writing loadsheets after %d retries: %w",
				c.config.MaxBatchRetries, lastErr)
		}
	}

	return nil
}

func (c *DynamoLoadsheetCache) isValid(record models.LoadsheetRecord) bool {
	return c.clock.Now().Unix() < record.TTL
}
