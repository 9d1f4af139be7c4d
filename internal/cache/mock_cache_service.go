package cache

import (
	"context"

	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

// MockCacheService is a no-op cache for handler tests and local runs
// without DynamoDB.
type MockCacheService struct{}

func NewMockCacheService() *MockCacheService {
	return &MockCacheService{}
}

func (m *MockCacheService) GetLoadsheet(_ context.Context, _, _ string) (*models.LoadsheetRecord, error) {
	return nil, nil
}

func (m *MockCacheService) SaveLoadsheet(_ context.Context, _ models.LoadsheetRecord) error {
	return nil
}

func (m *MockCacheService) SaveLoadsheetsBatch(_ context.Context, _ []models.LoadsheetRecord) error {
	return nil
}

func (m *MockCacheService) GetCacheStats() map[string]uint64 {
	return map[string]uint64{}
}

func (m *MockCacheService) Clear() {}
