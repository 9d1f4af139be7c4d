package loadsheet

import (
	"context"

	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

type LoadsheetService interface {
	ComputeForProfile(ctx context.Context, profileID string, loadout models.LoadoutRequest) (*models.LoadsheetResponse, error)
}

type ProfileFinder interface {
	FindProfile(ctx context.Context, profileID string) (*models.AircraftProfile, error)
	ListProfiles(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error)
}

type CacheProvider interface {
	GetLoadsheet(ctx context.Context, profileID, loadoutHash string) (*models.LoadsheetRecord, error)
	SaveLoadsheet(ctx context.Context, record models.LoadsheetRecord) error
	SaveLoadsheetsBatch(ctx context.Context, records []models.LoadsheetRecord) error
	GetCacheStats() map[string]uint64
	Clear()
}
