package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soaringlab/loadsheet/backend-go/internal/api"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

// mockCatalog implements models.ProfileFinder for testing
type mockCatalog struct {
	findProfileFn  func(ctx context.Context, profileID string) (*models.AircraftProfile, error)
	listProfilesFn func(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error)
}

func (m *mockCatalog) FindProfile(ctx context.Context, profileID string) (*models.AircraftProfile, error) {
	if m.findProfileFn != nil {
		return m.findProfileFn(ctx, profileID)
	}
	return nil, nil
}

func (m *mockCatalog) ListProfiles(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error) {
	if m.listProfilesFn != nil {
		return m.listProfilesFn(ctx, manufacturer, class, limit)
	}
	return nil, nil
}

func createTestProfile(id string) models.AircraftProfile {
	mass := 285.0
	return models.AircraftProfile{
		ID:           id,
		Name:         "Test Glider " + id,
		Manufacturer: "Schleicher",
		Class:        "15m",
		Source:       models.SourceFactory,
		Stations: []models.StationTemplate{
			{Name: "Airframe", Arm: 250, Kind: models.StationKindEmpty, Mass: &mass},
			{Name: "Pilot", Arm: 130, Kind: models.StationKindPilot},
		},
	}
}

func TestProfilesHandler_HandleRequest(t *testing.T) {
	tests := []struct {
		name           string
		request        events.APIGatewayProxyRequest
		setupMock      func() models.ProfileFinder
		expectedStatus int
	}{
		{
			name: "successful profile lookup by ID",
			request: events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{
					"profileId": "asw27",
				},
			},
			setupMock: func() models.ProfileFinder {
				return &mockCatalog{
					findProfileFn: func(ctx context.Context, profileID string) (*models.AircraftProfile, error) {
						profile := createTestProfile(profileID)
						return &profile, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "profile not found",
			request: events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{
					"profileId": "nope",
				},
			},
			setupMock: func() models.ProfileFinder {
				return &mockCatalog{
					findProfileFn: func(ctx context.Context, profileID string) (*models.AircraftProfile, error) {
						return nil, fmt.Errorf("profile not found: %s", profileID)
					},
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "successful filtered listing",
			request: events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{
					"manufacturer": "Schleicher",
					"limit":        "2",
				},
			},
			setupMock: func() models.ProfileFinder {
				return &mockCatalog{
					listProfilesFn: func(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error) {
						assert.Equal(t, "Schleicher", manufacturer)
						assert.Equal(t, 2, limit)
						return []models.AircraftProfile{
							createTestProfile("asw27"),
							createTestProfile("asg29"),
						}, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid limit",
			request: events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{
					"limit": "many",
				},
			},
			setupMock:      func() models.ProfileFinder { return &mockCatalog{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "listing error",
			request: events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{},
			},
			setupMock: func() models.ProfileFinder {
				return &mockCatalog{
					listProfilesFn: func(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error) {
						return nil, fmt.Errorf("catalog unavailable")
					},
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewProfilesHandler(tt.setupMock())

			response, err := handler.HandleRequest(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, response.StatusCode)
		})
	}
}

func TestProfilesHandlerResponseBody(t *testing.T) {
	catalog := &mockCatalog{
		listProfilesFn: func(ctx context.Context, manufacturer, class string, limit int) ([]models.AircraftProfile, error) {
			return []models.AircraftProfile{createTestProfile("asw27")}, nil
		},
	}

	handler := NewProfilesHandler(catalog)

	response, err := handler.HandleRequest(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var body api.ProfilesResponse
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	assert.Equal(t, "profiles", body.ResponseType)
	require.Len(t, body.Profiles, 1)
	assert.Equal(t, "asw27", body.Profiles[0].ID)
}
