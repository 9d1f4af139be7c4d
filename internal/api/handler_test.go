package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

func TestSuccess(t *testing.T) {
	tests := []struct {
		name     string
		response interface{}
		wantType string
	}{
		{
			name:     "profiles response",
			response: NewProfilesResponse([]models.AircraftProfile{}),
			wantType: "profiles",
		},
		{
			name:     "error payload still returns 200",
			response: NewErrorResponse("test error"),
			wantType: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Success(tt.response)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, got.StatusCode)

			var resp APIResponse
			err = json.Unmarshal([]byte(got.Body), &resp)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, resp.ResponseType)

			// Verify CORS headers
			assert.Equal(t, "application/json", got.Headers["Content-Type"])
			assert.Equal(t, "*", got.Headers["Access-Control-Allow-Origin"])
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
	}{
		{
			name:       "basic error",
			message:    "test error",
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "server error",
			message:    "internal server error",
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Error(tt.message, tt.statusCode)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, got.StatusCode)

			var errorResp ErrorResponse
			err = json.Unmarshal([]byte(got.Body), &errorResp)
			require.NoError(t, err)
			assert.Equal(t, "error", errorResp.ResponseType)
			assert.Equal(t, tt.message, errorResp.Error)

			assert.Equal(t, "application/json", got.Headers["Content-Type"])
		})
	}
}

func TestParseStationFills(t *testing.T) {
	tests := []struct {
		name      string
		params    map[string]string
		wantFills int
		wantErr   bool
	}{
		{
			name: "mass and fill parameters",
			params: map[string]string{
				"mass.Pilot":      "90",
				"fill.Wing tanks": "120",
				"profileId":       "asw27", // unrelated params are ignored
			},
			wantFills: 2,
		},
		{
			name:      "no fill parameters",
			params:    map[string]string{"profileId": "asw27"},
			wantFills: 0,
		},
		{
			name: "non-numeric value",
			params: map[string]string{
				"mass.Pilot": "heavy",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fills, err := ParseStationFills(tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, fills, tt.wantFills)
		})
	}
}

func TestParseStationFillValues(t *testing.T) {
	fills, err := ParseStationFills(map[string]string{"mass.Pilot": "90.5"})
	require.NoError(t, err)
	require.Len(t, fills, 1)

	assert.Equal(t, "Pilot", fills[0].Station)
	require.NotNil(t, fills[0].Mass)
	assert.Equal(t, 90.5, *fills[0].Mass)
	assert.Nil(t, fills[0].Fill)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]string
		want    int
		wantErr bool
	}{
		{
			name:   "explicit limit",
			params: map[string]string{"limit": "5"},
			want:   5,
		},
		{
			name:   "missing limit uses fallback",
			params: map[string]string{},
			want:   20,
		},
		{
			name:    "negative limit",
			params:  map[string]string{"limit": "-1"},
			wantErr: true,
		},
		{
			name:    "non-numeric limit",
			params:  map[string]string{"limit": "many"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLimit(tt.params, "limit", 20)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewProfilesResponse(t *testing.T) {
	profiles := []models.AircraftProfile{
		{ID: "asw27", Name: "ASW 27"},
		{ID: "discus2", Name: "Discus 2"},
	}

	response := NewProfilesResponse(profiles)

	assert.Equal(t, "profiles", response.ResponseType)
	assert.Equal(t, profiles, response.Profiles)
}
