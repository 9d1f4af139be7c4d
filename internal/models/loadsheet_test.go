package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadoutRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request LoadoutRequest
		wantErr string
	}{
		{
			name: "valid mixed loadout",
			request: LoadoutRequest{
				ProfileID: "asw27",
				Fills: []StationFill{
					{Station: "pilot", Mass: float64Ptr(85)},
					{Station: "wings", Fill: float64Ptr(120)},
				},
			},
		},
		{
			name:    "empty loadout is valid",
			request: LoadoutRequest{ProfileID: "asw27"},
		},
		{
			name: "missing station name",
			request: LoadoutRequest{
				Fills: []StationFill{{Mass: float64Ptr(85)}},
			},
			wantErr: "missing station name",
		},
		{
			name: "duplicate station",
			request: LoadoutRequest{
				Fills: []StationFill{
					{Station: "wings", Fill: float64Ptr(50)},
					{Station: "wings", Fill: float64Ptr(60)},
				},
			},
			wantErr: "duplicate fill",
		},
		{
			name: "neither mass nor fill",
			request: LoadoutRequest{
				Fills: []StationFill{{Station: "wings"}},
			},
			wantErr: "neither mass nor fill",
		},
		{
			name: "negative fill",
			request: LoadoutRequest{
				Fills: []StationFill{{Station: "wings", Fill: float64Ptr(-5)}},
			},
			wantErr: "negative fill",
		},
		{
			name: "negative mass",
			request: LoadoutRequest{
				Fills: []StationFill{{Station: "pilot", Mass: float64Ptr(-1)}},
			},
			wantErr: "negative mass",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.request.Validate()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadsheetResponseValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response LoadsheetResponse
		wantErr  string
	}{
		{
			name: "valid response",
			response: LoadsheetResponse{
				ResponseType: "loadsheet",
				ProfileID:    "asw27",
				TotalMass:    385,
				TotalCG:      float64Ptr(242.1),
				Envelope: []EnvelopePoint{
					{CG: 200, Weight: 245}, {CG: 300, Weight: 245},
					{CG: 300, Weight: 500}, {CG: 220, Weight: 500},
				},
			},
		},
		{
			name: "zero mass with no CG",
			response: LoadsheetResponse{
				ResponseType: "loadsheet",
				ProfileID:    "asw27",
			},
		},
		{
			name:     "missing profile id",
			response: LoadsheetResponse{ResponseType: "loadsheet"},
			wantErr:  "missing profile id",
		},
		{
			name: "positive mass without CG",
			response: LoadsheetResponse{
				ProfileID: "asw27",
				TotalMass: 385,
			},
			wantErr: "no CG",
		},
		{
			name: "truncated envelope polygon",
			response: LoadsheetResponse{
				ProfileID: "asw27",
				TotalMass: 385,
				TotalCG:   float64Ptr(242.1),
				Envelope:  []EnvelopePoint{{CG: 200, Weight: 245}},
			},
			wantErr: "four corners",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.response.Validate()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadsheetRecordValidate(t *testing.T) {
	t.Parallel()

	valid := LoadsheetRecord{
		ProfileID:   "asw27",
		LoadoutHash: "c0ffee",
		Response: LoadsheetResponse{
			ProfileID: "asw27",
			TotalMass: 385,
			TotalCG:   float64Ptr(242.1),
		},
	}
	assert.NoError(t, valid.Validate())

	noHash := valid
	noHash.LoadoutHash = ""
	assert.ErrorContains(t, noHash.Validate(), "missing loadout hash")

	badResponse := valid
	badResponse.Response.TotalCG = nil
	assert.Error(t, badResponse.Validate())
}

// Helper for creating pointers to primitives.
func float64Ptr(f float64) *float64 {
	return &f
}
