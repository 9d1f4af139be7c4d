package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type ProfilesResponse struct {
	APIResponse
	Profiles []models.AircraftProfile `json:"profiles"`
}

type ProfileResponse struct {
	APIResponse
	Profile models.AircraftProfile `json:"profile"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewProfilesResponse(profiles []models.AircraftProfile) *ProfilesResponse {
	return &ProfilesResponse{
		APIResponse: APIResponse{ResponseType: "profiles"},
		Profiles:    profiles,
	}
}

func NewProfileResponse(profile models.AircraftProfile) *ProfileResponse {
	return &ProfileResponse{
		APIResponse: APIResponse{ResponseType: "profile"},
		Profile:     profile,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

// Parameter parsing helpers

// ParseStationFills reads the flat query-parameter form of a loadout:
// mass.<station>=<kg> and fill.<station>=<liters>.
func ParseStationFills(params map[string]string) ([]models.StationFill, error) {
	var fills []models.StationFill
	for key, raw := range params {
		var station string
		var isMass bool
		switch {
		case len(key) > 5 && key[:5] == "mass.":
			station = key[5:]
			isMass = true
		case len(key) > 5 && key[:5] == "fill.":
			station = key[5:]
		default:
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, InvalidParameterError{Name: key}
		}

		fill := models.StationFill{Station: station}
		if isMass {
			fill.Mass = &value
		} else {
			fill.Fill = &value
		}
		fills = append(fills, fill)
	}
	return fills, nil
}

func ParseLimit(params map[string]string, name string, fallback int) (int, error) {
	raw, ok := params[name]
	if !ok || raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, InvalidParameterError{Name: name}
	}
	return limit, nil
}

type InvalidParameterError struct {
	Name string
}

func (e InvalidParameterError) Error() string {
	return "Invalid parameter: " + e.Name
}
