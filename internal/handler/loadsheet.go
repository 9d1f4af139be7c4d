package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/api"
	"github.com/soaringlab/loadsheet/backend-go/internal/loadsheet"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

type LoadsheetHandler struct {
	service loadsheet.LoadsheetService
}

func NewLoadsheetHandler(service loadsheet.LoadsheetService) *LoadsheetHandler {
	return &LoadsheetHandler{
		service: service,
	}
}

// HandleRequest computes a loadsheet for one aircraft profile. The loadout
// arrives either as a JSON body (POST) or as flat mass.<station> and
// fill.<station> query parameters (GET).
func (h *LoadsheetHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	loadout, profileID, err := parseLoadout(request)
	if err != nil {
		var invalidParamErr api.InvalidParameterError
		if errors.As(err, &invalidParamErr) {
			return api.Error(err.Error(), http.StatusBadRequest)
		}
		return api.Error("Invalid request body", http.StatusBadRequest)
	}

	// Query parameter wins over the body field
	if id, ok := params["profileId"]; ok && id != "" {
		profileID = id
	}
	if profileID == "" {
		return api.Error("Missing profileId", http.StatusBadRequest)
	}

	response, err := h.service.ComputeForProfile(ctx, profileID, loadout)
	if err != nil {
		var notFoundErr *loadsheet.ProfileNotFoundError
		var invalidErr *loadsheet.InvalidLoadoutError
		switch {
		case errors.As(err, &notFoundErr):
			return api.Error("Profile not found", http.StatusNotFound)
		case errors.As(err, &invalidErr):
			return api.Error(err.Error(), http.StatusBadRequest)
		default:
			log.Error().Err(err).Str("profile_id", profileID).Msg("Error computing loadsheet")
			return api.Error("Error computing loadsheet", http.StatusInternalServerError)
		}
	}

	return api.Success(response)
}

func parseLoadout(request events.APIGatewayProxyRequest) (models.LoadoutRequest, string, error) {
	if request.Body != "" {
		var loadout models.LoadoutRequest
		if err := json.Unmarshal([]byte(request.Body), &loadout); err != nil {
			return models.LoadoutRequest{}, "", err
		}
		return loadout, loadout.ProfileID, nil
	}

	fills, err := api.ParseStationFills(request.QueryStringParameters)
	if err != nil {
		return models.LoadoutRequest{}, "", err
	}
	return models.LoadoutRequest{Fills: fills}, "", nil
}
