package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/soaringlab/loadsheet/backend-go/internal/api"
	"github.com/soaringlab/loadsheet/backend-go/internal/models"
)

type ProfilesHandler struct {
	catalog models.ProfileFinder
}

func NewProfilesHandler(catalog models.ProfileFinder) *ProfilesHandler {
	return &ProfilesHandler{
		catalog: catalog,
	}
}

func (h *ProfilesHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	// Check if we're looking up a single profile
	if profileID, ok := params["profileId"]; ok {
		profile, err := h.catalog.FindProfile(ctx, profileID)
		if err != nil {
			return api.Error("Profile not found", http.StatusNotFound)
		}
		return api.Success(api.NewProfileResponse(*profile))
	}

	limit, err := api.ParseLimit(params, "limit", 20)
	if err != nil {
		var invalidParamErr api.InvalidParameterError
		if errors.As(err, &invalidParamErr) {
			return api.Error(err.Error(), http.StatusBadRequest)
		}
		return api.Error("Invalid parameters", http.StatusBadRequest)
	}

	profiles, err := h.catalog.ListProfiles(ctx, params["manufacturer"], params["class"], limit)
	if err != nil {
		return api.Error("Error listing profiles", http.StatusInternalServerError)
	}

	return api.Success(api.NewProfilesResponse(profiles))
}
