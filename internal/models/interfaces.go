package models

import "context"

type ProfileFinder interface {
	FindProfile(ctx context.Context, profileID string) (*AircraftProfile, error)
	ListProfiles(ctx context.Context, manufacturer, class string, limit int) ([]AircraftProfile, error)
}
