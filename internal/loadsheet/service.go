package loadsheet

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soaringlab/loadsheet/backend-go/internal/models"
	"github.com/soaringlab/loadsheet/backend-go/internal/wb"
)

type Service struct {
	profiles       ProfileFinder
	loadsheetCache CacheProvider
}

func NewService(profiles ProfileFinder, loadsheetCache CacheProvider) *Service {
	return &Service{
		profiles:       profiles,
		loadsheetCache: loadsheetCache,
	}
}

var _ LoadsheetService = (*Service)(nil)

// ComputeForProfile resolves the profile from the catalog and computes the
// loadsheet for the given loadout, consulting the cache first.
func (s *Service) ComputeForProfile(ctx context.Context, profileID string, loadout models.LoadoutRequest) (*models.LoadsheetResponse, error) {
	if profileID == "" {
		return nil, NewInvalidLoadoutError("empty profile id")
	}
	if err := loadout.Validate(); err != nil {
		return nil, NewInvalidLoadoutError("invalid loadout: %v", err)
	}

	hash := LoadoutHash(loadout)

	if s.loadsheetCache != nil {
		record, err := s.loadsheetCache.GetLoadsheet(ctx, profileID, hash)
		if err != nil {
			log.Error().Err(err).Str("profile_id", profileID).Msg("Error reading loadsheet cache")
		} else if record != nil {
			log.Debug().Str("profile_id", profileID).Msg("Loadsheet cache HIT")
			response := record.Response
			return &response, nil
		}
	}

	profile, err := s.profiles.FindProfile(ctx, profileID)
	if err != nil {
		return nil, NewProfileNotFoundError(profileID, err)
	}

	response, err := Compute(profile, loadout)
	if err != nil {
		return nil, err
	}

	if s.loadsheetCache != nil {
		record := models.LoadsheetRecord{
			ProfileID:   profileID,
			LoadoutHash: hash,
			Response:    *response,
			LastUpdated: time.Now().Unix(),
		}
		if err := s.loadsheetCache.SaveLoadsheet(ctx, record); err != nil {
			log.Error().Err(err).Str("profile_id", profileID).Msg("Failed to save loadsheet to cache")
		}
	}

	return response, nil
}

// Compute applies a loadout to a profile and evaluates the result against
// the certified envelope. It is pure: no catalog or cache access.
func Compute(profile *models.AircraftProfile, loadout models.LoadoutRequest) (*models.LoadsheetResponse, error) {
	if profile == nil {
		return nil, fmt.Errorf("nil profile")
	}
	if err := loadout.Validate(); err != nil {
		return nil, NewInvalidLoadoutError("invalid loadout: %v", err)
	}

	fills := make(map[string]models.StationFill, len(loadout.Fills))
	for _, f := range loadout.Fills {
		fills[f.Station] = f
	}

	templates := make(map[string]bool, len(profile.Stations))
	for _, st := range profile.Stations {
		templates[st.Name] = true
	}
	for name := range fills {
		if !templates[name] {
			return nil, NewInvalidLoadoutError("loadout targets unknown station %q", name)
		}
	}

	manager := wb.NewManager()
	manager.SetMinLimit(limitFromRecord(profile.MinLimit))
	manager.SetMaxLimit(limitFromRecord(profile.MaxLimit))

	loads := make([]models.StationLoad, 0, len(profile.Stations))
	for _, template := range profile.Stations {
		fill, hasFill := fills[template.Name]

		if template.IsWet() {
			if hasFill && fill.Mass != nil {
				return nil, NewInvalidLoadoutError("station %q is a tank, set fill instead of mass", template.Name)
			}

			station := wb.NewWetStation(
				template.Name,
				template.Arm,
				derefOrZero(template.MaxCapacity),
				dumpTimeOf(template),
				liquidOf(template),
			)

			var overflow float64
			if hasFill && fill.Fill != nil {
				overflow = station.Fill(*fill.Fill)
			}

			manager.AddStation(station)
			loads = append(loads, stationLoad(station, template.Kind, overflow))
			continue
		}

		if hasFill && fill.Fill != nil {
			return nil, NewInvalidLoadoutError("station %q is dry, set mass instead of fill", template.Name)
		}

		mass := template.Mass
		if hasFill && fill.Mass != nil {
			mass = fill.Mass
		}
		if mass == nil {
			// No mass known for this station; leave it off the sheet.
			// Loading completeness reflects the omission.
			continue
		}

		station := wb.NewDryStation(template.Name, template.Arm, *mass, wb.StationType(template.Kind))
		manager.AddStation(station)
		loads = append(loads, stationLoad(station, template.Kind, 0))
	}

	response := &models.LoadsheetResponse{
		ResponseType:                "loadsheet",
		ProfileID:                   profile.ID,
		ProfileName:                 profile.Name,
		TotalMass:                   manager.TotalMass(),
		NonExpendableMass:           manager.NonExpendableMass(),
		TotalWithinEnvelope:         manager.TotalWithinEnvelope(),
		NonExpendableWithinEnvelope: manager.NonExpendableWithinEnvelope(),
		LimitsComplete:              manager.AreLimitsComplete(),
		CGComplete:                  manager.IsCenterOfGravityComplete(),
		Stations:                    loads,
		MassUnit:                    profile.MassUnit,
		ArmUnit:                     profile.ArmUnit,
	}

	if response.TotalMass > 0 {
		cg := manager.TotalCenterOfGravity()
		response.TotalCG = &cg
	}
	if response.NonExpendableMass > 0 {
		cg := manager.NonExpendableCenterOfGravity()
		response.NonExpendableCG = &cg
	}

	if manager.AreLimitsComplete() {
		response.Envelope = envelopeCorners(manager.MinLimit(), manager.MaxLimit())
	}

	return response, nil
}

// LoadoutHash returns the canonical cache key for a loadout. Fill order does
// not matter; two loadouts naming the same stations with the same values
// hash identically.
func LoadoutHash(loadout models.LoadoutRequest) string {
	parts := make([]string, 0, len(loadout.Fills))
	for _, f := range loadout.Fills {
		switch {
		case f.Mass != nil:
			parts = append(parts, fmt.Sprintf("%s=m%g", f.Station, *f.Mass))
		case f.Fill != nil:
			parts = append(parts, fmt.Sprintf("%s=f%g", f.Station, *f.Fill))
		default:
			parts = append(parts, f.Station)
		}
	}
	sort.Strings(parts)

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func stationLoad(station wb.Station, kind models.StationKind, overflow float64) models.StationLoad {
	return models.StationLoad{
		Name:       station.Name(),
		Kind:       kind,
		Arm:        station.Arm(),
		Mass:       station.Mass(),
		Moment:     station.Moment(),
		Expendable: station.IsExpendable(),
		Overflow:   overflow,
	}
}

func limitFromRecord(record models.LimitRecord) wb.Limit {
	limit := wb.UnsetLimit()
	if record.Weight != nil {
		limit.Weight = *record.Weight
	}
	if record.Forward != nil {
		limit.Forward = *record.Forward
	}
	if record.Aft != nil {
		limit.Aft = *record.Aft
	}
	return limit
}

// envelopeCorners returns the certified envelope as a four-corner polygon
// in (CG, weight) space, wound from the forward-bottom corner.
func envelopeCorners(minLimit, maxLimit wb.Limit) []models.EnvelopePoint {
	return []models.EnvelopePoint{
		{CG: minLimit.Forward, Weight: minLimit.Weight},
		{CG: minLimit.Aft, Weight: minLimit.Weight},
		{CG: maxLimit.Aft, Weight: maxLimit.Weight},
		{CG: maxLimit.Forward, Weight: maxLimit.Weight},
	}
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func dumpTimeOf(template models.StationTemplate) uint {
	if template.DumpTime == nil || *template.DumpTime < 0 {
		return 0
	}
	return uint(*template.DumpTime)
}

func liquidOf(template models.StationTemplate) wb.LiquidType {
	if template.Liquid == nil {
		return wb.LiquidWater
	}
	return wb.LiquidType(*template.Liquid)
}
