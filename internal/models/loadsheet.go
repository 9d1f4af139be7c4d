package models

import "fmt"

// StationFill sets the loading of one named station for a flight: a mass
// override for dry stations (pilot weight, baggage) or a fill level for wet
// stations.
type StationFill struct {
	Station string   `json:"station"`
	Mass    *float64 `json:"mass,omitempty"`
	Fill    *float64 `json:"fill,omitempty"`
}

// LoadoutRequest describes how an aircraft is loaded for one flight.
type LoadoutRequest struct {
	ProfileID string        `json:"profileId,omitempty"`
	Fills     []StationFill `json:"fills"`
}

// Validate rejects structurally bad fills; unknown station names are caught
// later against the resolved profile.
func (r LoadoutRequest) Validate() error {
	seen := make(map[string]bool, len(r.Fills))
	for _, f := range r.Fills {
		if f.Station == "" {
			return fmt.Errorf("fill missing station name")
		}
		if seen[f.Station] {
			return fmt.Errorf("duplicate fill for station %q", f.Station)
		}
		seen[f.Station] = true

		if f.Mass == nil && f.Fill == nil {
			return fmt.Errorf("fill for station %q sets neither mass nor fill", f.Station)
		}
		if f.Mass != nil && *f.Mass < 0 {
			return fmt.Errorf("fill for station %q has negative mass", f.Station)
		}
		if f.Fill != nil && *f.Fill < 0 {
			return fmt.Errorf("fill for station %q has negative fill", f.Station)
		}
	}
	return nil
}

// StationLoad is one station's contribution in a computed loadsheet.
type StationLoad struct {
	Name       string      `json:"name"`
	Kind       StationKind `json:"kind"`
	Arm        float64     `json:"arm"`
	Mass       float64     `json:"mass"`
	Moment     float64     `json:"moment"`
	Expendable bool        `json:"expendable"`
	Overflow   float64     `json:"overflow,omitempty"`
}

// EnvelopePoint is one corner of the certified envelope in (CG, weight)
// space, for the renderer that plots the boundary.
type EnvelopePoint struct {
	CG     float64 `json:"cg"`
	Weight float64 `json:"weight"`
}

// LoadsheetResponse is the full computed weight-and-balance result for a
// loadout. CG fields are nil when the corresponding mass is zero; callers
// must consult the completeness flags before trusting envelope membership.
type LoadsheetResponse struct {
	ResponseType string `json:"responseType"`
	ProfileID    string `json:"profileId"`
	ProfileName  string `json:"profileName,omitempty"`

	TotalMass         float64  `json:"totalMass"`
	TotalCG           *float64 `json:"totalCg,omitempty"`
	NonExpendableMass float64  `json:"nonExpendableMass"`
	NonExpendableCG   *float64 `json:"nonExpendableCg,omitempty"`

	TotalWithinEnvelope         bool `json:"totalWithinEnvelope"`
	NonExpendableWithinEnvelope bool `json:"nonExpendableWithinEnvelope"`
	LimitsComplete              bool `json:"limitsComplete"`
	CGComplete                  bool `json:"cgComplete"`

	Stations []StationLoad   `json:"stations"`
	Envelope []EnvelopePoint `json:"envelope,omitempty"`

	MassUnit string `json:"massUnit,omitempty"`
	ArmUnit  string `json:"armUnit,omitempty"`
}

// Validate checks invariants a computed loadsheet must satisfy before it is
// cached or served.
func (r LoadsheetResponse) Validate() error {
	if r.ProfileID == "" {
		return fmt.Errorf("loadsheet missing profile id")
	}
	if r.TotalMass < 0 {
		return fmt.Errorf("loadsheet has negative total mass")
	}
	if r.TotalMass > 0 && r.TotalCG == nil {
		return fmt.Errorf("loadsheet has positive mass but no CG")
	}
	if len(r.Envelope) != 0 && len(r.Envelope) != 4 {
		return fmt.Errorf("envelope polygon must have four corners, got %d", len(r.Envelope))
	}
	return nil
}

// LoadsheetRecord is the cacheable form of a computed loadsheet, keyed by
// profile and the canonical hash of the loadout that produced it.
type LoadsheetRecord struct {
	ProfileID   string            `json:"profileId" dynamodbav:"profileId"`
	LoadoutHash string            `json:"loadoutHash" dynamodbav:"loadoutHash"`
	Response    LoadsheetResponse `json:"response" dynamodbav:"response"`
	LastUpdated int64             `json:"lastUpdated" dynamodbav:"lastUpdated"`
	TTL         int64             `json:"ttl" dynamodbav:"ttl"`
}

// Validate checks the record is storable.
func (rec LoadsheetRecord) Validate() error {
	if rec.ProfileID == "" {
		return fmt.Errorf("record missing profile id")
	}
	if rec.LoadoutHash == "" {
		return fmt.Errorf("record missing loadout hash")
	}
	return rec.Response.Validate()
}
