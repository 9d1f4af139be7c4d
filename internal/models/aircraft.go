package models

import "fmt"

type Source string

const (
	SourceFactory  Source = "FACTORY"
	SourceOperator Source = "OPERATOR"
)

// StationKind mirrors the station roles understood by the balance core.
type StationKind string

const (
	StationKindEmpty   StationKind = "EMPTY"
	StationKindPilot   StationKind = "PILOT"
	StationKindCopilot StationKind = "COPILOT"
	StationKindDry     StationKind = "DRY"
	StationKindWet     StationKind = "WET"
)

// Liquid selects the density used to convert a tank's fill level to mass.
type Liquid string

const (
	LiquidWater Liquid = "WATER"
	LiquidFuel  Liquid = "FUEL"
)

// StationTemplate describes one loading station of an aircraft profile.
// Dry kinds carry an optional factory mass (pilot stations usually leave it
// nil, to be supplied per flight); wet kinds carry tank geometry instead.
type StationTemplate struct {
	Name        string      `json:"name"`
	Arm         float64     `json:"arm"`
	Kind        StationKind `json:"kind"`
	Mass        *float64    `json:"mass,omitempty"`
	MaxCapacity *float64    `json:"maxCapacity,omitempty"`
	DumpTime    *int        `json:"dumpTime,omitempty"`
	Liquid      *Liquid     `json:"liquid,omitempty"`
}

// IsWet reports whether the template describes a ballast tank.
func (st StationTemplate) IsWet() bool {
	return st.Kind == StationKindWet
}

// LimitRecord is one boundary of the certified envelope as published in the
// catalog. Nil fields mean the manufacturer left them unspecified.
type LimitRecord struct {
	Weight  *float64 `json:"weight,omitempty"`
	Forward *float64 `json:"forward,omitempty"`
	Aft     *float64 `json:"aft,omitempty"`
}

// AircraftProfile is one certified aircraft's loading data as served by the
// catalog origin.
type AircraftProfile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Manufacturer string            `json:"manufacturer"`
	Class        string            `json:"class,omitempty"`
	Source       Source            `json:"source"`
	Stations     []StationTemplate `json:"stations"`
	MinLimit     LimitRecord       `json:"minLimit"`
	MaxLimit     LimitRecord       `json:"maxLimit"`
	MassUnit     string            `json:"massUnit,omitempty"`
	ArmUnit      string            `json:"armUnit,omitempty"`
}

// Validate checks structural sanity of a catalog profile. Incomplete limits
// are allowed (the balance core reports them as such); malformed stations
// are not.
func (p AircraftProfile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("profile %s missing name", p.ID)
	}

	seen := make(map[string]bool, len(p.Stations))
	for _, st := range p.Stations {
		if st.Name == "" {
			return fmt.Errorf("profile %s: station missing name", p.ID)
		}
		if seen[st.Name] {
			return fmt.Errorf("profile %s: duplicate station %q", p.ID, st.Name)
		}
		seen[st.Name] = true

		switch st.Kind {
		case StationKindEmpty, StationKindPilot, StationKindCopilot, StationKindDry:
			if st.MaxCapacity != nil || st.DumpTime != nil || st.Liquid != nil {
				return fmt.Errorf("profile %s: dry station %q carries tank fields", p.ID, st.Name)
			}
		case StationKindWet:
			if st.MaxCapacity == nil || *st.MaxCapacity < 0 {
				return fmt.Errorf("profile %s: wet station %q needs a non-negative maxCapacity", p.ID, st.Name)
			}
			if st.DumpTime != nil && *st.DumpTime < 0 {
				return fmt.Errorf("profile %s: wet station %q has negative dumpTime", p.ID, st.Name)
			}
		default:
			return fmt.Errorf("profile %s: station %q has invalid kind %q", p.ID, st.Name, st.Kind)
		}
	}

	if err := validateLimitOrder(p.MinLimit, p.MaxLimit); err != nil {
		return fmt.Errorf("profile %s: %w", p.ID, err)
	}

	return nil
}

func validateLimitOrder(minLimit, maxLimit LimitRecord) error {
	if minLimit.Weight != nil && maxLimit.Weight != nil && *minLimit.Weight > *maxLimit.Weight {
		return fmt.Errorf("min limit weight %v above max limit weight %v", *minLimit.Weight, *maxLimit.Weight)
	}
	return nil
}

// ProfileCatalog is the document served by the catalog origin.
type ProfileCatalog struct {
	Profiles []AircraftProfile `json:"profiles"`
}
