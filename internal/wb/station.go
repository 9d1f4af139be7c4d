package wb

// StationType identifies the role of a station. Empty, pilot, and copilot
// are dry stations but are handled differently for configuration purposes.
type StationType string

const (
	StationEmpty   StationType = "EMPTY"
	StationPilot   StationType = "PILOT"
	StationCopilot StationType = "COPILOT"
	StationDry     StationType = "DRY"
	StationWet     StationType = "WET"
)

// LiquidType is the type of liquid carried by a wet station.
type LiquidType string

const (
	LiquidWater LiquidType = "WATER"
	LiquidFuel  LiquidType = "FUEL"
)

// Following the LXNAV convention, which uses a density of 0.755 falling
// between AVGAS and MOGAS.
const fuelDensity = 0.755

type stationKind uint8

const (
	kindDry stationKind = iota
	kindWet
)

// Station is a point mass at a fixed lever arm from the reference datum.
// It is either dry (fixed mass) or wet (mass derived from the current fill
// level and the density of the liquid it holds). Stations are plain values;
// a Manager stores its own copies.
type Station struct {
	name        string
	arm         float64
	stationType StationType
	kind        stationKind

	// dry
	mass float64

	// wet
	liquid          LiquidType
	maxCapacity     float64
	currentCapacity float64
	dumpTime        uint
}

// NewDryStation returns a station whose mass is set explicitly. Use for
// pilot stations, batteries, equipment, and the empty airframe.
func NewDryStation(name string, arm, mass float64, stationType StationType) Station {
	return Station{
		name:        name,
		arm:         arm,
		stationType: stationType,
		kind:        kindDry,
		mass:        mass,
	}
}

// NewWetStation returns a ballast tank station. A dumpTime greater than zero
// marks a tank that is drained during ballast dumps; zero marks fixed ballast
// such as tail trim that never drains. The tank starts empty.
func NewWetStation(name string, arm, maxCapacity float64, dumpTime uint, liquid LiquidType) Station {
	return Station{
		name:        name,
		arm:         arm,
		stationType: StationWet,
		kind:        kindWet,
		liquid:      liquid,
		maxCapacity: maxCapacity,
		dumpTime:    dumpTime,
	}
}

func (s Station) Name() string      { return s.name }
func (s Station) Arm() float64      { return s.arm }
func (s Station) Type() StationType { return s.stationType }

// IsWet reports whether the station's mass is derived from a fill level.
func (s Station) IsWet() bool { return s.kind == kindWet }

// DumpTime is the number of seconds needed to fully drain a wet station.
// Zero for dry stations and for non-drainable ballast.
func (s Station) DumpTime() uint { return s.dumpTime }

// MaxCapacity is the fill ceiling of a wet station, zero for dry stations.
func (s Station) MaxCapacity() float64 { return s.maxCapacity }

// Capacity is the current fill level of a wet station.
func (s Station) Capacity() float64 { return s.currentCapacity }

// Mass returns the station's current mass. For wet stations this is the
// current fill level converted through the liquid density; an unrecognized
// liquid falls back to water density rather than failing.
func (s Station) Mass() float64 {
	if s.kind == kindWet {
		return s.currentCapacity * density(s.liquid)
	}
	return s.mass
}

// Moment is the station's mass times its arm.
func (s Station) Moment() float64 {
	return s.Mass() * s.arm
}

// IsComplete reports whether the station carries enough data to contribute
// to a center of gravity. A dry station always does, and a wet station is
// well-defined even when empty.
func (s Station) IsComplete() bool {
	return true
}

// IsExpendable reports whether the station is drained during ballast dumps.
func (s Station) IsExpendable() bool {
	return s.kind == kindWet && s.dumpTime > 0
}

// Fill sets the tank's fill level to amount, clamped to the tank's maximum
// capacity, and returns the overflow that did not fit. There is no guard
// against negative amounts. Filling a dry station is a no-op returning zero.
func (s *Station) Fill(amount float64) float64 {
	if s.kind != kindWet {
		return 0
	}

	var overflow float64
	if amount > s.maxCapacity {
		overflow = amount - s.maxCapacity
		amount = s.maxCapacity
	}

	s.currentCapacity = amount

	return overflow
}

func density(liquid LiquidType) float64 {
	switch liquid {
	case LiquidFuel:
		return fuelDensity
	default:
		return 1
	}
}
