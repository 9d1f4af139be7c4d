package wb

// Manager owns the set of stations configured for one aircraft and the two
// limit records describing its certified envelope. Expendable and
// non-expendable stations are tracked separately: the expendable list keeps
// insertion order, which defines the order ballast is dumped, and the split
// simplifies the mass and CG calculations.
//
// A Manager is not safe for concurrent mutation; a caller embedding it in a
// multi-threaded host must serialize access externally.
type Manager struct {
	nonExpendable []Station
	expendable    []Station

	// TODO: LXNAV allows for defining an intermediate limit.
	minLimit Limit
	maxLimit Limit
}

// NewManager returns a manager with no stations and unset limits.
func NewManager() *Manager {
	return &Manager{
		minLimit: UnsetLimit(),
		maxLimit: UnsetLimit(),
	}
}

// AddStation appends a copy of the station, routing it to the expendable
// list when it is drained during ballast dumps. There is no remove
// operation; reconfiguring means building a new manager.
func (m *Manager) AddStation(s Station) {
	if s.IsExpendable() {
		m.expendable = append(m.expendable, s)
	} else {
		m.nonExpendable = append(m.nonExpendable, s)
	}
}

func (m *Manager) MinLimit() Limit     { return m.minLimit }
func (m *Manager) MaxLimit() Limit     { return m.maxLimit }
func (m *Manager) SetMinLimit(l Limit) { m.minLimit = l }
func (m *Manager) SetMaxLimit(l Limit) { m.maxLimit = l }

// NonExpendableStations returns a copy of the non-expendable station list.
func (m *Manager) NonExpendableStations() []Station {
	return append([]Station(nil), m.nonExpendable...)
}

// ExpendableStations returns a copy of the expendable station list in
// insertion order, which is the intended ballast dump sequence.
func (m *Manager) ExpendableStations() []Station {
	return append([]Station(nil), m.expendable...)
}

// TotalMass is the mass of all configured stations.
func (m *Manager) TotalMass() float64 {
	var expendableMass float64
	for _, s := range m.expendable {
		expendableMass += s.Mass()
	}

	return expendableMass + m.NonExpendableMass()
}

// NonExpendableMass is the mass of all stations that will not be drained
// during ballast dumps.
func (m *Manager) NonExpendableMass() float64 {
	var mass float64
	for _, s := range m.nonExpendable {
		mass += s.Mass()
	}

	return mass
}

// TotalCenterOfGravity is the center of gravity of all configured stations.
// With zero total mass the result is NaN; callers must check TotalMass
// before trusting it.
func (m *Manager) TotalCenterOfGravity() float64 {
	var mass, moment float64

	for _, s := range m.expendable {
		mass += s.Mass()
		moment += s.Moment()
	}
	for _, s := range m.nonExpendable {
		mass += s.Mass()
		moment += s.Moment()
	}

	return moment / mass
}

// NonExpendableCenterOfGravity is the center of gravity of all stations that
// will not be drained during ballast dumps. Same NaN caveat as
// TotalCenterOfGravity.
func (m *Manager) NonExpendableCenterOfGravity() float64 {
	var mass, moment float64
	for _, s := range m.nonExpendable {
		mass += s.Mass()
		moment += s.Moment()
	}

	return moment / mass
}

// AreLimitsComplete reports whether both envelope boundary records are fully
// configured.
func (m *Manager) AreLimitsComplete() bool {
	return m.minLimit.IsComplete() && m.maxLimit.IsComplete()
}

// IsCenterOfGravityComplete reports whether the empty station and the pilot
// station are both configured and complete. A CG is only meaningful once the
// airframe's base weight and a pilot are present.
//
// TODO: Does this requirement make sense? Should CG be returned if there is
// at least one complete station, or should ALL stations be required to be
// complete?
func (m *Manager) IsCenterOfGravityComplete() bool {
	for _, s := range m.nonExpendable {
		if s.Type() != StationEmpty {
			continue
		}
		if !s.IsComplete() {
			return false
		}
		for _, p := range m.nonExpendable {
			if p.Type() == StationPilot {
				return p.IsComplete()
			}
		}
		return false
	}

	return false
}

// WithinWeightLimits reports whether weight falls between the two boundary
// weights. False whenever either limit weight is unset.
func (m *Manager) WithinWeightLimits(weight float64) bool {
	return weight <= m.maxLimit.Weight && weight >= m.minLimit.Weight
}

// WithinCGLimits reports whether cg falls between the forward and aft limits
// interpolated at the given weight.
func (m *Manager) WithinCGLimits(cg, weight float64) bool {
	forward := slopeInterceptLimit(weight, m.minLimit.Forward, m.minLimit.Weight, m.maxLimit.Forward, m.maxLimit.Weight)
	aft := slopeInterceptLimit(weight, m.minLimit.Aft, m.minLimit.Weight, m.maxLimit.Aft, m.maxLimit.Weight)

	// TODO: epsilon comparisons for these floating point ops.
	return cg >= forward && cg <= aft
}

// ForwardLimitAt returns the interpolated forward CG limit at the given
// weight, for callers plotting the envelope boundary.
func (m *Manager) ForwardLimitAt(weight float64) float64 {
	return slopeInterceptLimit(weight, m.minLimit.Forward, m.minLimit.Weight, m.maxLimit.Forward, m.maxLimit.Weight)
}

// AftLimitAt returns the interpolated aft CG limit at the given weight.
func (m *Manager) AftLimitAt(weight float64) float64 {
	return slopeInterceptLimit(weight, m.minLimit.Aft, m.minLimit.Weight, m.maxLimit.Aft, m.maxLimit.Weight)
}

// TotalWithinEnvelope reports whether the total mass is within the weight
// limits and the total CG is within the forward and aft limits.
func (m *Manager) TotalWithinEnvelope() bool {
	cg := m.TotalCenterOfGravity()
	mass := m.TotalMass()

	return m.WithinWeightLimits(mass) && m.WithinCGLimits(cg, mass)
}

// NonExpendableWithinEnvelope reports whether the aircraft remains inside
// the envelope after all expendable ballast has been dumped.
func (m *Manager) NonExpendableWithinEnvelope() bool {
	cg := m.NonExpendableCenterOfGravity()
	mass := m.NonExpendableMass()

	return m.WithinWeightLimits(mass) && m.WithinCGLimits(cg, mass)
}
