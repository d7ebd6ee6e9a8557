package aegis

import (
	"github.com/go-kit/log"
)

// TrajectoryPoint is a heliocentric [x, y, z] position in AU.
type TrajectoryPoint [3]float64

// TwoBodyPropagator advances validated element sets under Keplerian
// two-body mechanics around the Sun. Stateless and safe for concurrent use.
type TwoBodyPropagator struct {
	logger log.Logger
}

// NewTwoBodyPropagator returns a propagator logging through the given
// logger (nil for none).
func NewTwoBodyPropagator(logger log.Logger) *TwoBodyPropagator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &TwoBodyPropagator{logger: logger}
}

// orbitFromElements builds the epoch orbit. The set's mean anomaly is
// used directly as the true anomaly at epoch; see OrbitalElementSet.
func orbitFromElements(set OrbitalElementSet) *Orbit {
	return NewOrbitFromOE(
		set.SemiMajorAxisAU*AU,
		set.Eccentricity,
		set.InclinationDeg,
		set.NodeDeg,
		set.ArgPeriapsisDeg,
		set.MeanAnomalyDeg,
	)
}

// propagateOrbit returns the orbit advanced by dtDays: the true anomaly
// is walked through the eccentric and mean anomalies, the mean anomaly is
// advanced by the mean motion, and Kepler's equation is solved back.
func propagateOrbit(o *Orbit, dtDays float64) (*Orbit, error) {
	if o.e >= 1 {
		return nil, errf(KindInvalidEccentricity, "two-body propagation requires e < 1: %v", o.e)
	}
	E0 := eccentricFromTrue(o.ν, o.e)
	M0 := meanFromEccentric(E0, o.e)
	M := M0 + o.MeanMotion()*dtDays*SecondsPerDay
	E, err := eccentricFromMean(M, o.e)
	if err != nil {
		return nil, err
	}
	ν := trueFromEccentric(E, o.e)
	return &Orbit{o.a, o.e, o.i, o.Ω, o.ω, ν}, nil
}

// StateAt returns the heliocentric radius (km) and velocity (km/s) of the
// body offsetDays after the set's epoch. Elements must already be
// validated; only finiteness is re-checked here.
func (p *TwoBodyPropagator) StateAt(set OrbitalElementSet, offsetDays float64) ([]float64, []float64, error) {
	if !finite(set.SemiMajorAxisAU, set.Eccentricity, set.InclinationDeg, set.NodeDeg, set.ArgPeriapsisDeg, set.MeanAnomalyDeg, set.EpochJD, offsetDays) {
		return nil, nil, errf(KindNonFiniteElement, "non-finite propagation input: set=%+v offset=%v", set, offsetDays)
	}
	o, err := propagateOrbit(orbitFromElements(set), offsetDays)
	if err != nil {
		return nil, nil, err
	}
	R, V := o.RV()
	if !finite(R[0], R[1], R[2], V[0], V[1], V[2]) {
		return nil, nil, errf(KindNonFiniteElement, "propagation produced a non-finite state at offset %v days", offsetDays)
	}
	return R, V, nil
}

// PositionAt returns the heliocentric position in AU offsetDays after the
// set's epoch.
func (p *TwoBodyPropagator) PositionAt(set OrbitalElementSet, offsetDays float64) (TrajectoryPoint, error) {
	R, _, err := p.StateAt(set, offsetDays)
	if err != nil {
		return TrajectoryPoint{}, err
	}
	return TrajectoryPoint{R[0] / AU, R[1] / AU, R[2] / AU}, nil
}
