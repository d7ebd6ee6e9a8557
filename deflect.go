package aegis

import (
	"github.com/go-kit/log"
)

// deflectionSpanDays is the window sampled after the maneuver.
const deflectionSpanDays = 365.0

// OrbitScalars are the element scalars reported for an orbit before and
// after a maneuver. Semi-major axis in AU, angles in degrees.
type OrbitScalars struct {
	SemiMajorAxisAU float64 `json:"a"`
	Eccentricity    float64 `json:"e"`
	InclinationDeg  float64 `json:"i"`
	NodeDeg         float64 `json:"raan"`
	ArgPeriapsisDeg float64 `json:"argp"`
	TrueAnomalyDeg  float64 `json:"nu"`
}

// DeflectionResult describes a prograde velocity-perturbation maneuver:
// the orbit it started from, the orbit it produced and the post-maneuver
// path. The path may be shorter than requested when single points fail to
// propagate.
type DeflectionResult struct {
	DeltaVMps          float64           `json:"delta_v_applied_mps"`
	DeflectionTimeDays float64           `json:"deflection_time_days"`
	Original           OrbitScalars      `json:"original_elements"`
	Deflected          OrbitScalars      `json:"deflected_elements"`
	Path               []TrajectoryPoint `json:"deflected_path"`
}

// DeflectionSimulator applies impulsive prograde burns and re-derives the
// resulting orbit. Stateless; safe for concurrent use.
type DeflectionSimulator struct {
	prop   *TwoBodyPropagator
	logger log.Logger
}

// NewDeflectionSimulator returns a simulator. logger may be nil.
func NewDeflectionSimulator(logger log.Logger) *DeflectionSimulator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &DeflectionSimulator{
		prop:   NewTwoBodyPropagator(log.With(logger, "subsys", "propagate")),
		logger: logger,
	}
}

// Deflect propagates the body to epoch+daysFromEpoch, adds deltaVMps
// along the velocity unit vector (prograde burn only, no radial or
// normal component), rebuilds the orbit from the post-burn state vector
// and samples numPoints across 365 days from the maneuver instant.
// Per-point propagation failures during sampling are skipped, shortening
// the path; failures before the burn are fatal.
func (d *DeflectionSimulator) Deflect(set OrbitalElementSet, deltaVMps, daysFromEpoch float64, numPoints int) (res *DeflectionResult, err error) {
	defer func() { deflectionsTotal.WithLabelValues(outcomeOf(err)).Inc() }()

	if !finite(deltaVMps) || deltaVMps <= 0 {
		return nil, errf(KindInvalidArgument, "deltaV must be a positive finite number of m/s: %v", deltaVMps)
	}
	if !finite(daysFromEpoch) || daysFromEpoch <= 0 {
		return nil, errf(KindInvalidArgument, "daysFromEpoch must be a positive finite number: %v", daysFromEpoch)
	}
	if numPoints == 0 {
		numPoints = DefaultTrajectoryPoints
	}
	if numPoints < MinGridPoints || numPoints > MaxGridPoints {
		return nil, errf(KindInvalidPointCount, "point count %d outside [%d, %d]", numPoints, MinGridPoints, MaxGridPoints)
	}
	if err := set.Validate(); err != nil {
		return nil, wrapf(KindDeflectionFailed, err, "invalid element set")
	}

	R, V, err := d.prop.StateAt(set, daysFromEpoch)
	if err != nil {
		return nil, wrapf(KindDeflectionFailed, err, "propagation to the maneuver instant failed")
	}

	// Prograde burn: the increment points along the current velocity.
	vUnit := unit(V)
	deltaVKps := deltaVMps / 1000.0
	burned := make([]float64, 3)
	for i := 0; i < 3; i++ {
		burned[i] = V[i] + deltaVKps*vUnit[i]
	}

	deflected := NewOrbitFromRV(R, burned)

	step := deflectionSpanDays / float64(numPoints)
	path := make([]TrajectoryPoint, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		o, perr := propagateOrbit(deflected, float64(i)*step)
		if perr != nil {
			d.logger.Log("level", "warning", "subsys", "deflect", "msg", "skipping point, propagation failed", "index", i, "err", perr)
			continue
		}
		pR := o.R()
		path = append(path, TrajectoryPoint{pR[0] / AU, pR[1] / AU, pR[2] / AU})
	}

	res = &DeflectionResult{
		DeltaVMps:          deltaVMps,
		DeflectionTimeDays: daysFromEpoch,
		Original: OrbitScalars{
			SemiMajorAxisAU: set.SemiMajorAxisAU,
			Eccentricity:    set.Eccentricity,
			InclinationDeg:  set.InclinationDeg,
			NodeDeg:         set.NodeDeg,
			ArgPeriapsisDeg: set.ArgPeriapsisDeg,
			TrueAnomalyDeg:  set.MeanAnomalyDeg,
		},
		Deflected: scalarsFromOrbit(deflected),
		Path:      path,
	}
	d.logger.Log("level", "info", "subsys", "deflect", "msg", "deflection computed", "points", len(path), "a_au", res.Deflected.SemiMajorAxisAU)
	return res, nil
}

func scalarsFromOrbit(o *Orbit) OrbitScalars {
	a, e, i, Ω, ω, ν := o.Elements()
	return OrbitScalars{
		SemiMajorAxisAU: a / AU,
		Eccentricity:    e,
		InclinationDeg:  Rad2deg(i),
		NodeDeg:         Rad2deg(Ω),
		ArgPeriapsisDeg: Rad2deg(ω),
		TrueAnomalyDeg:  Rad2deg(ν),
	}
}
