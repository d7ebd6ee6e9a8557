package aegis

import (
	"github.com/go-kit/log"
)

const (
	// DefaultTrajectoryPoints is used when callers pass numPoints == 0.
	DefaultTrajectoryPoints = 365
	// trajectorySpanDays is the 2-year window sampled from the epoch.
	trajectorySpanDays = 2 * 365.25
)

// SynchronizedTrajectoryResult holds two index-aligned heliocentric
// paths: AsteroidPath[i] and EarthPath[i] refer to the same instant of
// one shared time grid.
type SynchronizedTrajectoryResult struct {
	AsteroidPath []TrajectoryPoint `json:"asteroid_path"`
	EarthPath    []TrajectoryPoint `json:"earth_path"`
}

// TrajectoryEngine computes synchronized asteroid and Earth trajectories.
// Stateless between calls; safe for concurrent use as long as the
// ephemeris provider is.
type TrajectoryEngine struct {
	prop   *TwoBodyPropagator
	earth  *EarthProvider
	logger log.Logger
}

// NewTrajectoryEngine builds an engine around the given ephemeris
// provider. logger may be nil.
func NewTrajectoryEngine(ephem EphemerisProvider, logger log.Logger) *TrajectoryEngine {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &TrajectoryEngine{
		prop:   NewTwoBodyPropagator(log.With(logger, "subsys", "propagate")),
		earth:  NewEarthProvider(ephem, logger),
		logger: logger,
	}
}

// ComputeBoth computes the asteroid and Earth paths over one shared time
// grid spanning two years from the set's epoch. numPoints == 0 selects
// DefaultTrajectoryPoints. The single shared grid is the synchronization
// invariant: the two paths are never sampled from independently generated
// time arrays.
func (eng *TrajectoryEngine) ComputeBoth(set OrbitalElementSet, numPoints int) (res *SynchronizedTrajectoryResult, err error) {
	defer func() { trajectoriesTotal.WithLabelValues(outcomeOf(err)).Inc() }()

	if numPoints == 0 {
		numPoints = DefaultTrajectoryPoints
	}
	if numPoints < 0 || numPoints > MaxGridPoints {
		return nil, errf(KindInvalidArgument, "numPoints must be a positive integer at most %d: %d", MaxGridPoints, numPoints)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	grid, err := BuildTimeGrid(set.EpochJD, trajectorySpanDays, numPoints)
	if err != nil {
		return nil, err
	}

	asteroid := make([]TrajectoryPoint, 0, len(grid))
	for i, jd := range grid {
		pos, perr := eng.prop.PositionAt(set, jd-set.EpochJD)
		if perr != nil {
			// Best effort for single points: reuse the previous position,
			// or the origin when the very first point fails.
			eng.logger.Log("level", "warning", "subsys", "trajectory", "msg", "propagation failed, substituting previous point", "index", i, "jd", jd, "err", perr)
			if len(asteroid) > 0 {
				pos = asteroid[len(asteroid)-1]
			} else {
				pos = TrajectoryPoint{}
			}
		}
		asteroid = append(asteroid, pos)
	}

	earth, err := eng.earth.Trajectory(grid)
	if err != nil {
		return nil, err
	}

	// The core scientific guarantee of the engine; unreachable if the
	// loops above are correct, asserted anyway.
	if len(asteroid) != numPoints || len(earth) != numPoints {
		return nil, errf(KindSynchronizationFailure, "path length mismatch: asteroid=%d earth=%d expected=%d", len(asteroid), len(earth), numPoints)
	}

	eng.logger.Log("level", "info", "subsys", "trajectory", "msg", "computed synchronized trajectories", "points", numPoints, "epoch", set.EpochJD)
	return &SynchronizedTrajectoryResult{AsteroidPath: asteroid, EarthPath: earth}, nil
}
