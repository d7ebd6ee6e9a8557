package aegis

import (
	"math"

	"github.com/go-kit/log"
	"github.com/soniakeys/meeus/v3/planetposition"
)

// earthYearDays is Earth's orbital period used by the circular fallback.
const earthYearDays = 365.25

// maxFallbackRatio is the share of grid points the circular fallback may
// serve before the whole request is rejected as unreliable.
const maxFallbackRatio = 0.5

// EphemerisProvider looks up Earth's heliocentric position (AU) at a
// Julian date. Implementations may fail per call; EarthProvider's
// fallback policy compensates. Must be safe for concurrent reads.
type EphemerisProvider interface {
	PositionAt(jd float64) (TrajectoryPoint, error)
}

// VSOP87Provider serves Earth positions from the VSOP87 analytic theory.
type VSOP87Provider struct {
	planet *planetposition.V87Planet
}

// NewVSOP87Provider loads the Earth VSOP87 table from dir. The whole file
// is loaded up front so concurrent lookups share one immutable table.
func NewVSOP87Provider(dir string) (*VSOP87Provider, error) {
	planet, err := planetposition.LoadPlanetPath(planetposition.Earth, dir)
	if err != nil {
		return nil, err
	}
	return &VSOP87Provider{planet: planet}, nil
}

// NewVSOP87ProviderFromConfig loads the Earth table from the directory
// named by the AEGIS_CONFIG configuration file.
func NewVSOP87ProviderFromConfig() (*VSOP87Provider, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewVSOP87Provider(cfg.VSOP87Dir)
}

// PositionAt returns Earth's heliocentric J2000 ecliptic position in AU.
func (p *VSOP87Provider) PositionAt(jd float64) (TrajectoryPoint, error) {
	l, b, r := p.planet.Position2000(jd)
	sB, cB := math.Sincos(b.Rad())
	sL, cL := math.Sincos(l.Rad())
	pos := TrajectoryPoint{r * cB * cL, r * cB * sL, r * sB}
	if !finite(pos[0], pos[1], pos[2]) {
		return TrajectoryPoint{}, errf(KindEarthPositionUnavailable, "VSOP87 returned a non-finite position at JD %v", jd)
	}
	return pos, nil
}

// EarthProvider wraps an EphemerisProvider with the circular-orbit
// fallback and the aggregate degradation policy.
type EarthProvider struct {
	ephem  EphemerisProvider
	logger log.Logger
}

// NewEarthProvider returns an Earth position provider backed by ephem.
func NewEarthProvider(ephem EphemerisProvider, logger log.Logger) *EarthProvider {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &EarthProvider{ephem: ephem, logger: logger}
}

// positionAt serves a single grid point: ephemeris first, then the
// circular approximation anchored on the grid's first point.
func (e *EarthProvider) positionAt(jd, referenceJD float64) (TrajectoryPoint, bool, error) {
	if e.ephem != nil {
		pos, err := e.ephem.PositionAt(jd)
		if err == nil {
			return pos, false, nil
		}
		e.logger.Log("level", "warning", "subsys", "earth", "msg", "ephemeris lookup failed, using circular fallback", "jd", jd, "err", err)
	}
	days := jd - referenceJD
	if !finite(days) {
		return TrajectoryPoint{}, true, errf(KindEarthPositionUnavailable, "ephemeris and fallback both failed at JD %v", jd)
	}
	angle := 2 * math.Pi * days / earthYearDays
	pos := TrajectoryPoint{math.Cos(angle), math.Sin(angle), 0}
	if !finite(pos[0], pos[1]) {
		return TrajectoryPoint{}, true, errf(KindEarthPositionUnavailable, "ephemeris and fallback both failed at JD %v", jd)
	}
	return pos, true, nil
}

// Trajectory returns Earth's position at every grid point. If the
// fallback served more than half of the points the request fails with
// KindEphemerisDegraded rather than silently returning a mostly synthetic
// path.
func (e *EarthProvider) Trajectory(grid TimeGrid) ([]TrajectoryPoint, error) {
	if len(grid) == 0 {
		return nil, errf(KindInvalidArgument, "empty time grid")
	}
	path := make([]TrajectoryPoint, 0, len(grid))
	fallbacks := 0
	for _, jd := range grid {
		pos, degraded, err := e.positionAt(jd, grid[0])
		if err != nil {
			return nil, err
		}
		if degraded {
			fallbacks++
			ephemerisFallbacksTotal.Inc()
		}
		path = append(path, pos)
	}
	if fallbacks > 0 {
		ratio := float64(fallbacks) / float64(len(grid))
		e.logger.Log("level", "warning", "subsys", "earth", "msg", "ephemeris unavailable for part of the grid", "fallbacks", fallbacks, "points", len(grid))
		if ratio > maxFallbackRatio {
			return nil, errf(KindEphemerisDegraded, "circular fallback served %d of %d points (%.1f%%), result would be unreliable", fallbacks, len(grid), ratio*100)
		}
	}
	return path, nil
}
