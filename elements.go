package aegis

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-kit/log"
)

// Supported epoch window, Julian dates for 1900-01-01 and 2100-01-01.
// Ephemeris lookups degrade sharply outside this range.
const (
	EpochMinJD = 2415020.5
	EpochMaxJD = 2488070.5
)

// requiredElements are the short-code keys a record must carry.
var requiredElements = []string{"a", "e", "i", "om", "w", "ma"}

// OrbitalElementSet holds validated Keplerian elements at a reference
// epoch. Built once by ExtractElements and immutable afterwards.
type OrbitalElementSet struct {
	SemiMajorAxisAU float64 `json:"a"`
	Eccentricity    float64 `json:"e"`
	InclinationDeg  float64 `json:"i"`
	NodeDeg         float64 `json:"om"`
	ArgPeriapsisDeg float64 `json:"w"`
	// MeanAnomalyDeg is fed to the propagator as the true anomaly at
	// epoch. Known approximation, kept for parity with upstream results.
	MeanAnomalyDeg float64 `json:"ma"`
	EpochJD        float64 `json:"epoch"`
}

// ExtractElements parses and validates an element record into an
// OrbitalElementSet. Individual unparsable element values are skipped
// with a warning; missing required keys, a bad epoch or out-of-range
// values are fatal.
func ExtractElements(rec ElementRecord, logger log.Logger) (OrbitalElementSet, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	var set OrbitalElementSet

	epoch, err := strconv.ParseFloat(strings.TrimSpace(rec.Epoch), 64)
	if err != nil {
		return set, errf(KindInvalidEpoch, "epoch %q is not a numeric Julian date", rec.Epoch)
	}
	if !finite(epoch) {
		return set, errf(KindInvalidEpoch, "epoch %v is not finite", epoch)
	}
	if epoch < EpochMinJD || epoch > EpochMaxJD {
		return set, errf(KindEpochOutOfRange, "epoch %v outside supported range [%v, %v] (years 1900-2100)", epoch, EpochMinJD, EpochMaxJD)
	}

	values := make(map[string]float64, len(rec.Elements))
	for _, el := range rec.Elements {
		if el.Name == "" {
			logger.Log("level", "warning", "subsys", "elements", "msg", "skipping unnamed element")
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(el.Value), 64)
		if err != nil || !finite(v) {
			logger.Log("level", "warning", "subsys", "elements", "msg", "skipping unparsable element", "name", el.Name, "value", el.Value)
			continue
		}
		values[el.Name] = v
	}

	var missing []string
	for _, name := range requiredElements {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return set, errf(KindMissingElements, "missing required orbital elements: %s", strings.Join(missing, ", "))
	}

	a := values["a"]
	e := values["e"]
	i := values["i"]
	if a <= 0 {
		return set, errf(KindInvalidSemiMajorAxis, "semi-major axis must be positive: %v", a)
	}
	if e < 0 || e >= 1 {
		return set, errf(KindInvalidEccentricity, "eccentricity must be in [0, 1): %v", e)
	}
	if i < 0 || i > 180 {
		return set, errf(KindInvalidInclination, "inclination must be in [0, 180] degrees: %v", i)
	}

	set = OrbitalElementSet{
		SemiMajorAxisAU: a,
		Eccentricity:    e,
		InclinationDeg:  i,
		NodeDeg:         norm360(values["om"]),
		ArgPeriapsisDeg: norm360(values["w"]),
		MeanAnomalyDeg:  norm360(values["ma"]),
		EpochJD:         epoch,
	}
	return set, nil
}

// Validate re-checks the invariants ExtractElements establishes. Engines
// call it defensively on entry since element sets also arrive from tests
// and direct construction.
func (s OrbitalElementSet) Validate() error {
	if !finite(s.SemiMajorAxisAU, s.Eccentricity, s.InclinationDeg, s.NodeDeg, s.ArgPeriapsisDeg, s.MeanAnomalyDeg, s.EpochJD) {
		return errf(KindNonFiniteElement, "orbital element set contains NaN or Inf: %+v", s)
	}
	if s.SemiMajorAxisAU <= 0 {
		return errf(KindInvalidSemiMajorAxis, "semi-major axis must be positive: %v", s.SemiMajorAxisAU)
	}
	if s.Eccentricity < 0 || s.Eccentricity >= 1 {
		return errf(KindInvalidEccentricity, "eccentricity must be in [0, 1): %v", s.Eccentricity)
	}
	if s.InclinationDeg < 0 || s.InclinationDeg > 180 {
		return errf(KindInvalidInclination, "inclination must be in [0, 180] degrees: %v", s.InclinationDeg)
	}
	if s.EpochJD < EpochMinJD || s.EpochJD > EpochMaxJD {
		return errf(KindEpochOutOfRange, "epoch %v outside supported range [%v, %v]", s.EpochJD, EpochMinJD, EpochMaxJD)
	}
	return nil
}

// norm360 wraps an angle in degrees into [0, 360).
func norm360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
