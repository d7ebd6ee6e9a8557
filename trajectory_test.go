package aegis

import (
	"math"
	"testing"
)

// steadyEphemeris always succeeds, so trajectory tests never trip the
// degradation policy.
type steadyEphemeris struct{}

func (steadyEphemeris) PositionAt(jd float64) (TrajectoryPoint, error) {
	angle := 2 * math.Pi * math.Mod(jd, earthYearDays) / earthYearDays
	return TrajectoryPoint{math.Cos(angle), math.Sin(angle), 0}, nil
}

func TestComputeBothApophis(t *testing.T) {
	eng := NewTrajectoryEngine(steadyEphemeris{}, nil)
	res, err := eng.ComputeBoth(apophisElements(), 365)
	if err != nil {
		t.Fatalf("trajectory computation failed: %s", err)
	}
	if len(res.AsteroidPath) != 365 || len(res.EarthPath) != 365 {
		t.Fatalf("both paths must have 365 points: asteroid=%d earth=%d", len(res.AsteroidPath), len(res.EarthPath))
	}
	for i, p := range res.AsteroidPath {
		if !finite(p[0], p[1], p[2]) {
			t.Fatalf("asteroid point %d is not finite: %+v", i, p)
		}
		if r := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]); r >= 10 {
			t.Fatalf("asteroid point %d is %v AU from the Sun", i, r)
		}
	}
	for i, p := range res.EarthPath {
		if !finite(p[0], p[1], p[2]) {
			t.Fatalf("earth point %d is not finite: %+v", i, p)
		}
	}
}

func TestComputeBothDeterministic(t *testing.T) {
	eng := NewTrajectoryEngine(steadyEphemeris{}, nil)
	a, err := eng.ComputeBoth(apophisElements(), 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := eng.ComputeBoth(apophisElements(), 50)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.AsteroidPath {
		if a.AsteroidPath[i] != b.AsteroidPath[i] || a.EarthPath[i] != b.EarthPath[i] {
			t.Fatalf("repeated runs diverged at point %d", i)
		}
	}
}

func TestComputeBothSynchronized(t *testing.T) {
	eng := NewTrajectoryEngine(steadyEphemeris{}, nil)
	for _, n := range []int{2, 10, 100, 365} {
		res, err := eng.ComputeBoth(apophisElements(), n)
		if err != nil {
			t.Fatalf("numPoints=%d: %s", n, err)
		}
		if len(res.AsteroidPath) != n || len(res.EarthPath) != n {
			t.Fatalf("numPoints=%d: lengths %d/%d", n, len(res.AsteroidPath), len(res.EarthPath))
		}
	}
}

func TestComputeBothDefaultPoints(t *testing.T) {
	eng := NewTrajectoryEngine(steadyEphemeris{}, nil)
	res, err := eng.ComputeBoth(apophisElements(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.AsteroidPath) != DefaultTrajectoryPoints {
		t.Fatalf("numPoints=0 must select the default, got %d points", len(res.AsteroidPath))
	}
}

func TestComputeBothInvalidPoints(t *testing.T) {
	eng := NewTrajectoryEngine(steadyEphemeris{}, nil)
	for _, n := range []int{-1, 1, MaxGridPoints + 1} {
		if _, err := eng.ComputeBoth(apophisElements(), n); err == nil {
			t.Fatalf("numPoints=%d must be rejected", n)
		}
	}
}

func TestComputeBothRevalidatesElements(t *testing.T) {
	eng := NewTrajectoryEngine(steadyEphemeris{}, nil)
	set := apophisElements()
	set.EpochJD = 2400000.5
	if _, err := eng.ComputeBoth(set, 10); KindOf(err) != KindEpochOutOfRange {
		t.Fatalf("out-of-range epoch must be rejected, got %v", err)
	}
}

func TestComputeBothDegradedEarth(t *testing.T) {
	eng := NewTrajectoryEngine(&flakyEphemeris{failAt: func(float64) bool { return true }}, nil)
	if _, err := eng.ComputeBoth(apophisElements(), 10); KindOf(err) != KindEphemerisDegraded {
		t.Fatalf("all-fallback Earth path must fail the request, got %v", err)
	}
}
