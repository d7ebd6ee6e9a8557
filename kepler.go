package aegis

import (
	"fmt"
	"math"
)

const (
	keplerMaxIterations = 50
	keplerTolerance     = 1e-12
)

// eccentricFromTrue converts a true anomaly to the eccentric anomaly.
func eccentricFromTrue(ν, e float64) float64 {
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	sinE := math.Sqrt(1-e*e) * sinν / denom
	cosE := (e + cosν) / denom
	return normTwoPi(math.Atan2(sinE, cosE))
}

// meanFromEccentric applies Kepler's equation M = E - e·sin(E).
func meanFromEccentric(E, e float64) float64 {
	return normTwoPi(E - e*math.Sin(E))
}

// eccentricFromMean solves Kepler's equation for E via Newton-Raphson.
// Returns a non-convergence error instead of a half-iterated angle; the
// trajectory loops recover from it per point.
func eccentricFromMean(M, e float64) (float64, error) {
	M = normTwoPi(M)
	E := M
	if e > 0.8 {
		// Newton from M diverges for high eccentricities.
		E = math.Pi
	}
	for iter := 0; iter < keplerMaxIterations; iter++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		delta := f / fp
		E -= delta
		if math.Abs(delta) < keplerTolerance {
			return normTwoPi(E), nil
		}
	}
	return 0, fmt.Errorf("kepler solver did not converge after %d iterations (M=%v e=%v)", keplerMaxIterations, M, e)
}

// trueFromEccentric converts an eccentric anomaly to the true anomaly.
func trueFromEccentric(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	sinν := math.Sqrt(1-e*e) * sinE
	cosν := cosE - e
	return normTwoPi(math.Atan2(sinν, cosν))
}

// normTwoPi wraps an angle in radians into [0, 2π).
func normTwoPi(a float64) float64 {
	m := math.Mod(a, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}
