package aegis

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestKeplerRoundTrip(t *testing.T) {
	for _, e := range []float64{0, 0.1, 0.1914, 0.5, 0.83, 0.95} {
		for M := 0.1; M < 2*math.Pi; M += 0.7 {
			E, err := eccentricFromMean(M, e)
			if err != nil {
				t.Fatalf("e=%v M=%v: %s", e, M, err)
			}
			back := meanFromEccentric(E, e)
			if !scalar.EqualWithinAbs(back, normTwoPi(M), 1e-9) {
				t.Fatalf("e=%v M=%v: round trip gave %v", e, M, back)
			}
		}
	}
}

func TestAnomalyConversionsRoundTrip(t *testing.T) {
	for _, e := range []float64{0.01, 0.1914, 0.6} {
		for ν := 0.05; ν < 2*math.Pi; ν += 0.5 {
			E := eccentricFromTrue(ν, e)
			if !scalar.EqualWithinAbs(trueFromEccentric(E, e), ν, 1e-10) {
				t.Fatalf("e=%v ν=%v: ν→E→ν mismatch", e, ν)
			}
		}
	}
}

func TestKeplerCircular(t *testing.T) {
	E, err := eccentricFromMean(1.25, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(E, 1.25, 1e-12) {
		t.Fatalf("circular orbit: E must equal M, got %v", E)
	}
}

func TestNormTwoPi(t *testing.T) {
	if !scalar.EqualWithinAbs(normTwoPi(-math.Pi/2), 3*math.Pi/2, 1e-12) {
		t.Fatal("negative angles must wrap into [0, 2π)")
	}
	if normTwoPi(2*math.Pi) >= 2*math.Pi {
		t.Fatal("2π must wrap to 0")
	}
}
