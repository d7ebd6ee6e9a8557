package aegis

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// SunGM is the Sun's gravitational parameter in km³/s².
	SunGM = 1.32712440017987e11
	// SecondsPerDay converts day-based offsets to the km/s world.
	SecondsPerDay = 86400.0

	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
)

// Orbit is a heliocentric two-body orbit. Distances in km, angles in
// radians. Immutable; propagation produces new values.
type Orbit struct {
	a, e, i, Ω, ω, ν float64
}

// SemiParameter returns the semi-latus rectum.
func (o Orbit) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// MeanMotion returns the mean motion in rad/s.
func (o Orbit) MeanMotion() float64 {
	return math.Sqrt(SunGM / math.Pow(o.a, 3))
}

// Tildeω returns the longitude of periapsis.
func (o Orbit) Tildeω() float64 {
	return math.Mod(o.ω+o.Ω, 2*math.Pi)
}

// TrueLongλ returns the approximate true longitude (cf. Vallado page 103).
func (o Orbit) TrueLongλ() float64 {
	return math.Mod(o.ω+o.Ω+o.ν, 2*math.Pi)
}

// ArgLatitudeU returns the argument of latitude.
func (o Orbit) ArgLatitudeU() float64 {
	return math.Mod(o.ν+o.ω, 2*math.Pi)
}

// RNorm returns the norm of the radius vector without computing the vector.
func (o Orbit) RNorm() float64 {
	return o.SemiParameter() / (1 + o.e*math.Cos(o.ν))
}

// Elements returns the six classical elements, angles in radians.
func (o Orbit) Elements() (a, e, i, Ω, ω, ν float64) {
	return o.a, o.e, o.i, o.Ω, o.ω, o.ν
}

// RV returns the heliocentric radius (km) and velocity (km/s) vectors.
func (o Orbit) RV() ([]float64, []float64) {
	p := o.SemiParameter()
	// Support special orbits.
	ν := o.ν
	ω := o.ω
	Ω := o.Ω
	if o.e < eccentricityε {
		ω = 0
		if o.i < angleε {
			// Circular equatorial
			Ω = 0
			ν = o.TrueLongλ()
		} else {
			// Circular inclined
			ν = o.ArgLatitudeU()
		}
	} else if o.i < angleε {
		Ω = 0
		ω = o.Tildeω()
	}

	sinν, cosν := math.Sincos(ν)
	R := make([]float64, 3)
	R[0] = p * cosν / (1 + o.e*cosν)
	R[1] = p * sinν / (1 + o.e*cosν)
	R[2] = 0
	R = PQW2ECI(o.i, ω, Ω, R)

	V := make([]float64, 3)
	V[0] = -math.Sqrt(SunGM/p) * sinν
	V[1] = math.Sqrt(SunGM/p) * (o.e + cosν)
	V[2] = 0
	V = PQW2ECI(o.i, ω, Ω, V)
	return R, V
}

// R returns the radius vector in km.
func (o Orbit) R() []float64 {
	R, _ := o.RV()
	return R
}

// V returns the velocity vector in km/s.
func (o Orbit) V() []float64 {
	_, V := o.RV()
	return V
}

// NewOrbitFromOE creates a heliocentric orbit from classical elements.
// WARNING: Angles must be in degrees not radian; a is in km.
func NewOrbitFromOE(a, e, i, Ω, ω, ν float64) *Orbit {
	// Making an approximation for circular and equatorial orbits.
	if e < eccentricityε {
		e = eccentricityε
	}
	if i < angleε*180/math.Pi {
		i = angleε * 180 / math.Pi
	}
	return &Orbit{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(ν)}
}

// NewOrbitFromRV returns the heliocentric orbit matching the R (km) and
// V (km/s) state vectors. From Vallado's RV2COE, page 113.
func NewOrbitFromRV(R, V []float64) *Orbit {
	hVec := cross(R, V)
	n := cross([]float64{0, 0, 1}, hVec)
	v := norm(V)
	r := norm(R)
	ξ := (v*v)/2 - SunGM/r
	a := -SunGM / (2 * ξ)
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = ((v*v-SunGM/r)*R[i] - dot(R, V)*V[i]) / SunGM
	}
	e := norm(eVec)
	i := math.Acos(hVec[2] / norm(hVec))
	ω := math.Acos(dot(n, eVec) / (norm(n) * e))
	if math.IsNaN(ω) {
		ω = 0
	}
	if eVec[2] < 0 {
		ω = 2*math.Pi - ω
	}
	Ω := math.Acos(n[0] / norm(n))
	if math.IsNaN(Ω) {
		Ω = 0
	}
	if n[1] < 0 {
		Ω = 2*math.Pi - Ω
	}
	cosν := dot(eVec, R) / (e * r)
	if abscosν := math.Abs(cosν); abscosν > 1 && scalar.EqualWithinAbs(abscosν, 1, 1e-12) {
		cosν = sign(cosν) // Fix the rounding error instead of letting Acos go NaN.
	}
	ν := math.Acos(cosν)
	if dot(R, V) < 0 {
		ν = 2*math.Pi - ν
	}
	// Fix rounding errors.
	i = math.Mod(i, 2*math.Pi)
	Ω = math.Mod(Ω, 2*math.Pi)
	ω = math.Mod(ω, 2*math.Pi)
	ν = math.Mod(ν, 2*math.Pi)
	return &Orbit{a, e, i, Ω, ω, ν}
}
