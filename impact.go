package aegis

import "math"

// Impact input domains. Bounds are sanity checks, not physics: the
// largest known asteroids are ~500 km across, iron meteorites reach
// ~7800 kg/m³ and typical impact velocities are 10-30 km/s.
const (
	MaxDiameterKm              = 1000.0
	MaxVelocityKps             = 100.0
	MaxDensityKgM3             = 20000.0
	DefaultAsteroidDensityKgM3 = 3000.0
	DefaultTargetDensityKgM3   = 2500.0
)

// Crater scaling law D = K·(E/(ρ·g))^(1/3.4). K and the exponent are
// empirical fits for complex craters in rock, not derived physics; do not
// "fix" them, downstream numeric parity depends on these exact values.
const (
	craterScalingConstant = 0.25
	craterScalingExponent = 1.0 / 3.4
	surfaceGravity        = 9.81
	joulesPerMegatonTNT   = 4.184e15
)

// ImpactParameters are the raw physical inputs of an impact computation.
// Zero densities select the defaults.
type ImpactParameters struct {
	DiameterKm          float64 `json:"diameter_km"`
	VelocityKps         float64 `json:"velocity_kps"`
	AsteroidDensityKgM3 float64 `json:"asteroid_density_kg_m3"`
	TargetDensityKgM3   float64 `json:"target_density_kg_m3"`
}

// ImpactResult holds the derived effects, all strictly positive finite.
type ImpactResult struct {
	MassKg               float64 `json:"massKg"`
	ImpactEnergyJoules   float64 `json:"impactEnergyJoules"`
	CraterDiameterMeters float64 `json:"craterDiameterMeters"`
}

// FormattedImpact is the presentation shape of an ImpactResult: crater
// meters rounded to 2 decimals, kilometers to 4, megatons to 2.
type FormattedImpact struct {
	CraterDiameterMeters float64 `json:"craterDiameterMeters"`
	CraterDiameterKm     float64 `json:"craterDiameterKm"`
	ImpactEnergyJoules   float64 `json:"impactEnergyJoules"`
	ImpactEnergyMegatons float64 `json:"impactEnergyMegatons"`
	MassKg               float64 `json:"massKg"`
}

// Mass returns the mass in kg of a spherical body of the given diameter
// (km) and density (kg/m³, 0 selects the default).
func Mass(diameterKm, densityKgM3 float64) (float64, error) {
	if densityKgM3 == 0 {
		densityKgM3 = DefaultAsteroidDensityKgM3
	}
	if err := validateDiameter(diameterKm); err != nil {
		return 0, err
	}
	if err := validateDensity("density", densityKgM3); err != nil {
		return 0, err
	}
	radiusM := diameterKm * 1000.0 / 2.0
	volumeM3 := (4.0 / 3.0) * math.Pi * radiusM * radiusM * radiusM
	return densityKgM3 * volumeM3, nil
}

// KineticEnergy returns 0.5·m·v² in joules for a mass in kg and a
// velocity in km/s. Only positivity is required here; the velocity upper
// bound is enforced by ComputeImpact.
func KineticEnergy(massKg, velocityKps float64) (float64, error) {
	if !finite(massKg) || massKg <= 0 {
		return 0, errf(KindInvalidImpactParameter, "mass must be a positive finite number of kg: %v", massKg)
	}
	if !finite(velocityKps) || velocityKps <= 0 {
		return 0, errf(KindInvalidImpactParameter, "velocity must be a positive finite number of km/s: %v", velocityKps)
	}
	velocityMs := velocityKps * 1000.0
	return 0.5 * massKg * velocityMs * velocityMs, nil
}

// CraterDiameter estimates the final crater diameter in meters from the
// impact energy (J) and target density (kg/m³, 0 selects the default).
func CraterDiameter(energyJoules, targetDensityKgM3 float64) (float64, error) {
	if targetDensityKgM3 == 0 {
		targetDensityKgM3 = DefaultTargetDensityKgM3
	}
	if !finite(energyJoules) || energyJoules <= 0 {
		return 0, errf(KindInvalidImpactParameter, "kinetic energy must be a positive finite number of J: %v", energyJoules)
	}
	if !finite(targetDensityKgM3) || targetDensityKgM3 <= 0 {
		return 0, errf(KindInvalidImpactParameter, "target density must be a positive finite number of kg/m³: %v", targetDensityKgM3)
	}
	ratio := energyJoules / (targetDensityKgM3 * surfaceGravity)
	return craterScalingConstant * math.Pow(ratio, craterScalingExponent), nil
}

// ComputeImpact validates all parameters up front, then chains
// mass → kinetic energy → crater diameter. Unlike the trajectory path
// there is no best-effort mode here: any out-of-domain input fails the
// whole computation before any stage runs.
func ComputeImpact(p ImpactParameters) (res ImpactResult, err error) {
	defer func() { impactComputationsTotal.WithLabelValues(outcomeOf(err)).Inc() }()

	if p.AsteroidDensityKgM3 == 0 {
		p.AsteroidDensityKgM3 = DefaultAsteroidDensityKgM3
	}
	if p.TargetDensityKgM3 == 0 {
		p.TargetDensityKgM3 = DefaultTargetDensityKgM3
	}
	if err = validateDiameter(p.DiameterKm); err != nil {
		return res, err
	}
	if err = validateVelocity(p.VelocityKps); err != nil {
		return res, err
	}
	if err = validateDensity("asteroid density", p.AsteroidDensityKgM3); err != nil {
		return res, err
	}
	if err = validateDensity("target density", p.TargetDensityKgM3); err != nil {
		return res, err
	}

	mass, err := Mass(p.DiameterKm, p.AsteroidDensityKgM3)
	if err != nil {
		return res, err
	}
	energy, err := KineticEnergy(mass, p.VelocityKps)
	if err != nil {
		return res, err
	}
	crater, err := CraterDiameter(energy, p.TargetDensityKgM3)
	if err != nil {
		return res, err
	}
	return ImpactResult{MassKg: mass, ImpactEnergyJoules: energy, CraterDiameterMeters: crater}, nil
}

// FormatImpactResult rounds an ImpactResult for presentation. Not
// physics: the unrounded result stays authoritative.
func FormatImpactResult(r ImpactResult) FormattedImpact {
	craterM := round2(r.CraterDiameterMeters)
	return FormattedImpact{
		CraterDiameterMeters: craterM,
		CraterDiameterKm:     math.Round(craterM/1000.0*1e4) / 1e4,
		ImpactEnergyJoules:   r.ImpactEnergyJoules,
		ImpactEnergyMegatons: round2(r.ImpactEnergyJoules / joulesPerMegatonTNT),
		MassKg:               r.MassKg,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validateDiameter(diameterKm float64) error {
	if !finite(diameterKm) {
		return errf(KindInvalidImpactParameter, "diameter must be a finite number of km: %v", diameterKm)
	}
	if diameterKm <= 0 {
		return errf(KindInvalidImpactParameter, "diameter must be positive: %v km", diameterKm)
	}
	if diameterKm > MaxDiameterKm {
		return errf(KindInvalidImpactParameter, "diameter too large: %v km, maximum allowed is %v km", diameterKm, MaxDiameterKm)
	}
	return nil
}

func validateVelocity(velocityKps float64) error {
	if !finite(velocityKps) {
		return errf(KindInvalidImpactParameter, "velocity must be a finite number of km/s: %v", velocityKps)
	}
	if velocityKps <= 0 {
		return errf(KindInvalidImpactParameter, "velocity must be positive: %v km/s", velocityKps)
	}
	if velocityKps > MaxVelocityKps {
		return errf(KindInvalidImpactParameter, "velocity too high: %v km/s, maximum allowed is %v km/s", velocityKps, MaxVelocityKps)
	}
	return nil
}

func validateDensity(field string, densityKgM3 float64) error {
	if !finite(densityKgM3) {
		return errf(KindInvalidImpactParameter, "%s must be a finite number of kg/m³: %v", field, densityKgM3)
	}
	if densityKgM3 <= 0 {
		return errf(KindInvalidImpactParameter, "%s must be positive: %v kg/m³", field, densityKgM3)
	}
	if densityKgM3 > MaxDensityKgM3 {
		return errf(KindInvalidImpactParameter, "%s too high: %v kg/m³, maximum allowed is %v kg/m³", field, densityKgM3, MaxDensityKgM3)
	}
	return nil
}
