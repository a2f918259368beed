package orrery

import (
	"fmt"
	"math"
)

const (
	// keplerε is the convergence tolerance on the eccentric anomaly step.
	keplerε = 1e-8
	// keplerMaxIter bounds the Newton-Raphson loop on pathological inputs.
	keplerMaxIter = 50
)

// KeplerSolution carries the eccentric anomaly and the convergence
// diagnostics of one Kepler-equation solve. A non-converged solution still
// holds the best estimate: a slightly-off angle is visually imperceptible
// while a crash is not, so callers decide whether to log or ignore.
type KeplerSolution struct {
	M          float64 // input mean anomaly, radians
	Ecc        float64 // input eccentricity
	E          float64 // eccentric anomaly, radians
	Iterations int
	Residual   float64 // |E - e·sinE - M| at exit, radians
	Converged  bool
}

// SolveKepler solves the Kepler equation M = E - e·sinE for the eccentric
// anomaly E via Newton-Raphson. M is in radians, e must be in [0, 1):
// parabolic and hyperbolic orbits are not supported.
//
// The naive E₀ = M starter diverges for high-eccentricity orbits, so Danby's
// starter sign(sinM)·π is used for e ≥ 0.8.
func SolveKepler(M, e float64) (KeplerSolution, error) {
	if math.IsNaN(M) || math.IsInf(M, 0) {
		return KeplerSolution{}, fmt.Errorf("kepler: mean anomaly is not finite (M=%v)", M)
	}
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return KeplerSolution{}, fmt.Errorf("kepler: eccentricity %v outside [0, 1)", e)
	}
	E := M
	if e >= 0.8 {
		E = sign(math.Sin(M)) * math.Pi
	}
	sol := KeplerSolution{M: M, Ecc: e}
	for i := 0; i < keplerMaxIter; i++ {
		ΔE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= ΔE
		sol.Iterations = i + 1
		if math.Abs(ΔE) < keplerε {
			sol.Converged = true
			break
		}
	}
	sol.E = E
	sol.Residual = math.Abs(E - e*math.Sin(E) - M)
	return sol, nil
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν, both in
// radians. The half-angle atan2 form is numerically stable near E = π.
func TrueAnomaly(E, e float64) float64 {
	sinE2, cosE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sinE2, math.Sqrt(1-e)*cosE2)
}

// OrbitRadius returns the orbital radius at eccentric anomaly E for an orbit
// of semi-major axis a and eccentricity e, in the units of a.
func OrbitRadius(a, e, E float64) float64 {
	return a * (1 - e*math.Cos(E))
}

// MeanAnomalyDeg returns the mean anomaly in degrees in [0, 360) from the
// mean longitude L and the longitude of perihelion ϖ = Ω + ω, both in degrees.
func MeanAnomalyDeg(L, ϖ float64) float64 {
	return NormalizeDeg(L - ϖ)
}
