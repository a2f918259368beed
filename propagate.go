package orrery

import (
	"fmt"
	"math"
	"time"
)

// PropagateElliptical computes the heliocentric position of a body from its
// mean elements at dt, in astronomical units, remapped into the scene axis
// convention. With applyRates the secular drift rates are applied for the
// Julian centuries elapsed since J2000.0.
//
// The returned KeplerSolution carries the solver diagnostics even on success;
// a non-converged solve still yields a usable position and it is up to the
// caller to log or count it.
func PropagateElliptical(el Elements, dt time.Time, applyRates bool) ([]float64, KeplerSolution, error) {
	cur := el
	if applyRates {
		cur = el.AtCenturies(JulianCenturies(dt))
	}
	if math.IsNaN(cur.e) || cur.e < 0 || cur.e >= 1 {
		return nil, KeplerSolution{}, fmt.Errorf("eccentricity %v outside [0, 1) after secular correction at %s", cur.e, dt.Format("2006-01-02"))
	}
	if math.IsNaN(cur.a) || math.IsInf(cur.a, 0) || cur.a <= 0 {
		return nil, KeplerSolution{}, fmt.Errorf("semi-major axis %v not positive after secular correction at %s", cur.a, dt.Format("2006-01-02"))
	}
	M := Deg2rad(MeanAnomalyDeg(cur.l, cur.ϖ))
	sol, err := SolveKepler(M, cur.e)
	if err != nil {
		return nil, sol, err
	}
	ν := TrueAnomaly(sol.E, cur.e)
	r := OrbitRadius(cur.a, cur.e, sol.E)
	sinν, cosν := math.Sincos(ν)
	ω := Deg2rad(cur.ArgPeriapsisDeg())
	ecl := PQW2Ecliptic(Deg2rad(cur.i), ω, Deg2rad(cur.Ω), []float64{r * cosν, r * sinν, 0})
	return EclipticToScene(ecl), sol, nil
}
