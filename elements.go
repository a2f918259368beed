package orrery

import (
	"fmt"
	"math"
)

// Elements defines a heliocentric orbit via its mean Keplerian elements at
// the J2000.0 epoch: semi-major axis in astronomical units, eccentricity,
// and the inclination, longitude of ascending node Ω, longitude of perihelion
// ϖ = Ω + ω and mean longitude, all in degrees (the JPL table convention).
// Elements are reference data: validated once at construction, read-only
// afterwards. Secular correction produces a derived, transient copy.
type Elements struct {
	a, e, i, Ω, ϖ, l float64
	rates            *elementRates
}

// elementRates are the linear secular drift rates per Julian century, in the
// units of the element they correct.
type elementRates struct {
	da, de, di, dΩ, dϖ, dl float64
}

// NewElements validates and returns a set of orbital elements. Physical
// parameters are never clamped: a non-positive semi-major axis or an
// eccentricity outside [0, 1) is a data-entry mistake, not a value to fix.
func NewElements(a, e, i, Ω, ϖ, l float64) (Elements, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return Elements{}, fmt.Errorf("elements: semi-major axis must be positive, got %v AU", a)
	}
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return Elements{}, fmt.Errorf("elements: eccentricity must be in [0, 1), got %v", e)
	}
	for name, angle := range map[string]float64{"inclination": i, "ascending node": Ω, "longitude of perihelion": ϖ, "mean longitude": l} {
		if math.IsNaN(angle) || math.IsInf(angle, 0) {
			return Elements{}, fmt.Errorf("elements: %s is not finite (%v)", name, angle)
		}
	}
	return Elements{a, e, i, Ω, ϖ, l, nil}, nil
}

// WithRates attaches secular perturbation rates (per Julian century) and
// returns the resulting elements. Argument order matches NewElements. A
// non-finite rate would poison every position computed after the epoch, so
// rates are validated like the elements themselves.
func (el Elements) WithRates(da, de, di, dΩ, dϖ, dl float64) (Elements, error) {
	for name, rate := range map[string]float64{"da": da, "de": de, "di": di, "dΩ": dΩ, "dϖ": dϖ, "dl": dl} {
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return Elements{}, fmt.Errorf("elements: rate %s is not finite (%v)", name, rate)
		}
	}
	el.rates = &elementRates{da, de, di, dΩ, dϖ, dl}
	return el, nil
}

// AtCenturies returns the elements corrected for secular drift at T Julian
// centuries after J2000.0. Without rates, the receiver is returned unchanged.
// The derived copy carries no rates: it is valid for that instant only.
func (el Elements) AtCenturies(T float64) Elements {
	if el.rates == nil {
		return el
	}
	r := el.rates
	return Elements{el.a + r.da*T, el.e + r.de*T, el.i + r.di*T, el.Ω + r.dΩ*T, el.ϖ + r.dϖ*T, el.l + r.dl*T, nil}
}

// SemiMajorAxis returns a in astronomical units.
func (el Elements) SemiMajorAxis() float64 { return el.a }

// Eccentricity returns e.
func (el Elements) Eccentricity() float64 { return el.e }

// ArgPeriapsisDeg returns the argument of periapsis ω = ϖ - Ω in degrees.
func (el Elements) ArgPeriapsisDeg() float64 {
	return NormalizeDeg(el.ϖ - el.Ω)
}

// Perihelion returns the closest distance to the focus, a(1-e), in AU.
func (el Elements) Perihelion() float64 {
	return el.a * (1 - el.e)
}

// Aphelion returns the farthest distance from the focus, a(1+e), in AU.
func (el Elements) Aphelion() float64 {
	return el.a * (1 + el.e)
}

// String implements the Stringer interface.
func (el Elements) String() string {
	return fmt.Sprintf("a=%.5f AU e=%.5f i=%.3f Ω=%.3f ϖ=%.3f L=%.3f", el.a, el.e, el.i, el.Ω, el.ϖ, el.l)
}
