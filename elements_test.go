package orrery

import (
	"math"
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestNewElementsValidation(t *testing.T) {
	cases := []struct {
		a, e, i, Ω, ϖ, l float64
		wants            string
	}{
		{0, 0.1, 0, 0, 0, 0, "semi-major"},
		{-1, 0.1, 0, 0, 0, 0, "semi-major"},
		{math.NaN(), 0.1, 0, 0, 0, 0, "semi-major"},
		{1, -0.1, 0, 0, 0, 0, "eccentricity"},
		{1, 1.0, 0, 0, 0, 0, "eccentricity"},
		{1, math.NaN(), 0, 0, 0, 0, "eccentricity"},
		{1, 0.1, math.NaN(), 0, 0, 0, "not finite"},
		{1, 0.1, 0, 0, math.Inf(1), 0, "not finite"},
	}
	for _, c := range cases {
		_, err := NewElements(c.a, c.e, c.i, c.Ω, c.ϖ, c.l)
		if err == nil {
			t.Fatalf("elements (%v, %v, ...) did not error", c.a, c.e)
		}
		if !strings.Contains(err.Error(), c.wants) {
			t.Fatalf("error %q does not mention %q", err, c.wants)
		}
	}
	if _, err := NewElements(1.00000261, 0.01671123, 0, 0, 102.93768193, 100.46457166); err != nil {
		t.Fatal(err)
	}
}

func TestElementsApsides(t *testing.T) {
	el, err := NewElements(1.5, 0.2, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(el.Perihelion(), 1.2, 1e-12) {
		t.Fatalf("perihelion = %f", el.Perihelion())
	}
	if !floats.EqualWithinAbs(el.Aphelion(), 1.8, 1e-12) {
		t.Fatalf("aphelion = %f", el.Aphelion())
	}
	if el.Perihelion() >= el.Aphelion() {
		t.Fatal("perihelion not smaller than aphelion")
	}
}

func TestElementsArgPeriapsis(t *testing.T) {
	if ω := Earth.ArgPeriapsisDeg(); !floats.EqualWithinAbs(ω, 102.93768193, 1e-6) {
		t.Fatalf("Earth ω = %f", ω)
	}
	// Mars has ϖ < Ω, so ω must wrap into [0, 360).
	ω := Mars.ArgPeriapsisDeg()
	if ω < 0 || ω >= 360 {
		t.Fatalf("Mars ω = %f outside [0, 360)", ω)
	}
	if !floats.EqualWithinAbs(ω, NormalizeDeg(-23.94362959-49.55953891), 1e-6) {
		t.Fatalf("Mars ω = %f", ω)
	}
}

func TestElementsAtCenturies(t *testing.T) {
	base := Mercury
	if got := base.AtCenturies(0); got.Eccentricity() != base.Eccentricity() {
		t.Fatal("T=0 changed the eccentricity")
	}
	drifted := base.AtCenturies(1)
	if !floats.EqualWithinAbs(drifted.Eccentricity(), 0.20563661+0.00002123, 1e-12) {
		t.Fatalf("Mercury e at T=1 is %f", drifted.Eccentricity())
	}
	// A derived copy is frozen at its instant.
	if again := drifted.AtCenturies(5); again.Eccentricity() != drifted.Eccentricity() {
		t.Fatal("derived elements still drift")
	}
}

func TestElementsWithoutRates(t *testing.T) {
	el, err := NewElements(1, 0.1, 2, 3, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := el.AtCenturies(3); got != el {
		t.Fatal("rate-less elements changed under AtCenturies")
	}
}

func TestWithRatesValidation(t *testing.T) {
	el, err := NewElements(1, 0.1, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = el.WithRates(math.NaN(), 0, 0, 0, 0, 0); err == nil {
		t.Fatal("NaN rate did not error")
	}
	if _, err = el.WithRates(0, 0, 0, math.Inf(1), 0, 0); err == nil {
		t.Fatal("infinite rate did not error")
	}
	if _, err = el.WithRates(0.001, -0.0001, 0, 0.1, -0.2, 36000); err != nil {
		t.Fatal(err)
	}
}

func TestMustElementsPanics(t *testing.T) {
	assertPanic(t, func() {
		mustElements(-1, 0.1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	})
}

func TestElementsString(t *testing.T) {
	s := Earth.String()
	for _, frag := range []string{"a=", "e=", "Ω=", "AU"} {
		if !strings.Contains(s, frag) {
			t.Fatalf("%q missing %q", s, frag)
		}
	}
}
