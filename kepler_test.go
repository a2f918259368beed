package orrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKeplerCircular(t *testing.T) {
	for M := 0.0; M < 2*math.Pi; M += 0.1 {
		sol, err := SolveKepler(M, 0)
		if err != nil {
			t.Fatalf("e=0 M=%f: %s", M, err)
		}
		if !sol.Converged {
			t.Fatalf("e=0 M=%f did not converge", M)
		}
		if !floats.EqualWithinAbs(sol.E, M, 1e-12) {
			t.Fatalf("e=0 M=%f: E=%f (expected E=M)", M, sol.E)
		}
	}
}

func TestSolveKeplerPerihelion(t *testing.T) {
	sol, err := SolveKepler(0, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if sol.E != 0 {
		t.Fatalf("M=0 e=0.5: E=%g (expected exactly 0)", sol.E)
	}
	if !sol.Converged {
		t.Fatal("M=0 e=0.5 did not converge")
	}
	if sol.Iterations != 1 {
		t.Fatalf("M=0 e=0.5 took %d iterations", sol.Iterations)
	}
}

func TestSolveKeplerResidual(t *testing.T) {
	for _, e := range []float64{0, 0.2, 0.5, 0.8, 0.9, 0.95} {
		for M := 0.0; M < 2*math.Pi; M += 0.05 {
			sol, err := SolveKepler(M, e)
			if err != nil {
				t.Fatalf("e=%f M=%f: %s", e, M, err)
			}
			residual := math.Abs(sol.E - e*math.Sin(sol.E) - M)
			if residual > 1e-6 {
				t.Fatalf("e=%f M=%f: residual %g after %d iterations", e, M, residual, sol.Iterations)
			}
		}
	}
}

func TestSolveKeplerInvalid(t *testing.T) {
	for _, e := range []float64{-0.1, 1.0, 1.5, math.NaN()} {
		if _, err := SolveKepler(1, e); err == nil {
			t.Fatalf("e=%f did not error", e)
		}
	}
	if _, err := SolveKepler(math.NaN(), 0.5); err == nil {
		t.Fatal("M=NaN did not error")
	}
	if _, err := SolveKepler(math.Inf(1), 0.5); err == nil {
		t.Fatal("M=+Inf did not error")
	}
}

func TestTrueAnomalyRoundTrip(t *testing.T) {
	for _, e := range []float64{0, 0.3, 0.7, 0.9, 0.99} {
		for E := -3.1; E < 3.1; E += 0.1 {
			ν := TrueAnomaly(E, e)
			Eback := 2 * math.Atan2(math.Sqrt(1-e)*math.Sin(ν/2), math.Sqrt(1+e)*math.Cos(ν/2))
			if ok, err := anglesEqual(E, Eback); !ok {
				t.Fatalf("e=%f E=%f: roundtrip gave %f (%s)", e, E, Eback, err)
			}
		}
	}
}

func TestTrueAnomalyCircular(t *testing.T) {
	for E := 0.0; E < 2*math.Pi; E += 0.1 {
		if ok, err := anglesEqual(TrueAnomaly(E, 0), E); !ok {
			t.Fatalf("e=0 E=%f: ν differs (%s)", E, err)
		}
	}
}

func TestOrbitRadiusExtremes(t *testing.T) {
	a, e := 1.0, 0.2
	if r := OrbitRadius(a, e, 0); !floats.EqualWithinAbs(r, a*(1-e), 1e-12) {
		t.Fatalf("radius at periapsis = %f", r)
	}
	if r := OrbitRadius(a, e, math.Pi); !floats.EqualWithinAbs(r, a*(1+e), 1e-12) {
		t.Fatalf("radius at apoapsis = %f", r)
	}
	for E := 0.0; E < 2*math.Pi; E += 0.1 {
		if r := OrbitRadius(1, 0, E); !floats.EqualWithinAbs(r, 1, 1e-12) {
			t.Fatalf("circular radius at E=%f = %f", E, r)
		}
	}
}

func TestMeanAnomalyDeg(t *testing.T) {
	cases := []struct{ L, ϖ, exp float64 }{
		{10, 30, 340},
		{380, 10, 10},
		{100.87, 100.87, 0},
		{-30, 10, 320},
	}
	for _, c := range cases {
		if got := MeanAnomalyDeg(c.L, c.ϖ); !floats.EqualWithinAbs(got, c.exp, 1e-9) {
			t.Fatalf("MeanAnomalyDeg(%f, %f) = %f, expected %f", c.L, c.ϖ, got, c.exp)
		}
	}
}
