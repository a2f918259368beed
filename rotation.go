package orrery

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R3R1R3 performs a 3-1-3 Euler parameter rotation.
// From Schaub and Junkins (the one in Vallado is wrong... surprisingly, right? =/)
func R3R1R3(θ1, θ2, θ3 float64) *mat64.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat64.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// PQW2Ecliptic rotates a perifocal (orbital plane) vector into the ecliptic
// frame through the sequence: ω about the pole, i about the ascending-node
// axis, Ω about the reference pole. The 3-1-3 matrix maps ecliptic to
// perifocal, so its transpose is applied. The sequence order is significant.
func PQW2Ecliptic(i, ω, Ω float64, v []float64) []float64 {
	var m mat64.Dense
	m.Clone(R3R1R3(Ω, i, ω).T())
	return MxV33(&m, v)
}

// EclipticToScene remaps an ecliptic-frame vector into the rendering
// convention: the renderer treats Y as up, the ecliptic pole is Z.
func EclipticToScene(v []float64) []float64 {
	return []float64{v[0], v[2], v[1]}
}
