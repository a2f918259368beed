package orrery

import (
	"fmt"
	"math"
	"time"
)

// CircularOrbit describes a parent-relative orbit propagated on the circular
// fast path: no eccentricity, no inclination, just a phase angle sweeping a
// flat circle around the parent. Used for bodies whose orbit shape is
// visually unimportant (moons, artificial satellites) but whose dependency
// on a moving parent is the essential correctness property.
type CircularOrbit struct {
	radius float64       // scene units
	period time.Duration // simulated time per revolution
	phase  float64       // starting phase angle, radians
}

// NewCircularOrbit validates and returns a circular orbit descriptor.
func NewCircularOrbit(radius float64, period time.Duration, phase float64) (CircularOrbit, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return CircularOrbit{}, fmt.Errorf("circular orbit: radius must be positive, got %v", radius)
	}
	if period <= 0 {
		return CircularOrbit{}, fmt.Errorf("circular orbit: period must be positive, got %v", period)
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return CircularOrbit{}, fmt.Errorf("circular orbit: phase is not finite (%v)", phase)
	}
	return CircularOrbit{radius, period, phase}, nil
}

// Radius returns the orbit radius in scene units.
func (c CircularOrbit) Radius() float64 { return c.radius }

// Period returns the simulated time per revolution.
func (c CircularOrbit) Period() time.Duration { return c.period }

// PositionAt returns the position at simMillis of simulated time, offset from
// the parent body's position. The parent position must have been computed for
// the same simulation-time value: a stale parent shifts the child by the same
// error.
func (c CircularOrbit) PositionAt(simMillis float64, parent []float64) []float64 {
	periodMs := c.period.Seconds() * 1e3
	θ := c.phase + 2*math.Pi*math.Mod(simMillis, periodMs)/periodMs
	sinθ, cosθ := math.Sincos(θ)
	return []float64{parent[0] + c.radius*cosθ, parent[1], parent[2] + c.radius*sinθ}
}
