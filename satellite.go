package orrery

import (
	"fmt"
	"math"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// TLEOrbit propagates an artificial satellite from its two-line element set
// via SGP4, yielding Earth-centered positions. It replaces the circular fast
// path for a body when a TLE is available.
type TLEOrbit struct {
	name string
	sat  satellite.Satellite
}

// NewTLEOrbit parses the TLE lines and initializes the SGP4 model. The lines
// are validated first because go-satellite terminates the process on
// malformed input.
func NewTLEOrbit(name, line1, line2 string) (*TLEOrbit, error) {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)
	if len(line1) != 69 || len(line2) != 69 {
		return nil, fmt.Errorf("TLE for %s: lines must be 69 characters, got %d and %d", name, len(line1), len(line2))
	}
	if line1[0] != '1' || line2[0] != '2' {
		return nil, fmt.Errorf("TLE for %s: bad line markers %q, %q", name, line1[0], line2[0])
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS84)
	if sat.Error != 0 {
		return nil, fmt.Errorf("SGP4 init for %s failed: code %d %s", name, sat.Error, sat.ErrorStr)
	}
	return &TLEOrbit{name: name, sat: sat}, nil
}

// PositionAt returns the satellite position at dt, offset from the parent
// body's position and converted from kilometers into scene units (scale is
// in scene units per AU). The parent position must belong to the same
// simulation tick. SGP4 failures surface as NaN or absurd radii, so both are
// rejected; the caller decides the fallback policy.
func (t *TLEOrbit) PositionAt(dt time.Time, parent []float64, scale float64) ([]float64, error) {
	dt = dt.UTC()
	pos, _ := satellite.Propagate(t.sat, dt.Year(), int(dt.Month()), dt.Day(), dt.Hour(), dt.Minute(), dt.Second())
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z) ||
		math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) || math.IsInf(pos.Z, 0) {
		return nil, fmt.Errorf("SGP4 propagation for %s at %s: output is not finite", t.name, dt.Format(time.RFC3339))
	}
	if mag := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z); mag < 6200 || mag > 500000 {
		return nil, fmt.Errorf("SGP4 propagation for %s at %s: unreasonable radius %.0f km", t.name, dt.Format(time.RFC3339), mag)
	}
	k := scale / AU
	// TEME Z is the Earth polar axis; remap into the scene's Y-up convention.
	return []float64{parent[0] + pos.X*k, parent[1] + pos.Z*k, parent[2] + pos.Y*k}, nil
}
