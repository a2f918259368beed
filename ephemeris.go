package orrery

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

// vsop87Index maps planet names to their VSOP87 data file index.
var vsop87Index = map[string]int{
	"Mercury": 0,
	"Venus":   1,
	"Earth":   2,
	"Mars":    3,
	"Jupiter": 4,
	"Saturn":  5,
	"Uranus":  6,
	"Neptune": 7,
}

// Ephemeris computes heliocentric positions from the VSOP87 periodic series,
// the high-accuracy alternative to mean-element propagation. Each planet's
// data file is loaded once, on first use; Pluto has its own built-in series.
type Ephemeris struct {
	dir     string
	planets map[string]*planetposition.V87Planet
}

// NewEphemeris returns an Ephemeris reading VSOP87 data files from dir.
func NewEphemeris(dir string) *Ephemeris {
	return &Ephemeris{dir: dir, planets: make(map[string]*planetposition.V87Planet)}
}

// Covers reports whether a VSOP87 series exists for the named body.
func (eph *Ephemeris) Covers(name string) bool {
	if name == "Pluto" {
		return true
	}
	_, ok := vsop87Index[name]
	return ok
}

// Position returns the heliocentric ecliptic position of the named body at
// dt, in astronomical units.
func (eph *Ephemeris) Position(name string, dt time.Time) ([]float64, error) {
	jd := julian.TimeToJD(dt.UTC())
	if name == "Pluto" {
		// Special case in Sonia Keys' Meeus.
		l, b, r := pluto.Heliocentric(jd)
		return eclipticFromSpherical(l.Rad(), b.Rad(), r), nil
	}
	idx, ok := vsop87Index[name]
	if !ok {
		return nil, fmt.Errorf("no VSOP87 series for %q", name)
	}
	p, loaded := eph.planets[name]
	if !loaded {
		var err error
		p, err = planetposition.LoadPlanetPath(idx, eph.dir)
		if err != nil {
			return nil, fmt.Errorf("loading VSOP87 data for %s: %v", name, err)
		}
		eph.planets[name] = p
	}
	l, b, r := p.Position2000(jd)
	return eclipticFromSpherical(l.Rad(), b.Rad(), r), nil
}

// eclipticFromSpherical converts ecliptic longitude l, latitude b (radians)
// and radius r into Cartesian coordinates.
func eclipticFromSpherical(l, b, r float64) []float64 {
	sb, cb := math.Sincos(b)
	sl, cl := math.Sincos(l)
	return []float64{r * cb * cl, r * cb * sl, r * sb}
}
