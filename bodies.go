package orrery

import (
	"time"

	kitlog "github.com/go-kit/kit/log"
)

/* Definitions: mean Keplerian elements at J2000.0 and their secular rates
per Julian century, from the JPL approximate-position tables (Standish),
valid 1800 AD - 2050 AD. Argument order is a, e, i, Ω, ϖ, L and the same for
the rates. */

func mustElements(a, e, i, Ω, ϖ, l, da, de, di, dΩ, dϖ, dl float64) Elements {
	el, err := NewElements(a, e, i, Ω, ϖ, l)
	if err != nil {
		panic(err)
	}
	el, err = el.WithRates(da, de, di, dΩ, dϖ, dl)
	if err != nil {
		panic(err)
	}
	return el
}

// Mercury is the innermost one.
var Mercury = mustElements(0.38709843, 0.20563661, 7.00559432, 48.33961819, 77.45771895, 252.25166724,
	0.00000000, 0.00002123, -0.00590158, -0.12214182, 0.15940013, 149472.67486623)

// Venus is poisonous.
var Venus = mustElements(0.72333566, 0.00677672, 3.39467605, 76.67984255, 131.76755713, 181.97970850,
	0.00000390, -0.00004107, -0.00078890, -0.27769418, 0.05679648, 58517.81538729)

// Earth is home. Elements are for the Earth-Moon barycenter.
var Earth = mustElements(1.00000261, 0.01671123, 0.00001531, 0.0, 102.93768193, 100.46457166,
	0.00000562, -0.00004392, -0.01294668, 0.0, 0.32327364, 35999.37306329)

// Mars is the vacation place.
var Mars = mustElements(1.52371034, 0.09339410, 1.84969142, 49.55953891, -23.94362959, -4.55343205,
	0.00001847, 0.00007882, -0.00813131, -0.29257343, 0.44441088, 19140.30268499)

// Jupiter is big.
var Jupiter = mustElements(5.20288700, 0.04838624, 1.30439695, 100.47390909, 14.72847983, 34.39644051,
	-0.00011607, -0.00013253, -0.00183714, 0.20469106, 0.21252668, 3034.74612775)

// Saturn floats and that's really cool.
var Saturn = mustElements(9.53667594, 0.05386179, 2.48599187, 113.66242448, 92.59887831, 49.95424423,
	-0.00125060, -0.00050991, 0.00193609, -0.28867794, -0.41897216, 1222.49362201)

// Uranus is no joke.
var Uranus = mustElements(19.18916464, 0.04725744, 0.77263783, 74.01692503, 170.95427630, 313.23810451,
	-0.00196176, -0.00004397, -0.00242939, 0.04240589, 0.40805281, 428.48202785)

// Neptune is far.
var Neptune = mustElements(30.06992276, 0.00859048, 1.77004347, 131.78422574, 44.96476227, -55.12002969,
	0.00026291, 0.00005105, 0.00035372, -0.00508664, -0.32241464, 218.45945325)

// Pluto is not a planet and had that down ranking coming.
var Pluto = mustElements(39.48211675, 0.24882730, 17.14001206, 110.30393684, 224.06891629, 238.92881780,
	-0.00031596, 0.00005170, 0.00004818, -0.01183482, -0.04062942, 145.20780515)

const (
	// moonOrbitKm is the Moon's mean distance from Earth.
	moonOrbitKm = 384399.0
	// moonPeriod is the Moon's sidereal period of simulated time.
	moonPeriod = 27*24*time.Hour + 7*time.Hour + 43*time.Minute
	// issAltitudeKm is the ISS's nominal altitude above the mean Earth radius.
	issAltitudeKm = 6371.0 + 420.0
	// issPeriod is one ISS revolution of simulated time.
	issPeriod = 92*time.Minute + 41*time.Second
)

// SolarSystemBodies returns the default body set: the eight planets and
// Pluto on mean elements, the Moon and the ISS on the circular fast path
// around Earth. Radii of the parent-relative orbits are converted into scene
// units with the configured scale.
func SolarSystemBodies(cfg Config) ([]*Body, error) {
	kmToScene := cfg.SceneScale / AU
	moon, err := NewCircularOrbit(moonOrbitKm*kmToScene, moonPeriod, Deg2rad(134.96))
	if err != nil {
		return nil, err
	}
	iss, err := NewCircularOrbit(issAltitudeKm*kmToScene, issPeriod, 0)
	if err != nil {
		return nil, err
	}
	return []*Body{
		{Name: "Mercury", Elements: &Mercury},
		{Name: "Venus", Elements: &Venus},
		{Name: "Earth", Elements: &Earth},
		{Name: "Mars", Elements: &Mars},
		{Name: "Jupiter", Elements: &Jupiter},
		{Name: "Saturn", Elements: &Saturn},
		{Name: "Uranus", Elements: &Uranus},
		{Name: "Neptune", Elements: &Neptune},
		{Name: "Pluto", Elements: &Pluto},
		{Name: "Moon", Parent: "Earth", Circular: &moon},
		{Name: "ISS", Parent: "Earth", Circular: &iss},
	}, nil
}

// NewSolarSystem assembles the default body set around a fresh clock. When
// issTLE holds two element lines, the ISS is propagated via SGP4 instead of
// the circular fast path.
func NewSolarSystem(cfg Config, logger kitlog.Logger, issTLE []string) (*System, error) {
	clock, err := NewClock(cfg.MinSpeed, cfg.MaxSpeed, cfg.InitialSpeed)
	if err != nil {
		return nil, err
	}
	bodies, err := SolarSystemBodies(cfg)
	if err != nil {
		return nil, err
	}
	if len(issTLE) == 2 {
		orbit, err := NewTLEOrbit("ISS", issTLE[0], issTLE[1])
		if err != nil {
			return nil, err
		}
		for _, b := range bodies {
			if b.Name == "ISS" {
				b.Circular = nil
				b.TLE = orbit
			}
		}
	}
	return NewSystem(clock, cfg, logger, bodies)
}
