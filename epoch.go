package orrery

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// JDJ2000 is the Julian Date of the J2000.0 reference epoch
	// (2000-Jan-01 12:00:00 TT, close enough to UTC for display purposes).
	JDJ2000 = 2451545.0
	// DaysPerCentury is the number of days in a Julian century.
	DaysPerCentury = 36525.0
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8

	msPerDay = 86400.0 * 1000.0
)

// J2000 is the J2000.0 reference epoch as a time.Time. All mean longitudes
// and secular rates are anchored to it, and simulation time zero maps to it.
var J2000 = julian.JDToTime(JDJ2000)

// JulianDate returns the continuous day count for the given instant.
func JulianDate(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC())
}

// JulianCenturies returns the number of Julian centuries elapsed between the
// J2000.0 epoch and dt. Negative before the epoch. This is the T which scales
// the secular element rates.
func JulianCenturies(dt time.Time) float64 {
	return (JulianDate(dt) - JDJ2000) / DaysPerCentury
}

// MillisSinceJ2000 returns the millisecond offset between dt and the J2000.0
// epoch, i.e. the simulation-time value at which the simulated sky matches dt.
func MillisSinceJ2000(dt time.Time) float64 {
	return (JulianDate(dt) - JDJ2000) * msPerDay
}

// DateFromSimulation maps a simulation time in milliseconds onto the absolute
// date it represents, with simulation zero at the J2000.0 epoch.
func DateFromSimulation(simMillis float64) time.Time {
	return julian.JDToTime(JDJ2000 + simMillis/msPerDay)
}
