package orrery

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Clock accumulates simulated time from wall-clock frame deltas scaled by a
// user-controlled speed multiplier. It is the single independent variable of
// the whole simulation: every position is a function of its current value.
// One clock is created at startup and owned by the orchestrator; it is
// single-threaded, driven synchronously from the render loop.
type Clock struct {
	simMillis float64
	speed     float64
	minSpeed  float64
	maxSpeed  float64
	paused    bool
	lastMark  time.Time
}

// NewClock returns a clock with the given speed bounds and initial speed.
// The initial speed is clamped to the bounds like any later SetSpeed call.
func NewClock(minSpeed, maxSpeed, initial float64) (*Clock, error) {
	if math.IsNaN(minSpeed) || math.IsNaN(maxSpeed) || minSpeed <= 0 || maxSpeed < minSpeed {
		return nil, fmt.Errorf("clock: invalid speed bounds [%v, %v]", minSpeed, maxSpeed)
	}
	c := &Clock{speed: initial, minSpeed: minSpeed, maxSpeed: maxSpeed}
	if err := c.SetSpeed(initial); err != nil {
		return nil, err
	}
	return c, nil
}

// Tick advances simulation time by realDeltaMillis × speed and returns the
// simulated delta. While paused the delta is zero and simulation time is
// unchanged. Call once per animation frame with the wall-clock delta since
// the previous call. Negative or non-finite deltas are rejected rather than
// propagated into every downstream position as NaN.
func (c *Clock) Tick(realDeltaMillis float64) (float64, error) {
	if math.IsNaN(realDeltaMillis) || math.IsInf(realDeltaMillis, 0) {
		return 0, fmt.Errorf("clock: frame delta is not finite (%v)", realDeltaMillis)
	}
	if realDeltaMillis < 0 {
		return 0, fmt.Errorf("clock: negative frame delta %v ms", realDeltaMillis)
	}
	if c.paused {
		return 0, nil
	}
	simDelta := realDeltaMillis * c.speed
	c.simMillis += simDelta
	return simDelta, nil
}

// MarkFrame measures the wall-clock interval since the previous mark and
// ticks the clock with it. The first mark after construction, Resume or
// Reset anchors the reference point and yields a zero delta, so a long pause
// never shows up as a huge elapsed interval.
func (c *Clock) MarkFrame(now time.Time) (float64, error) {
	if c.lastMark.IsZero() {
		c.lastMark = now
		return 0, nil
	}
	Δ := now.Sub(c.lastMark)
	c.lastMark = now
	if Δ < 0 {
		Δ = 0
	}
	return c.Tick(float64(Δ) / float64(time.Millisecond))
}

// SetSpeed clamps the requested multiplier to the configured bounds and
// applies it from the next tick. The already-accumulated simulation time is
// never affected. NaN is rejected: clamping it would silently pick a bound.
func (c *Clock) SetSpeed(multiplier float64) error {
	if math.IsNaN(multiplier) {
		return fmt.Errorf("clock: speed multiplier is NaN")
	}
	c.speed = math.Min(math.Max(multiplier, c.minSpeed), c.maxSpeed)
	return nil
}

// Speed returns the current speed multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Pause freezes simulation time. Ticks while paused are no-ops.
func (c *Clock) Pause() { c.paused = true }

// Resume unfreezes the clock and re-anchors the wall-clock reference so the
// pause duration does not appear as one giant frame delta.
func (c *Clock) Resume() {
	c.paused = false
	c.lastMark = time.Now()
}

// Reset sets simulation time back to zero (the J2000.0 epoch) and re-anchors
// the wall-clock reference.
func (c *Clock) Reset() {
	c.simMillis = 0
	c.lastMark = time.Now()
}

// SeekTo jumps simulation time to the value at which the simulated sky
// matches dt.
func (c *Clock) SeekTo(dt time.Time) {
	c.simMillis = MillisSinceJ2000(dt)
	c.lastMark = time.Now()
}

// SeekToRealNow jumps simulation time to the present instant: "show the sky
// as it is right now".
func (c *Clock) SeekToRealNow() {
	c.SeekTo(time.Now())
}

// SimulationTime returns the accumulated simulated time in milliseconds.
func (c *Clock) SimulationTime() float64 { return c.simMillis }

// SimulationDate returns the absolute date the current simulation time
// represents.
func (c *Clock) SimulationDate() time.Time {
	return DateFromSimulation(c.simMillis)
}

// FormatElapsed renders the accumulated simulated time for display.
func (c *Clock) FormatElapsed() string {
	neg := ""
	ms := c.simMillis
	if ms < 0 {
		neg = "-"
		ms = -ms
	}
	secs := int64(ms / 1000)
	days := secs / 86400
	years := days / 365
	days %= 365
	h := secs % 86400 / 3600
	m := secs % 3600 / 60
	s := secs % 60
	switch {
	case years > 0:
		return fmt.Sprintf("%s%dy %dd %02dh", neg, years, days, h)
	case days > 0:
		return fmt.Sprintf("%s%dd %02dh%02dm", neg, days, h, m)
	default:
		return fmt.Sprintf("%s%02dh%02dm%02ds", neg, h, m, s)
	}
}

// FormatSpeed renders the speed multiplier for display.
func (c *Clock) FormatSpeed() string {
	if c.paused {
		return "paused"
	}
	return strconv.FormatFloat(c.speed, 'f', -1, 64) + "× real time"
}
