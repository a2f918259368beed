package orrery

import (
	"errors"
	"fmt"
	"sort"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Body associates a name with exactly one propagation source and an optional
// parent. Parent-relative bodies (circular and TLE orbits) require a parent;
// element-driven bodies are heliocentric.
type Body struct {
	Name     string
	Parent   string
	Elements *Elements
	Circular *CircularOrbit
	TLE      *TLEOrbit
}

// OrbitalInfo is a structured snapshot of one body, useful for validation
// and display.
type OrbitalInfo struct {
	Body         string
	Position     []float64 // scene units
	Distance     float64   // from the reference origin, AU
	Eccentricity float64
	Perihelion   float64 // AU; zero for parent-relative bodies
	Aphelion     float64 // AU; zero for parent-relative bodies
	Date         time.Time
}

// System owns the simulation clock and every body, and recomputes all
// positions once per frame in parent-before-child order. Everything is
// single-threaded: the clock ticks, then each body is propagated exactly
// once, children strictly after their parent.
type System struct {
	clock     *Clock
	cfg       Config
	logger    kitlog.Logger
	eph       *Ephemeris // nil unless VSOP87 mode is enabled
	bodies    map[string]*Body
	order     []*Body
	positions map[string][]float64
}

// NewSystem assembles a system from the given bodies. The update order is
// computed once, topologically from the parent references: unknown parents,
// cycles and duplicate names are construction errors, not runtime surprises.
// Positions are primed for the clock's current simulation time.
func NewSystem(clock *Clock, cfg Config, logger kitlog.Logger, bodies []*Body) (*System, error) {
	if clock == nil {
		return nil, errors.New("system: nil clock")
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	s := &System{
		clock:     clock,
		cfg:       cfg,
		logger:    logger,
		bodies:    make(map[string]*Body, len(bodies)),
		positions: make(map[string][]float64, len(bodies)),
	}
	for _, b := range bodies {
		if b.Name == "" {
			return nil, errors.New("system: body without a name")
		}
		if _, dup := s.bodies[b.Name]; dup {
			return nil, fmt.Errorf("system: duplicate body %q", b.Name)
		}
		sources := 0
		for _, set := range []bool{b.Elements != nil, b.Circular != nil, b.TLE != nil} {
			if set {
				sources++
			}
		}
		if sources != 1 {
			return nil, fmt.Errorf("system: body %q must have exactly one propagation source, has %d", b.Name, sources)
		}
		if (b.Circular != nil || b.TLE != nil) && b.Parent == "" {
			return nil, fmt.Errorf("system: parent-relative body %q has no parent", b.Name)
		}
		s.bodies[b.Name] = b
	}
	order, err := updateOrder(s.bodies)
	if err != nil {
		return nil, err
	}
	s.order = order
	if cfg.VSOP87 {
		s.eph = NewEphemeris(cfg.VSOP87Dir)
	}
	s.propagateAll()
	return s, nil
}

// updateOrder returns the bodies sorted parent-before-child. Bodies with no
// dependency between them come out in name order, for determinism.
func updateOrder(bodies map[string]*Body) ([]*Body, error) {
	const (
		unseen = iota
		visiting
		done
	)
	state := make(map[string]int, len(bodies))
	order := make([]*Body, 0, len(bodies))
	var visit func(b *Body) error
	visit = func(b *Body) error {
		switch state[b.Name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("system: parent cycle through %q", b.Name)
		}
		state[b.Name] = visiting
		if b.Parent != "" {
			p, ok := bodies[b.Parent]
			if !ok {
				return fmt.Errorf("system: body %q references unknown parent %q", b.Name, b.Parent)
			}
			if err := visit(p); err != nil {
				return err
			}
		}
		state[b.Name] = done
		order = append(order, b)
		return nil
	}
	names := make([]string, 0, len(bodies))
	for name := range bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(bodies[name]); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Update advances the clock by the given wall-clock delta in milliseconds and
// recomputes every body's position for the new simulation time. A clock error
// (negative or non-finite delta) aborts the frame; a single body's failure
// does not, that body keeps its last known good position.
func (s *System) Update(realDeltaMillis float64) error {
	if _, err := s.clock.Tick(realDeltaMillis); err != nil {
		return err
	}
	s.propagateAll()
	return nil
}

// Frame is the render-loop entry point: it measures the wall-clock delta
// since the previous frame itself and then behaves like Update.
func (s *System) Frame(now time.Time) error {
	if _, err := s.clock.MarkFrame(now); err != nil {
		return err
	}
	s.propagateAll()
	return nil
}

// propagateAll recomputes every position for the clock's current simulation
// time, in the precomputed parent-before-child order.
func (s *System) propagateAll() {
	simMillis := s.clock.SimulationTime()
	dt := DateFromSimulation(simMillis)
	for _, b := range s.order {
		pos, err := s.propagate(b, simMillis, dt)
		if err != nil {
			positionFallbacksTotal.WithLabelValues(b.Name).Inc()
			s.logger.Log("level", "warning", "subsys", "orrery", "body", b.Name,
				"message", "propagation failed, keeping last known position", "err", err)
			continue
		}
		s.positions[b.Name] = pos
	}
}

func (s *System) propagate(b *Body, simMillis float64, dt time.Time) ([]float64, error) {
	switch {
	case b.Elements != nil:
		if s.eph != nil && s.eph.Covers(b.Name) {
			propagationsTotal.WithLabelValues(b.Name, "vsop87").Inc()
			ecl, err := s.eph.Position(b.Name, dt)
			if err != nil {
				return nil, err
			}
			return s.scale(EclipticToScene(ecl)), nil
		}
		propagationsTotal.WithLabelValues(b.Name, "elliptical").Inc()
		pos, sol, err := PropagateElliptical(*b.Elements, dt, true)
		if err != nil {
			return nil, err
		}
		if !sol.Converged {
			keplerNonConvergedTotal.Inc()
			s.logger.Log("level", "warning", "subsys", "kepler", "body", b.Name,
				"M", sol.M, "e", sol.Ecc, "residual", sol.Residual, "iterations", sol.Iterations)
		}
		return s.scale(pos), nil
	case b.Circular != nil:
		propagationsTotal.WithLabelValues(b.Name, "circular").Inc()
		parent, err := s.parentPosition(b)
		if err != nil {
			return nil, err
		}
		return b.Circular.PositionAt(simMillis, parent), nil
	case b.TLE != nil:
		propagationsTotal.WithLabelValues(b.Name, "sgp4").Inc()
		parent, err := s.parentPosition(b)
		if err != nil {
			return nil, err
		}
		return b.TLE.PositionAt(dt, parent, s.cfg.SceneScale)
	}
	return nil, fmt.Errorf("body %q has no propagation source", b.Name)
}

// parentPosition returns the parent's position for this tick. The update
// order guarantees it has already been recomputed, unless the parent itself
// fell back, in which case the child inherits the same staleness knowingly.
func (s *System) parentPosition(b *Body) ([]float64, error) {
	pos, ok := s.positions[b.Parent]
	if !ok {
		return nil, fmt.Errorf("no position for parent %q of %q", b.Parent, b.Name)
	}
	return pos, nil
}

func (s *System) scale(posAU []float64) []float64 {
	return []float64{posAU[0] * s.cfg.SceneScale, posAU[1] * s.cfg.SceneScale, posAU[2] * s.cfg.SceneScale}
}

// Position returns the body's position in scene units, as computed by the
// most recent update.
func (s *System) Position(name string) ([]float64, error) {
	pos, ok := s.positions[name]
	if !ok {
		return nil, fmt.Errorf("unknown body %q", name)
	}
	return append([]float64(nil), pos...), nil
}

// Distance returns the body's current distance from the reference origin in
// astronomical units.
func (s *System) Distance(name string) (float64, error) {
	pos, ok := s.positions[name]
	if !ok {
		return 0, fmt.Errorf("unknown body %q", name)
	}
	return norm(pos) / s.cfg.SceneScale, nil
}

// Info returns the diagnostic snapshot of one body.
func (s *System) Info(name string) (OrbitalInfo, error) {
	b, ok := s.bodies[name]
	if !ok {
		return OrbitalInfo{}, fmt.Errorf("unknown body %q", name)
	}
	// A body whose propagation has failed on every tick so far has no
	// position to report.
	stored, ok := s.positions[name]
	if !ok {
		return OrbitalInfo{}, fmt.Errorf("no position computed yet for %q", name)
	}
	pos := append([]float64(nil), stored...)
	info := OrbitalInfo{
		Body:     name,
		Position: pos,
		Distance: norm(pos) / s.cfg.SceneScale,
		Date:     s.clock.SimulationDate(),
	}
	if b.Elements != nil {
		info.Eccentricity = b.Elements.Eccentricity()
		info.Perihelion = b.Elements.Perihelion()
		info.Aphelion = b.Elements.Aphelion()
	}
	return info, nil
}

// Bodies returns the body names in update order.
func (s *System) Bodies() []string {
	names := make([]string, len(s.order))
	for i, b := range s.order {
		names[i] = b.Name
	}
	return names
}

// Clock returns the owned simulation clock.
func (s *System) Clock() *Clock { return s.clock }

// SimulationTime returns the current simulated time in milliseconds.
func (s *System) SimulationTime() float64 { return s.clock.SimulationTime() }

// SetTimeSpeed clamps and applies a new speed multiplier.
func (s *System) SetTimeSpeed(multiplier float64) error { return s.clock.SetSpeed(multiplier) }

// TimeSpeed returns the current speed multiplier.
func (s *System) TimeSpeed() float64 { return s.clock.Speed() }

// Pause freezes the simulation.
func (s *System) Pause() { s.clock.Pause() }

// Resume unfreezes the simulation.
func (s *System) Resume() { s.clock.Resume() }

// Reset rewinds simulation time to zero and recomputes all positions.
func (s *System) Reset() {
	s.clock.Reset()
	s.propagateAll()
}

// SeekTo jumps the simulation to the given absolute date and recomputes all
// positions.
func (s *System) SeekTo(dt time.Time) {
	s.clock.SeekTo(dt)
	s.propagateAll()
}

// SeekToRealNow jumps the simulation to the present sky.
func (s *System) SeekToRealNow() {
	s.clock.SeekToRealNow()
	s.propagateAll()
}
