package solar

import (
	"errors"
	"fmt"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/pkg/math"
	"github.com/Faultbox/orrery/pkg/mesh"
)

// Time scale limits.
const (
	MinTimeScale float32 = 1.0 / 64
	MaxTimeScale float32 = 64
)

// ErrHierarchy is returned for unknown parents and parent cycles.
var ErrHierarchy = errors.New("invalid body hierarchy")

// Options configures a System.
type Options struct {
	UnitScale float32 // World units per orbit unit
	TimeScale float32
	Paused    bool
}

// System is a set of bodies ordered so every parent precedes its children.
type System struct {
	bodies []*Body
	byName map[string]*Body

	unitScale float32
	timeScale float32
	paused    bool
	time      float64
}

// New builds a system from body configs and evaluates it at time zero.
func New(specs []config.BodyConfig, opts Options) (*System, error) {
	if opts.UnitScale <= 0 {
		opts.UnitScale = 1
	}
	s := &System{
		byName:    make(map[string]*Body, len(specs)),
		unitScale: opts.UnitScale,
		timeScale: clampScale(opts.TimeScale),
		paused:    opts.Paused,
	}

	parentOf := make(map[string]string, len(specs))
	for _, c := range specs {
		if _, dup := s.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate body %q", ErrHierarchy, c.Name)
		}
		s.byName[c.Name] = newBody(c)
		parentOf[c.Name] = c.Parent
	}

	// Depth-first placement keeps config order among siblings.
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(specs))
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: cycle through %q", ErrHierarchy, name)
		}
		state[name] = visiting
		b := s.byName[name]
		if p := parentOf[name]; p != "" {
			parent, ok := s.byName[p]
			if !ok {
				return fmt.Errorf("%w: %q has unknown parent %q", ErrHierarchy, name, p)
			}
			if err := visit(p); err != nil {
				return err
			}
			b.Parent = parent
		}
		state[name] = done
		s.bodies = append(s.bodies, b)
		return nil
	}
	for _, c := range specs {
		if err := visit(c.Name); err != nil {
			return nil, err
		}
	}

	s.evaluate()
	return s, nil
}

// Bodies returns all bodies, parents first.
func (s *System) Bodies() []*Body {
	return s.bodies
}

// Body returns the named body or nil.
func (s *System) Body(name string) *Body {
	return s.byName[name]
}

// Sun returns the first sun, or nil if there is none.
func (s *System) Sun() *Body {
	for _, b := range s.bodies {
		if b.IsSun() {
			return b
		}
	}
	return nil
}

// Time returns the simulated time in seconds.
func (s *System) Time() float64 {
	return s.time
}

// Paused reports whether time is frozen.
func (s *System) Paused() bool {
	return s.paused
}

// SetPaused freezes or resumes time.
func (s *System) SetPaused(paused bool) {
	s.paused = paused
}

// TogglePaused flips the pause state and returns the new state.
func (s *System) TogglePaused() bool {
	s.paused = !s.paused
	return s.paused
}

// TimeScale returns the simulated seconds per real second.
func (s *System) TimeScale() float32 {
	return s.timeScale
}

// ScaleTime multiplies the time scale by factor within the allowed range.
func (s *System) ScaleTime(factor float32) float32 {
	s.timeScale = clampScale(s.timeScale * factor)
	return s.timeScale
}

// Update advances time by dt real seconds unless paused.
func (s *System) Update(dt float32) {
	if s.paused || dt <= 0 {
		return
	}
	s.time += float64(dt) * float64(s.timeScale)
	s.evaluate()
}

// SetTime jumps to an absolute simulated time.
func (s *System) SetTime(t float64) {
	s.time = t
	s.evaluate()
}

func (s *System) evaluate() {
	for _, b := range s.bodies {
		b.OrbitAngle = angleAt(s.time, b.OrbitPeriod, b.OrbitPhase)
		b.SpinAngle = angleAt(s.time, b.SpinPeriod, 0)
		b.Position = s.OrbitCenter(b).Add(s.orbitWorldOffset(b))
	}
}

// OrbitCenter returns the parent's position, or the origin for roots.
func (s *System) OrbitCenter(b *Body) math.Vec3 {
	if b.Parent == nil {
		return math.Vec3{}
	}
	return b.Parent.Position
}

func (s *System) orbitWorldOffset(b *Body) math.Vec3 {
	if b.Parent == nil || b.OrbitRadius == 0 {
		return math.Vec3{}
	}
	local := OrbitOffset(b.OrbitRadius, b.OrbitAngle).Scale(s.unitScale)
	return b.Tilt().Rotate(local)
}

// RingParams returns the circle parameters for a body's orbit path.
func (s *System) RingParams(b *Body, segments int) mesh.CircleParams {
	return mesh.CircleParams{
		Radius:   b.OrbitRadius,
		Color:    b.OrbitColor,
		Segments: segments,
	}
}

// PlaceRing positions a ring generated by RingParams on the body's current orbit.
func (s *System) PlaceRing(b *Body, p *mesh.Placement) {
	p.Reset()
	p.Translate(s.OrbitCenter(b))
	if b.TiltAngle != 0 {
		p.Rotate(b.TiltAngle, b.TiltAxis)
	}
	p.Scale(math.Vec3{X: s.unitScale, Y: s.unitScale, Z: s.unitScale})
}

func clampScale(f float32) float32 {
	if f < MinTimeScale {
		return MinTimeScale
	}
	if f > MaxTimeScale {
		return MaxTimeScale
	}
	return f
}
