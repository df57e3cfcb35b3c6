package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/orrery/pkg/mesh"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the config for values the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalid, c.Graphics.Near, c.Graphics.Far)
	}
	if c.Scene.SpherePrecision < 1 || c.Scene.SpherePrecision > mesh.MaxSpherePrecision {
		return fmt.Errorf("%w: sphere_precision %d outside [1,%d]", ErrInvalid, c.Scene.SpherePrecision, mesh.MaxSpherePrecision)
	}
	if c.Scene.OrbitSegments < 3 {
		return fmt.Errorf("%w: orbit_segments %d < 3", ErrInvalid, c.Scene.OrbitSegments)
	}
	if c.Scene.UnitScale <= 0 {
		return fmt.Errorf("%w: unit_scale %g", ErrInvalid, c.Scene.UnitScale)
	}
	if c.Scene.TimeScale <= 0 {
		return fmt.Errorf("%w: time_scale %g must be positive", ErrInvalid, c.Scene.TimeScale)
	}
	if n := len(c.Scene.Skybox); n != 0 && n != 6 {
		return fmt.Errorf("%w: skybox needs 6 faces, got %d", ErrInvalid, n)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %g outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Telemetry.Addr != "" && c.Telemetry.Interval <= 0 {
		return fmt.Errorf("%w: telemetry interval %v", ErrInvalid, c.Telemetry.Interval)
	}
	return validateBodies(c.Bodies)
}

func validateBodies(bodies []BodyConfig) error {
	if len(bodies) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalid)
	}

	parents := make(map[string]string, len(bodies))
	for _, b := range bodies {
		if b.Name == "" {
			return fmt.Errorf("%w: body without a name", ErrInvalid)
		}
		if _, dup := parents[b.Name]; dup {
			return fmt.Errorf("%w: duplicate body %q", ErrInvalid, b.Name)
		}
		switch b.Kind {
		case KindSun, KindPlanet, KindMoon:
		default:
			return fmt.Errorf("%w: body %q has unknown kind %q", ErrInvalid, b.Name, b.Kind)
		}
		if b.Size <= 0 {
			return fmt.Errorf("%w: body %q size %g", ErrInvalid, b.Name, b.Size)
		}
		if b.OrbitPeriod < 0 || b.SpinPeriod < 0 {
			return fmt.Errorf("%w: body %q has a negative period", ErrInvalid, b.Name)
		}
		parents[b.Name] = b.Parent
	}

	for _, b := range bodies {
		if b.Parent == "" {
			continue
		}
		if _, ok := parents[b.Parent]; !ok {
			return fmt.Errorf("%w: body %q has unknown parent %q", ErrInvalid, b.Name, b.Parent)
		}
		// Walk up the chain; more steps than bodies means a cycle.
		name := b.Name
		for steps := 0; name != ""; steps++ {
			if steps > len(bodies) {
				return fmt.Errorf("%w: body %q is part of a parent cycle", ErrInvalid, b.Name)
			}
			name = parents[name]
		}
	}
	return nil
}
