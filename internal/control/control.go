// Package control turns per-frame input into camera motion and simulation
// commands.
package control

import (
	"time"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/picking"
	"github.com/Faultbox/orrery/internal/solar"
	"github.com/Faultbox/orrery/pkg/math"
)

// PauseDebounce is the minimum time between two animation toggles.
const PauseDebounce = 200 * time.Millisecond

// TimeStep is the factor +/- multiply or divide the time scale by.
const TimeStep = 2

// VolumeStep is the music volume change for one press of [ or ].
const VolumeStep = 0.1

// Actions reports what a frame of input asked for beyond camera motion.
type Actions struct {
	Quit          bool
	ToggleMute    bool
	ToggleMusic   bool
	VolumeStep    float64
	PauseToggled  bool
	ScaleChanged  bool
	TimeReset     bool
	CameraChanged bool
	Screenshot    bool
}

// flyBindings maps held keys to fly camera directions.
var flyBindings = []struct {
	key input.Key
	dir camera.Movement
}{
	{input.KeyW, camera.Forward},
	{input.KeyUp, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyDown, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyLeft, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeyRight, camera.Right},
	{input.KeyE, camera.Up},
	{input.KeySpace, camera.Up},
	{input.KeyQ, camera.Down},
	{input.KeyShift, camera.Down},
}

// Controller owns both cameras and decides which one is active.
type Controller struct {
	Fly   *camera.FlyCamera
	Orbit *camera.OrbitCamera

	following bool
	target    string
	pause     input.Debouncer
}

// New creates a controller with the fly camera placed as configured.
func New(cfg config.CameraConfig) *Controller {
	fly := camera.NewFlyCamera(math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}, cfg.Yaw, cfg.Pitch)
	if cfg.Speed > 0 {
		fly.Speed = cfg.Speed
	}
	if cfg.Sensitivity > 0 {
		fly.Sensitivity = cfg.Sensitivity
	}
	if cfg.Zoom > 0 {
		fly.Zoom = cfg.Zoom
	}
	return &Controller{
		Fly:   fly,
		Orbit: camera.NewOrbitCamera(),
		pause: input.Debouncer{Interval: PauseDebounce},
	}
}

// Camera returns the active camera.
func (c *Controller) Camera() camera.Camera {
	if c.following {
		return c.Orbit
	}
	return c.Fly
}

// Following returns the followed body name when the orbit camera is active.
func (c *Controller) Following() (string, bool) {
	return c.target, c.following
}

// Zoom returns the vertical field of view in degrees. Both cameras share it.
func (c *Controller) Zoom() float32 {
	return c.Fly.Zoom
}

// Update applies one frame of input. dt is the real frame time in seconds.
func (c *Controller) Update(in *input.State, sys *solar.System, now time.Time, dt float32) Actions {
	var act Actions

	if in.QuitRequested() || in.Pressed(input.KeyEscape) {
		act.Quit = true
	}
	if in.Pressed(input.KeyM) {
		act.ToggleMute = true
	}
	if in.Pressed(input.KeyP) {
		act.ToggleMusic = true
	}
	if in.Pressed(input.KeyLeftBracket) {
		act.VolumeStep -= VolumeStep
	}
	if in.Pressed(input.KeyRightBracket) {
		act.VolumeStep += VolumeStep
	}
	if in.Held(input.KeyEnter) && c.pause.Allow(now) {
		sys.TogglePaused()
		act.PauseToggled = true
	}
	if in.Pressed(input.KeyBackspace) {
		sys.SetTime(0)
		act.TimeReset = true
	}
	if in.Pressed(input.KeyF12) {
		act.Screenshot = true
	}
	if in.Pressed(input.KeyPlus) {
		sys.ScaleTime(TimeStep)
		act.ScaleChanged = true
	}
	if in.Pressed(input.KeyMinus) {
		sys.ScaleTime(1.0 / TimeStep)
		act.ScaleChanged = true
	}

	for k := input.Key1; k <= input.Key9; k++ {
		if in.Pressed(k) {
			if c.selectBody(sys, k.Digit()) {
				act.CameraChanged = true
			}
		}
	}
	if in.Pressed(input.KeyTab) {
		c.toggleFollow(sys)
		act.CameraChanged = true
	}
	if !c.following && in.ButtonPressed(input.ButtonLeft) {
		if c.pick(sys) {
			act.CameraChanged = true
		}
	}

	dx, dy := in.MouseDelta()
	if c.following {
		c.updateOrbit(in, sys, dx, dy)
	} else {
		c.updateFly(in, dt, dx, dy)
	}
	return act
}

func (c *Controller) updateFly(in *input.State, dt, dx, dy float32) {
	for _, b := range flyBindings {
		if in.Held(b.key) {
			c.Fly.ProcessKeyboard(b.dir, dt)
		}
	}
	if dx != 0 || dy != 0 {
		c.Fly.ProcessMouseMovement(dx, dy)
	}
	if w := in.Wheel(); w != 0 {
		c.Fly.ProcessScroll(w)
	}
}

func (c *Controller) updateOrbit(in *input.State, sys *solar.System, dx, dy float32) {
	b := sys.Body(c.target)
	if b == nil {
		c.following = false
		return
	}
	if in.ButtonHeld(input.ButtonLeft) || in.ButtonHeld(input.ButtonRight) {
		c.Orbit.HandleDrag(dx, dy)
	}
	if w := in.Wheel(); w != 0 {
		c.Orbit.HandleZoom(w)
	}
	c.Orbit.Follow(b.Position, b.Size)
}

// selectBody targets the n-th body (1-based) in update order.
func (c *Controller) selectBody(sys *solar.System, n int) bool {
	bodies := sys.Bodies()
	if n < 1 || n > len(bodies) {
		return false
	}
	b := bodies[n-1]
	c.target = b.Name
	if c.following {
		c.Orbit.Frame(b.Position, b.Size)
	}
	return true
}

// pick follows the body under the fly camera's crosshair, if any.
func (c *Controller) pick(sys *solar.System) bool {
	bodies := sys.Bodies()
	spheres := make([]picking.Sphere, len(bodies))
	for i, b := range bodies {
		spheres[i] = picking.Sphere{Center: b.Position, Radius: b.Size}
	}

	i, _ := picking.NewRay(c.Fly.Pos, c.Fly.Front).Nearest(spheres)
	if i < 0 {
		return false
	}
	c.target = bodies[i].Name
	c.following = true
	c.Orbit.Frame(bodies[i].Position, bodies[i].Size)
	return true
}

func (c *Controller) toggleFollow(sys *solar.System) {
	if c.following {
		c.following = false
		return
	}
	if c.target == "" || sys.Body(c.target) == nil {
		bodies := sys.Bodies()
		if len(bodies) == 0 {
			return
		}
		c.target = bodies[0].Name
	}
	b := sys.Body(c.target)
	c.following = true
	c.Orbit.Frame(b.Position, b.Size)
}
