// Package camera provides the viewer's fly and orbit cameras.
package camera

import (
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// Camera is anything that can produce a view matrix.
type Camera interface {
	Position() math.Vec3
	ViewMatrix() math.Mat4
}

// Zoom limits in degrees of vertical field of view.
const (
	MinZoom float32 = 1
	MaxZoom float32 = 90
)

// Movement is a keyboard-driven direction relative to the camera.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// FlyCamera is a free-look camera driven by yaw and pitch in degrees.
type FlyCamera struct {
	Pos     math.Vec3
	Front   math.Vec3
	Up      math.Vec3
	Right   math.Vec3
	WorldUp math.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32 // Units per second
	Sensitivity float32 // Degrees per pixel
	Zoom        float32 // Vertical field of view in degrees
}

// NewFlyCamera creates a fly camera at pos looking along yaw/pitch.
func NewFlyCamera(pos math.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Pos:         pos,
		WorldUp:     math.UnitY,
		Yaw:         yaw,
		Pitch:       clampf(pitch, -89, 89),
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        45,
	}
	c.updateVectors()
	return c
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() math.Vec3 {
	return c.Pos
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Pos, c.Pos.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera for dt seconds in the given direction.
func (c *FlyCamera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.Speed * dt
	switch dir {
	case Forward:
		c.Pos = c.Pos.Add(c.Front.Scale(velocity))
	case Backward:
		c.Pos = c.Pos.Sub(c.Front.Scale(velocity))
	case Left:
		c.Pos = c.Pos.Sub(c.Right.Scale(velocity))
	case Right:
		c.Pos = c.Pos.Add(c.Right.Scale(velocity))
	case Up:
		c.Pos = c.Pos.Add(c.WorldUp.Scale(velocity))
	case Down:
		c.Pos = c.Pos.Sub(c.WorldUp.Scale(velocity))
	}
}

// ProcessMouseMovement turns the camera by a mouse delta in pixels.
// Positive dy looks up. Pitch is clamped short of straight up or down.
func (c *FlyCamera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clampf(c.Pitch+dy*c.Sensitivity, -89, 89)
	c.updateVectors()
}

// ProcessScroll narrows or widens the field of view.
func (c *FlyCamera) ProcessScroll(dy float32) {
	c.Zoom = clampf(c.Zoom-dy, MinZoom, MaxZoom)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))
	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// OrbitCamera orbits around a center point, typically a selected body.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // Radians above the orbital plane
	Yaw      float32 // Radians around Y

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        6,
		Pitch:           0.35,
		MinDistance:     0.5,
		MaxDistance:     400,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	offset := math.Vec3{
		X: c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw)),
		Y: c.Distance * float32(gomath.Sin(pitch)),
		Z: c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw)),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.UnitY)
}

// HandleDrag updates rotation based on a mouse delta.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = clampf(c.Pitch+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clampf(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Follow recenters the camera and keeps it outside a body of the given radius.
func (c *OrbitCamera) Follow(center math.Vec3, radius float32) {
	c.Center = center
	if closest := radius * 2; c.Distance < closest {
		c.Distance = closest
	}
}

// Frame recenters the camera and backs off to six body radii.
func (c *OrbitCamera) Frame(center math.Vec3, radius float32) {
	c.Center = center
	c.Distance = clampf(radius*6, c.MinDistance, c.MaxDistance)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
