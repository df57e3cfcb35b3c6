package camera

import "github.com/Faultbox/orrery/pkg/math"

// Projection builds a perspective matrix for a vertical field of view in
// degrees, treating a zero-sized (minimised) window as square.
func Projection(fovDeg float32, width, height int, near, far float32) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(fovDeg), aspect, near, far)
}
