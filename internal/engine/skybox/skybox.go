// Package skybox draws a cubemap behind the scene.
package skybox

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/gpu"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/shaders"
	"github.com/Faultbox/orrery/internal/engine/vertex"
	"github.com/Faultbox/orrery/pkg/math"
	"github.com/Faultbox/orrery/pkg/mesh"
)

// Skybox owns the cube buffer, cubemap texture and program.
type Skybox struct {
	cube    *gpu.Buffer
	cubemap uint32
	program *shader.Program
}

// New loads the six faces (right, left, top, bottom, front, back) and
// prepares the cube.
func New(faces []string) (*Skybox, error) {
	cubemap, err := gpu.LoadCubemap(faces)
	if err != nil {
		return nil, fmt.Errorf("skybox cubemap: %w", err)
	}

	program, err := shader.New("skybox", shaders.SkyboxVertex, shaders.SkyboxFragment)
	if err != nil {
		gpu.DeleteTextures(cubemap)
		return nil, err
	}

	cube, err := gpu.UploadPositions(vertex.Positions(mesh.Cube()))
	if err != nil {
		gpu.DeleteTextures(cubemap)
		program.Delete()
		return nil, err
	}

	program.Use()
	program.SetInt("skybox", 0)

	return &Skybox{cube: cube, cubemap: cubemap, program: program}, nil
}

// Draw renders the skybox. Call it after opaque geometry; the cube is
// pushed to the far plane and drawn with LEQUAL so it only fills empty pixels.
func (s *Skybox) Draw(view, projection math.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	s.program.Use()
	// Without translation the cube stays centred on the camera.
	s.program.SetMat4("view", view.WithoutTranslation())
	s.program.SetMat4("projection", projection)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	s.cube.Draw()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	gl.DepthFunc(gl.LESS)
}

// Close releases GPU resources.
func (s *Skybox) Close() {
	s.cube.Delete()
	gpu.DeleteTextures(s.cubemap)
	s.program.Delete()
}
