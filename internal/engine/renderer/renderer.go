// Package renderer draws the solar system with OpenGL.
package renderer

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/gpu"
	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/shaders"
	"github.com/Faultbox/orrery/internal/engine/skybox"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/solar"
	"github.com/Faultbox/orrery/pkg/math"
	"github.com/Faultbox/orrery/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Near   float32
	Far    float32
}

// missingTexture stands in for textures that fail to load.
var missingTexture = color.RGBA{R: 200, G: 0, B: 200, A: 255}

// Renderer owns every GL resource the viewer draws with.
type Renderer struct {
	config Config
	log    *zap.Logger

	planet *shader.Program
	sun    *shader.Program
	orbit  *shader.Program

	sphere   *gpu.Buffer
	rings    map[string]*gpu.Buffer
	textures map[string]uint32
	sky      *skybox.Skybox
}

// New initialises OpenGL and compiles the programs.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		rings:    make(map[string]*gpu.Buffer),
		textures: make(map[string]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	if r.planet, err = shader.New("planet", shaders.PlanetVertex, shaders.PlanetFragment); err != nil {
		return nil, err
	}
	if r.sun, err = shader.New("sun", shaders.SunVertex, shaders.SunFragment); err != nil {
		r.Close()
		return nil, err
	}
	if r.orbit, err = shader.New("orbit", shaders.OrbitVertex, shaders.OrbitFragment); err != nil {
		r.Close()
		return nil, err
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.sky != nil {
		r.sky.Close()
	}
	if r.sphere != nil {
		r.sphere.Delete()
	}
	for _, b := range r.rings {
		b.Delete()
	}
	for _, id := range r.textures {
		gpu.DeleteTextures(id)
	}
	for _, p := range []*shader.Program{r.planet, r.sun, r.orbit} {
		if p != nil {
			p.Delete()
		}
	}
}

// UploadSphere uploads the mesh every body is drawn with.
func (r *Renderer) UploadSphere(m *mesh.Mesh) error {
	b, err := gpu.UploadSphere(m)
	if err != nil {
		return fmt.Errorf("uploading sphere: %w", err)
	}
	if r.sphere != nil {
		r.sphere.Delete()
	}
	r.sphere = b
	r.log.Debug("sphere uploaded", zap.Int("vertices", m.VertexCount()), zap.Int("indices", m.IndexCount()))
	return nil
}

// UploadRing uploads the orbit ring for the named body.
func (r *Renderer) UploadRing(name string, ring *mesh.Ring) error {
	b, err := gpu.UploadLines(ring.Mesh())
	if err != nil {
		return fmt.Errorf("uploading %s orbit: %w", name, err)
	}
	if old, ok := r.rings[name]; ok {
		old.Delete()
	}
	r.rings[name] = b
	return nil
}

// LoadTexture loads the texture bodies refer to by name, once. A file that
// cannot be loaded is replaced by a solid colour so a missing asset never
// stops the viewer.
func (r *Renderer) LoadTexture(name, path string) {
	if _, ok := r.textures[name]; ok {
		return
	}
	id, err := gpu.LoadTexture2D(path)
	if err != nil {
		r.log.Warn("using placeholder texture", zap.String("path", path), zap.Error(err))
		id = gpu.SolidTexture(missingTexture)
	}
	r.textures[name] = id
}

// LoadSkybox loads the six cubemap faces. Without a skybox the background is black.
func (r *Renderer) LoadSkybox(faces []string) error {
	sky, err := skybox.New(faces)
	if err != nil {
		return err
	}
	if r.sky != nil {
		r.sky.Close()
	}
	r.sky = sky
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// ReadPixels reads back the current framebuffer as bottom-up RGBA rows.
// Call it after Draw and before the buffers are swapped.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Projection returns the perspective matrix for a vertical field of view in degrees.
func (r *Renderer) Projection(fovDeg float32) math.Mat4 {
	return camera.Projection(fovDeg, r.config.Width, r.config.Height, r.config.Near, r.config.Far)
}

// Frame is everything one draw of the scene needs.
type Frame struct {
	System     *solar.System
	Rings      map[string]*mesh.Ring
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3
}

// Draw renders one frame: suns, lit bodies, orbit rings, then the skybox.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.sphere == nil {
		return
	}

	bodies := f.System.Bodies()
	gl.ActiveTexture(gl.TEXTURE0)

	r.sun.Use()
	r.sun.SetMat4("view", f.View)
	r.sun.SetMat4("projection", f.Projection)
	r.sun.SetInt("surface", 0)
	for _, b := range bodies {
		if b.IsSun() {
			r.drawBody(r.sun, b)
		}
	}

	r.planet.Use()
	r.planet.SetMat4("view", f.View)
	r.planet.SetMat4("projection", f.Projection)
	r.planet.SetVec3("viewPos", f.CameraPos)
	r.planet.SetInt("surface", 0)
	lightPos := math.Vec3{}
	if sun := f.System.Sun(); sun != nil {
		lightPos = sun.Position
	}
	lighting.SunLight(lightPos).Apply(r.planet)
	lighting.DefaultMaterial.Apply(r.planet)
	for _, b := range bodies {
		if !b.IsSun() {
			r.drawBody(r.planet, b)
		}
	}

	r.orbit.Use()
	r.orbit.SetMat4("view", f.View)
	r.orbit.SetMat4("projection", f.Projection)
	for _, b := range bodies {
		ring, ok := f.Rings[b.Name]
		buf := r.rings[b.Name]
		if !ok || buf == nil {
			continue
		}
		f.System.PlaceRing(b, &ring.Placement)
		r.orbit.SetMat4("model", ring.Model())
		r.orbit.SetVec3("color", ring.Color())
		buf.Draw()
	}

	if r.sky != nil {
		r.sky.Draw(f.View, f.Projection)
	}
}

func (r *Renderer) drawBody(p *shader.Program, b *solar.Body) {
	gl.BindTexture(gl.TEXTURE_2D, r.textures[b.Texture])
	p.SetMat4("model", b.Model())
	r.sphere.Draw()
}
