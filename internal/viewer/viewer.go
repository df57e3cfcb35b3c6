// Package viewer implements the main loop: input, simulation, drawing.
package viewer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/control"
	"github.com/Faultbox/orrery/internal/engine/audio"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/screenshot"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/solar"
	"github.com/Faultbox/orrery/internal/telemetry"
	"github.com/Faultbox/orrery/pkg/mesh"
)

// Title is the window title prefix.
const Title = "Orrery"

// Viewer is the running application.
type Viewer struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	// Set by F12, served after the next draw.
	screenshotPending bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.State
	controls *control.Controller

	system *solar.System
	rings  map[string]*mesh.Ring

	music     *audio.Player
	telemetry *telemetry.Server
	shots     *screenshot.Capture
}

// New creates the window and GL resources and builds the scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
		input:  input.New(),
		rings:  make(map[string]*mesh.Ring),
		shots:  screenshot.New(cfg.Graphics.ScreenshotDir, "orrery"),
	}

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("bodies", len(cfg.Bodies)),
	)

	var err error
	v.system, err = solar.New(cfg.Bodies, solar.Options{
		UnitScale: cfg.Scene.UnitScale,
		TimeScale: cfg.Scene.TimeScale,
		Paused:    cfg.Scene.Paused,
	})
	if err != nil {
		return nil, fmt.Errorf("building solar system: %w", err)
	}

	// Create window (this also creates the OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist.
	// The drawable size differs from the window size on high-DPI displays.
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Near:   cfg.Graphics.Near,
		Far:    cfg.Graphics.Far,
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.buildScene(); err != nil {
		v.Close()
		return nil, err
	}

	v.controls = control.New(cfg.Camera)
	v.window.CaptureMouse(true)

	v.startAudio()
	v.startTelemetry()

	v.log.Info("viewer initialized")
	return v, nil
}

// buildScene generates every mesh once and uploads it.
func (v *Viewer) buildScene() error {
	scene := v.config.Scene

	sphere, err := mesh.Sphere(mesh.SphereParams{Precision: scene.SpherePrecision})
	if err != nil {
		return fmt.Errorf("generating sphere: %w", err)
	}
	if err := v.renderer.UploadSphere(sphere); err != nil {
		return err
	}

	for _, b := range v.system.Bodies() {
		v.renderer.LoadTexture(b.Texture, scene.AssetPath(b.Texture))
		if !b.ShowOrbit {
			continue
		}
		ring, err := mesh.NewRing(v.system.RingParams(b, scene.OrbitSegments))
		if err != nil {
			return fmt.Errorf("generating %s orbit: %w", b.Name, err)
		}
		if err := v.renderer.UploadRing(b.Name, ring); err != nil {
			return err
		}
		v.rings[b.Name] = ring
	}

	if len(scene.Skybox) > 0 {
		if err := v.renderer.LoadSkybox(scene.SkyboxPaths()); err != nil {
			v.log.Warn("skybox unavailable", zap.Error(err))
		}
	}

	v.log.Info("scene built",
		zap.Int("sphere_vertices", sphere.VertexCount()),
		zap.Int("sphere_triangles", sphere.TriangleCount()),
		zap.Int("orbits", len(v.rings)),
	)
	return nil
}

// startAudio begins the music track. Audio failures are never fatal.
func (v *Viewer) startAudio() {
	cfg := v.config.Audio
	if cfg.Music == "" {
		return
	}
	v.music = audio.New(cfg.Volume, cfg.Muted)
	if err := v.music.Init(); err != nil {
		v.log.Warn("audio disabled", zap.Error(err))
		v.music = nil
		return
	}
	if err := v.music.PlayFile(v.config.Scene.AssetPath(cfg.Music)); err != nil {
		v.log.Warn("music unavailable", zap.String("path", cfg.Music), zap.Error(err))
	}
}

func (v *Viewer) startTelemetry() {
	cfg := v.config.Telemetry
	if cfg.Addr == "" {
		return
	}
	v.telemetry = telemetry.New(cfg.Interval)
	if _, err := v.telemetry.Start(cfg.Addr); err != nil {
		v.log.Warn("telemetry disabled", zap.Error(err))
		v.telemetry = nil
		return
	}
	v.telemetry.Publish(v.system.Snapshot())
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting main loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		v.input.BeginFrame()
		v.window.PollEvents(v.input)
		if w, h, ok := v.input.Resized(); ok {
			v.renderer.Resize(w, h)
		}
		v.handleActions(v.controls.Update(v.input, v.system, now, dt))
		if !v.running {
			break
		}

		// 2. Advance the simulation
		v.system.Update(dt)
		if v.telemetry != nil {
			v.telemetry.Publish(v.system.Snapshot())
		}

		// 3. Render
		cam := v.controls.Camera()
		v.renderer.Draw(renderer.Frame{
			System:     v.system,
			Rings:      v.rings,
			View:       cam.ViewMatrix(),
			Projection: v.renderer.Projection(v.controls.Zoom()),
			CameraPos:  cam.Position(),
		})

		if v.screenshotPending {
			v.screenshotPending = false
			v.saveScreenshot()
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if now.Sub(fpsTimer) >= time.Second {
			following, ok := v.controls.Following()
			if !ok {
				following = ""
			}
			v.window.SetTitle(control.Title(Title, frameCount, v.system, following))
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

func (v *Viewer) handleActions(act control.Actions) {
	if act.Quit {
		v.log.Info("quit requested")
		v.running = false
		return
	}
	if v.music != nil && control.ApplyMusic(act, v.music) {
		v.log.Info("music",
			zap.String("track", v.music.Path()),
			zap.Bool("playing", v.music.Playing()),
			zap.Bool("muted", v.music.Muted()),
			zap.Float64("volume", v.music.Volume()),
		)
	}
	if act.PauseToggled {
		v.log.Info("animation", zap.Bool("paused", v.system.Paused()))
	}
	if act.TimeReset {
		v.log.Info("simulation time reset")
	}
	if act.ScaleChanged {
		v.log.Info("time scale", zap.Float32("scale", v.system.TimeScale()))
	}
	if act.Screenshot {
		v.screenshotPending = true
	}
	if act.CameraChanged {
		target, following := v.controls.Following()
		// The fly camera owns the mouse; the orbit camera drags with a button.
		v.window.CaptureMouse(!following)
		v.log.Debug("camera", zap.String("target", target), zap.Bool("following", following))
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases everything New created, in reverse order.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.telemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := v.telemetry.Shutdown(ctx); err != nil {
			v.log.Warn("telemetry shutdown", zap.Error(err))
		}
		cancel()
	}
	if v.music != nil {
		v.music.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
