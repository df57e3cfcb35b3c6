// Package config handles viewer configuration loading and management.
package config

import (
	"path/filepath"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Bodies    []BodyConfig    `yaml:"bodies"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// SceneConfig holds mesh resolution and simulation settings.
type SceneConfig struct {
	AssetDir        string   `yaml:"asset_dir"`
	SpherePrecision int      `yaml:"sphere_precision"`
	OrbitSegments   int      `yaml:"orbit_segments"`
	UnitScale       float32  `yaml:"unit_scale"` // World units per orbit unit
	TimeScale       float32  `yaml:"time_scale"` // Positive; clamped to [1/64, 64] at runtime
	Paused          bool     `yaml:"paused"`
	Skybox          []string `yaml:"skybox"` // right, left, top, bottom, front, back
}

// AssetPath resolves an asset reference against AssetDir. Absolute paths
// and an empty AssetDir leave the reference unchanged.
func (s SceneConfig) AssetPath(name string) string {
	if name == "" || s.AssetDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.AssetDir, name)
}

// SkyboxPaths returns the resolved cubemap face paths.
func (s SceneConfig) SkyboxPaths() []string {
	paths := make([]string, len(s.Skybox))
	for i, face := range s.Skybox {
		paths[i] = s.AssetPath(face)
	}
	return paths
}

// CameraConfig holds the initial camera state.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"` // Vertical field of view in degrees
}

// Body kinds.
const (
	KindSun    = "sun"
	KindPlanet = "planet"
	KindMoon   = "moon"
)

// BodyConfig describes one celestial body.
type BodyConfig struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	Parent  string  `yaml:"parent"`
	Texture string  `yaml:"texture"`
	Size    float32 `yaml:"size"` // Sphere radius in world units

	OrbitRadius float32 `yaml:"orbit_radius"` // Orbit units; negative reverses the start point
	OrbitPeriod float32 `yaml:"orbit_period"` // Seconds per revolution; 0 keeps the body fixed
	OrbitPhase  float32 `yaml:"orbit_phase"`  // Degrees
	// OrbitTilt rotates the orbital plane (degrees) about OrbitTiltAxis.
	OrbitTilt     float32    `yaml:"orbit_tilt"`
	OrbitTiltAxis [3]float32 `yaml:"orbit_tilt_axis"`

	SpinPeriod float32    `yaml:"spin_period"`
	SpinAxis   [3]float32 `yaml:"spin_axis"`

	ShowOrbit  bool       `yaml:"show_orbit"`
	OrbitColor [3]float32 `yaml:"orbit_color"`
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	Music  string  `yaml:"music"` // WAV file; empty disables audio
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

// TelemetryConfig holds the optional state streaming server settings.
type TelemetryConfig struct {
	Addr     string        `yaml:"addr"` // Empty disables the server
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock sun, Mercury, Earth and Moon.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1600,
			Height:        1200,
			Fullscreen:    false,
			VSync:         true,
			Near:          0.1,
			Far:           1000,
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			AssetDir:        "res",
			SpherePrecision: 96,
			OrbitSegments:   3000,
			UnitScale:       0.1,
			TimeScale:       1,
			Paused:          true,
			Skybox: []string{
				"images/skybox1/right.png",
				"images/skybox1/left.png",
				"images/skybox1/top.png",
				"images/skybox1/bottom.png",
				"images/skybox1/front.png",
				"images/skybox1/back.png",
			},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 4, 18},
			Yaw:         -90,
			Pitch:       -12,
			Speed:       6,
			Sensitivity: 0.1,
			Zoom:        45,
		},
		Bodies: DefaultBodies(),
		Audio: AudioConfig{
			Volume: 0.7,
		},
		Telemetry: TelemetryConfig{
			Interval: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultBodies returns the stock system.
func DefaultBodies() []BodyConfig {
	white := [3]float32{1, 1, 1}
	up := [3]float32{0, 1, 0}
	return []BodyConfig{
		{
			Name:       "Sun",
			Kind:       KindSun,
			Texture:    "images/sun.png",
			Size:       1.5,
			SpinPeriod: 60,
			SpinAxis:   up,
		},
		{
			Name:        "Mercury",
			Kind:        KindPlanet,
			Parent:      "Sun",
			Texture:     "images/mercury.png",
			Size:        0.25,
			OrbitRadius: 40,
			OrbitPeriod: 15,
			OrbitPhase:  120,
			SpinPeriod:  30,
			SpinAxis:    up,
			ShowOrbit:   true,
			OrbitColor:  [3]float32{0.7, 0.7, 0.7},
		},
		{
			Name:        "Earth",
			Kind:        KindPlanet,
			Parent:      "Sun",
			Texture:     "images/earth.png",
			Size:        0.5,
			OrbitRadius: 100,
			OrbitPeriod: 60,
			SpinPeriod:  4,
			SpinAxis:    [3]float32{0.1, -1, 0},
			ShowOrbit:   true,
			OrbitColor:  white,
		},
		{
			Name:          "Moon",
			Kind:          KindMoon,
			Parent:        "Earth",
			Texture:       "images/moon.png",
			Size:          0.15,
			OrbitRadius:   -20,
			OrbitPeriod:   8,
			OrbitTilt:     90,
			OrbitTiltAxis: [3]float32{0, 0, 1},
			SpinPeriod:    8,
			SpinAxis:      up,
			ShowOrbit:     true,
			OrbitColor:    white,
		},
	}
}
