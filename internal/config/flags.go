package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagPrecision  = flag.Int("precision", 0, "Sphere mesh precision (stacks and slices)")
	flagSegments   = flag.Int("segments", 0, "Orbit ring segment count")
	flagTelemetry  = flag.String("telemetry", "", "Telemetry listen address, e.g. :8090")
	flagMute       = flag.Bool("mute", false, "Start with music muted")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagPrecision > 0 {
		cfg.Scene.SpherePrecision = *flagPrecision
	}
	if *flagSegments > 0 {
		cfg.Scene.OrbitSegments = *flagSegments
	}
	if *flagTelemetry != "" {
		cfg.Telemetry.Addr = *flagTelemetry
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
}
