// Package main is the entry point for the Orrery viewer.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/viewer"
)

func init() {
	// SDL and OpenGL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fatal("Config error", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal("Logger error", err)
	}
	defer logger.Sync()

	logger.Info("=== Orrery ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		fatal("Startup error", err)
	}

	err = v.Run()
	v.Close()
	if err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		fatal("Viewer error", err)
	}

	logger.Info("viewer closed normally")
}

// fatal reports err on stderr and in a message box, then exits.
// The viewer is usually started from a desktop where stderr is invisible.
func fatal(title string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", title, err)
	dialog.Message("%v", err).Title("Orrery: " + title).Error()
	os.Exit(1)
}
