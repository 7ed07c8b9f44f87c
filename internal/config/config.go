// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retro65c02/internal/options"
	"github.com/retroenv/retro65c02/mpu"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateProcessorConfig creates the processor configuration for an
// emulation run. The observer is optional.
func CreateProcessorConfig(logger *log.Logger, opts options.Emulator, observer mpu.Observer) mpu.Config {
	return mpu.Config{
		AllowUnusedOpcodes: opts.AllowUnused,
		Logger:             logger,
		Observer:           observer,
	}
}
