package config

import (
	"testing"

	"github.com/retroenv/retro65c02/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
	}{
		{"default", false, false},
		{"debug", true, false},
		{"quiet", false, true},
		{"debug wins over quiet", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.debug, tt.quiet))
		})
	}
}

func TestCreateProcessorConfig(t *testing.T) {
	logger := log.NewTestLogger(t)

	cfg := CreateProcessorConfig(logger, options.Emulator{AllowUnused: true}, nil)
	assert.True(t, cfg.AllowUnusedOpcodes)
	assert.True(t, cfg.Logger == logger)
	assert.True(t, cfg.Observer == nil)

	cfg = CreateProcessorConfig(logger, options.Emulator{}, nil)
	assert.False(t, cfg.AllowUnusedOpcodes)
}
