package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Playback.SearchInterval != 800*time.Millisecond {
		t.Errorf("Expected search interval 800ms, got %v", cfg.Playback.SearchInterval)
	}
	if cfg.Playback.SolveInterval != 1*time.Second {
		t.Errorf("Expected solve interval 1s, got %v", cfg.Playback.SolveInterval)
	}
	if cfg.Playback.ConflictFlash != 1500*time.Millisecond {
		t.Errorf("Expected conflict flash 1.5s, got %v", cfg.Playback.ConflictFlash)
	}
	if cfg.Solver.Mode != "local" {
		t.Errorf("Expected solver mode local, got %q", cfg.Solver.Mode)
	}
	if cfg.Solver.Timeout != 10*time.Second {
		t.Errorf("Expected solver timeout 10s, got %v", cfg.Solver.Timeout)
	}
	if cfg.Board.DefaultSize != 4 {
		t.Errorf("Expected default board size 4, got %d", cfg.Board.DefaultSize)
	}
	if cfg.Output.ColorMode != "auto" {
		t.Errorf("Expected color mode auto, got %q", cfg.Output.ColorMode)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "http mode with endpoint",
			mutate:  func(c *Config) { c.Solver.Mode = "http" },
			wantErr: false,
		},
		{
			name:    "invalid solver mode",
			mutate:  func(c *Config) { c.Solver.Mode = "remote" },
			wantErr: true,
		},
		{
			name: "http mode without endpoint",
			mutate: func(c *Config) {
				c.Solver.Mode = "http"
				c.Solver.Endpoint = ""
			},
			wantErr: true,
		},
		{
			name:    "negative solver timeout",
			mutate:  func(c *Config) { c.Solver.Timeout = -1 * time.Second },
			wantErr: true,
		},
		{
			name:    "zero search interval",
			mutate:  func(c *Config) { c.Playback.SearchInterval = 0 },
			wantErr: true,
		},
		{
			name:    "negative solve interval",
			mutate:  func(c *Config) { c.Playback.SolveInterval = -time.Second },
			wantErr: true,
		},
		{
			name:    "zero conflict flash",
			mutate:  func(c *Config) { c.Playback.ConflictFlash = 0 },
			wantErr: true,
		},
		{
			name:    "board size too small",
			mutate:  func(c *Config) { c.Board.DefaultSize = 3 },
			wantErr: true,
		},
		{
			name:    "board size too large",
			mutate:  func(c *Config) { c.Board.DefaultSize = 9 },
			wantErr: true,
		},
		{
			name:    "invalid color mode",
			mutate:  func(c *Config) { c.Output.ColorMode = "sometimes" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
