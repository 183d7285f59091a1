// Package config holds the application configuration: playback timing,
// solver transport, board defaults, and output behavior.
package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Playback PlaybackConfig `yaml:"playback" json:"playback"`
	Solver   SolverConfig   `yaml:"solver" json:"solver"`
	Board    BoardConfig    `yaml:"board" json:"board"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// PlaybackConfig configures the auto-advance timers and the conflict
// flash duration.
type PlaybackConfig struct {
	SearchInterval time.Duration `yaml:"search_interval" json:"search_interval"` // tick period in search mode
	SolveInterval  time.Duration `yaml:"solve_interval" json:"solve_interval"`   // tick period in simulation mode
	ConflictFlash  time.Duration `yaml:"conflict_flash" json:"conflict_flash"`   // how long rejected-placement conflicts stay lit
}

// SolverConfig configures how the solver is reached.
type SolverConfig struct {
	Mode     string        `yaml:"mode" json:"mode"`         // local|http
	Endpoint string        `yaml:"endpoint" json:"endpoint"` // service URL for http mode
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`   // per-request timeout; a hung request fails
}

// BoardConfig configures N-Queens board defaults.
type BoardConfig struct {
	DefaultSize int `yaml:"default_size" json:"default_size"`
}

// OutputConfig configures display behavior.
type OutputConfig struct {
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	Verbose   bool   `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Playback: PlaybackConfig{
			SearchInterval: 800 * time.Millisecond,
			SolveInterval:  1 * time.Second,
			ConflictFlash:  1500 * time.Millisecond,
		},
		Solver: SolverConfig{
			Mode:     "local",
			Endpoint: "http://localhost:8711",
			Timeout:  10 * time.Second,
		},
		Board: BoardConfig{
			DefaultSize: 4,
		},
		Output: OutputConfig{
			ColorMode: "auto",
			Verbose:   false,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.validatePlaybackConfig(); err != nil {
		return err
	}
	if err := c.validateSolverConfig(); err != nil {
		return err
	}
	if err := c.validateBoardConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

func (c *Config) validatePlaybackConfig() error {
	if c.Playback.SearchInterval <= 0 {
		return fmt.Errorf("search_interval must be positive")
	}
	if c.Playback.SolveInterval <= 0 {
		return fmt.Errorf("solve_interval must be positive")
	}
	if c.Playback.ConflictFlash <= 0 {
		return fmt.Errorf("conflict_flash must be positive")
	}
	return nil
}

func (c *Config) validateSolverConfig() error {
	if c.Solver.Mode != "" {
		validModes := map[string]bool{"local": true, "http": true}
		if !validModes[c.Solver.Mode] {
			return fmt.Errorf("invalid solver mode: %s (must be one of: local, http)", c.Solver.Mode)
		}
	}
	if c.Solver.Mode == "http" && c.Solver.Endpoint == "" {
		return fmt.Errorf("solver endpoint is required in http mode")
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("solver timeout must be non-negative")
	}
	return nil
}

func (c *Config) validateBoardConfig() error {
	if c.Board.DefaultSize < 4 || c.Board.DefaultSize > 8 {
		return fmt.Errorf("default_size must be between 4 and 8")
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.ColorMode != "" {
		validModes := map[string]bool{"auto": true, "always": true, "never": true}
		if !validModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
