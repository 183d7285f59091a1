package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order.
var ConfigPaths = []string{
	"./.algoviz.yaml",               // project config (highest priority)
	"~/.config/algoviz/config.yaml", // user config
	"/etc/algoviz/config.yaml",      // system config (lowest priority)
}

// Loader handles configuration loading with priority merging.
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{configPaths: ConfigPaths}
}

// LoadConfig loads configuration with priority order: env variables over
// the search-path files over built-in defaults. A custom path replaces
// the search paths entirely.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win.
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := l.loadFromFile(config, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", path, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	return nil
}

func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"ALGOVIZ_PLAYBACK_SEARCH_INTERVAL": func(v string) error { return parseDuration(v, &config.Playback.SearchInterval) },
		"ALGOVIZ_PLAYBACK_SOLVE_INTERVAL":  func(v string) error { return parseDuration(v, &config.Playback.SolveInterval) },
		"ALGOVIZ_PLAYBACK_CONFLICT_FLASH":  func(v string) error { return parseDuration(v, &config.Playback.ConflictFlash) },

		"ALGOVIZ_SOLVER_MODE":     func(v string) error { config.Solver.Mode = v; return nil },
		"ALGOVIZ_SOLVER_ENDPOINT": func(v string) error { config.Solver.Endpoint = v; return nil },
		"ALGOVIZ_SOLVER_TIMEOUT":  func(v string) error { return parseDuration(v, &config.Solver.Timeout) },

		"ALGOVIZ_BOARD_DEFAULT_SIZE": func(v string) error { return parseInt(v, &config.Board.DefaultSize) },

		"ALGOVIZ_OUTPUT_COLOR_MODE": func(v string) error { config.Output.ColorMode = v; return nil },
		"ALGOVIZ_OUTPUT_VERBOSE":    func(v string) error { return parseBool(v, &config.Output.Verbose) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}
	return nil
}

// GetConfigPaths returns the expanded config file search paths.
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search
// paths.
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expanded := expandPath(path)
		if fileExists(expanded) {
			return expanded, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read.
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}
	return nil
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source into destination; only non-zero source
// values overwrite.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	mergePlaybackConfig(&dst.Playback, &src.Playback)
	mergeSolverConfig(&dst.Solver, &src.Solver)
	mergeBoardConfig(&dst.Board, &src.Board)
	mergeOutputConfig(&dst.Output, &src.Output)
}

func mergePlaybackConfig(dst, src *PlaybackConfig) {
	if src.SearchInterval > 0 {
		dst.SearchInterval = src.SearchInterval
	}
	if src.SolveInterval > 0 {
		dst.SolveInterval = src.SolveInterval
	}
	if src.ConflictFlash > 0 {
		dst.ConflictFlash = src.ConflictFlash
	}
}

func mergeSolverConfig(dst, src *SolverConfig) {
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.Timeout > 0 {
		dst.Timeout = src.Timeout
	}
}

func mergeBoardConfig(dst, src *BoardConfig) {
	if src.DefaultSize > 0 {
		dst.DefaultSize = src.DefaultSize
	}
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.Verbose {
		dst.Verbose = src.Verbose
	}
}

func parseDuration(value string, target *time.Duration) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*target = d
	return nil
}

func parseInt(value string, target *int) error {
	i, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*target = i
	return nil
}

func parseBool(value string, target *bool) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*target = b
	return nil
}
