// Package cli wires the cobra command tree for the visualizer.
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"algoviz/internal/config"
	"algoviz/internal/solverclient"
	"algoviz/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	solverURL string

	globalConfig *config.Config
)

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "Step-by-step algorithm visualizer",
		Long: `algoviz animates classic algorithms in the terminal: the N-Queens
backtracking search and Rabin-Karp string matching.

Three modes are available: simulate (watch the backtracking solver work,
one solution at a time), play (solve the puzzle yourself with
solver-validated placements and hints), and search (watch the rolling
hash slide across a text). The solver runs in-process by default or
behind the JSON service started with 'algoviz serve'.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			// Flags override file and environment settings.
			if verbose {
				cfg.Output.Verbose = true
			}
			if noColor {
				cfg.Output.ColorMode = "never"
			}
			if solverURL != "" {
				cfg.Solver.Mode = "http"
				cfg.Solver.Endpoint = solverURL
			}

			globalConfig = cfg
			ui.ApplyColorMode(cfg.Output.ColorMode)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&solverURL, "solver", "", "solver service URL (switches to http mode)")

	// Add subcommands
	rootCmd.AddCommand(newSimulateCommand())
	rootCmd.AddCommand(newPlayCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newServeCommand(version))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("algoviz %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the configuration loaded by the root command,
// or the defaults when running outside a command (tests).
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func isVerbose() bool {
	return verbose || GetGlobalConfig().Output.Verbose
}

// newSolverClient builds the solver client the configuration asks for.
func newSolverClient() (solverclient.Solver, error) {
	cfg := GetGlobalConfig()
	if cfg.Solver.Mode == "http" {
		return solverclient.NewHTTP(solverclient.HTTPConfig{
			BaseURL: cfg.Solver.Endpoint,
			Timeout: cfg.Solver.Timeout,
		})
	}
	return solverclient.NewLocal(), nil
}
