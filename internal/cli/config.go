package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"algoviz/internal/config"
)

// newConfigCommand creates the config command with subcommands.
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage algoviz configuration",
		Long: `Manage algoviz configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Write a configuration file populated with the default values.

Examples:
  algoviz config init
  algoviz config init --output ~/.config/algoviz/config.yaml
  algoviz config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".algoviz.yaml"
			}

			if !force {
				if _, err := os.Stat(outputPath); err == nil {
					return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
				}
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			data, err := yaml.Marshal(config.DefaultConfig())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			if err := os.WriteFile(outputPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Printf("Created config file at %s\n", outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default .algoviz.yaml)")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return initCmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Print the configuration after merging files, environment variables, and flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(GetGlobalConfig())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if len(args) == 1 {
				path = args[0]
			}

			loader := config.NewLoader()
			if _, err := loader.LoadConfig(path); err != nil {
				return err
			}

			if path == "" {
				fmt.Println("Effective configuration is valid.")
			} else {
				fmt.Printf("%s is valid.\n", path)
			}
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration search paths",
		Run: func(cmd *cobra.Command, args []string) {
			found, ok := config.FindConfigFile()
			for _, path := range config.GetConfigPaths() {
				marker := "  "
				if ok && path == found {
					marker = "* "
				}
				fmt.Println(marker + path)
			}
			if !ok {
				fmt.Println("(no config file found; built-in defaults apply)")
			}
		},
	}
}
