package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prison-escape/internal/config"
)

var flagConfigPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolves the configuration the same way play does (--config, then
~/.escape/configs/escape.yaml, then ./configs/escape.yaml, then the built-in
defaults), validates it and prints it as YAML.

Examples:
  escape config
  escape config --config ./my-escape.yaml
  escape config > ~/.escape/configs/escape.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadEscape(flagConfigPath)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
