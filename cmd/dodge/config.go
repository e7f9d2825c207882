package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default YAML configuration.

Save it to ~/.dodge/configs/dodge.yaml or ./configs/dodge.yaml and edit it
to change the game, or pass it to play with --config.

Examples:
  dodge config > ~/.dodge/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
