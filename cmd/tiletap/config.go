package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiletap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.tiletap/configs/tiletap.yaml or ./configs/tiletap.yaml and edit it, or
pass any file with 'tiletap play --config <path>'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
