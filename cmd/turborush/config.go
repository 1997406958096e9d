package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turbo-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration turborush would run with, as YAML.

Search order:
  --config <path>
  ~/.turborush/config.yaml
  ./configs/roadrush.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		cmd.OutOrStdout().Write(config.DefaultYAML()) //nolint:errcheck // Best-effort stdout write
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	cmd.OutOrStdout().Write(data) //nolint:errcheck // Best-effort stdout write
}
