// turborush is a terminal lane racer: steer the car, dodge the traffic,
// shoot obstacles for points.
//
// Usage:
//
//	turborush                - Play the game
//	turborush config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--mute              - Disable sound
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turborush",
	Short: "Turbo Rush: Road to Victory",
	Long: `Turbo Rush is a terminal lane racer. Obstacles scroll down the road;
steer around them, shoot them for points and grab power-ups.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space      - Shoot
  Enter      - Skip the loading screen
  Q/Esc      - Quit

Examples:
  turborush
  turborush --seed 42
  turborush --mute --config ./my-road.yaml
  turborush config > ~/.turborush/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(configCmd)
}
