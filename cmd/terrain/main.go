// terrain bakes layered-noise height fields and samples elevations from them.
//
// Usage:
//
//	terrain bake                 - Bake layers from config and print them
//	terrain sample <x> <y>       - Sample one elevation
//	terrain sample --grid        - Sample the configured grid
//	terrain presets              - List, show or delete saved presets
//	terrain noises               - List available noise algorithms
//	terrain serve                - Start the websocket sampler
//	terrain config               - Print or write the effective configuration
//
// Global flags:
//
//	--config <path>        - Config file (default: search order)
//	--seed <value>         - RNG seed for reproducible terrain
//	--db <path>            - Preset database path
//	--noise <name>         - Noise algorithm
//	--post-process <mode>  - raw or recenter
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import noise algorithms to register them
	_ "github.com/vovakirdan/terrain-synth/internal/noise/perlin"
	_ "github.com/vovakirdan/terrain-synth/internal/noise/simplex"
)

var (
	// Global flags
	flagConfig      string
	flagSeed        int64
	flagDBPath      string
	flagLogLevel    string
	flagLogFile     string
	flagNoise       string
	flagPostProcess string
	flagWorkers     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Terrain synth - layered noise height fields",
	Long: `Terrain synth blends weighted, offset and scaled noise layers into a
single elevation function that can be sampled at any planar coordinate.

Available commands:
  bake     - Bake a layer set from config and print it
  sample   - Sample one point or a whole grid
  presets  - Manage saved layer sets
  noises   - Show available noise algorithms
  serve    - Start the websocket sampler
  config   - Print or write the effective configuration

Examples:
  terrain bake --seed 42 --save hills
  terrain sample 1.5 -2 --preset hills
  terrain sample --grid --noise perlin
  terrain serve --addr :9000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to preset database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagNoise, "noise", "", "Noise algorithm (see 'terrain noises')")
	rootCmd.PersistentFlags().StringVar(&flagPostProcess, "post-process", "", "Final step: raw or recenter")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Grid sampling workers (0 = config value, or GOMAXPROCS)")

	// Add subcommands
	rootCmd.AddCommand(bakeCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(noisesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
