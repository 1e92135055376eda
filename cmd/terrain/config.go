package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the effective configuration",
	Long: `Print the configuration after applying the search order and global
flags. With --write the result is saved to a file that can later be passed
with --config.

Search order:
  --config path -> ~/.terrain/config.yaml -> ./configs/terrain.yaml -> built-in defaults

Examples:
  terrain config
  terrain config --noise perlin --write ~/.terrain/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the effective config to this path")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	if flagConfigWrite != "" {
		if err := cfg.SaveTo(flagConfigWrite); err != nil {
			fatal("writing config: %v", err)
		}
		fmt.Printf("Config written to %s\n", flagConfigWrite)
		return
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fatal("encoding config: %v", err)
	}
	fmt.Print(string(data))
}
