package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield-pong/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in pong.yaml so it can be saved and edited.

Configuration is searched in this order:
  1. --config <path>
  2. ~/.starfield-pong/configs/pong.yaml
  3. ./configs/pong.yaml
  4. built-in defaults

Examples:
  pong config > ~/.starfield-pong/configs/pong.yaml
  pong config --check --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the configuration that would be loaded")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigCheck {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration OK")
	fmt.Printf("  field:     %gx%g\n", cfg.Field.HalfWidth*2, cfg.Field.HalfHeight*2)
	fmt.Printf("  win score: %d\n", cfg.Gameplay.WinScore)
	fmt.Printf("  audio:     %v\n", cfg.Audio.Enabled)
}
