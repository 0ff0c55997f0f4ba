// pong is Starfield Pong: a two-player, same-keyboard Pong for the terminal
// with power-ups, a ghost ball and a drifting starfield.
//
// Usage:
//
//	pong                   - Play (same as "pong play")
//	pong play              - Play on this terminal
//	pong serve             - Start SSH server for remote play
//	pong history           - Show finished rounds and win totals
//	pong config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 100, one tick per 10ms)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.starfield-pong/history.db)
//	--config <path>  - Use a custom pong.yaml
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield-pong/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Starfield Pong - two players, one keyboard",
	Long: `Starfield Pong is a two-player Pong for the terminal with power-ups,
a ghost ball and a drifting starfield. First to 11 wins.

Available commands:
  play     - Play on this terminal (default)
  serve    - Start SSH server for remote play
  history  - Show finished rounds and win totals
  config   - Print the default configuration

Examples:
  pong
  pong play --seed 42
  pong serve --ssh :2222
  pong history`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 100, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration or exits.
func loadConfig() config.PongConfig {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogger returns a logger writing to the --log file, or nil when no
// file was given. The terminal belongs to the game, so nothing is logged there.
func openLogger(prefix string) (*log.Logger, func()) {
	if flagLogPath == "" {
		return nil, func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
