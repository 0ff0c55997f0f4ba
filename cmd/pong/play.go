package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfield-pong/internal/audio"
	"github.com/vovakirdan/starfield-pong/internal/core"
	"github.com/vovakirdan/starfield-pong/internal/games/pong"
	"github.com/vovakirdan/starfield-pong/internal/platform/tui"
	"github.com/vovakirdan/starfield-pong/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start Starfield Pong on this terminal. Both players share the keyboard.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  Space      - Start a round (or restart after a win)
  M          - Mute/unmute
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Power-ups:
  cyan   - Size: doubles the paddle of the last hitter for two hits
  orange - Ghost: the ball fades out for three seconds

Examples:
  pong play
  pong play --seed 42
  pong play --mute
  pong play --config ./my-pong.yaml --log ./pong.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) {
	pongCfg := loadConfig()

	logger, closeLog := openLogger("pong")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Sound is optional: the game runs silently when the speaker is unavailable
	var speaker pong.Speaker = &audio.Nop{}
	if pongCfg.Audio.Enabled {
		sm := audio.NewSoundManager(pongCfg.Audio, logger)
		if err := sm.Initialize(); err != nil {
			if logger != nil {
				logger.Warn("audio disabled", "error", err)
			}
		} else {
			defer sm.Cleanup()
			speaker = sm
		}
	}
	if flagMute {
		speaker.ToggleMute()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	game := pong.New(pongCfg, speaker)
	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     logger,
		HoldWindow: pongCfg.Gameplay.HoldWindow,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
