package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A/H     - Move left (left wins when both are held)
  Right/D/L    - Move right
  Enter/Space  - Press the button on screen
  Mouse        - Hover and click buttons
  Ctrl+S       - Save a text screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression (the default game)

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --config ./my-dodge.yaml
  dodge play --sound --spectate :8081`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8081)")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	player := playerName()
	listeners, cleanup := extras(ctx, player, logger)
	defer cleanup()

	return tui.Run(tui.Options{
		Config:    cfg,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Player:    player,
		Store:     store,
		Logger:    logger,
		Listeners: listeners,
		Width:     width,
		Height:    height,
	})
}
