package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/window"
)

var flagOffline bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with real key holds and the mouse.

The background and sprites are downloaded from the URLs in the config;
with --offline, or when a download fails, simple shapes are drawn instead.

Controls:
  Left/A, Right/D  - Move
  Enter/Space      - Press the focused button
  Mouse            - Hover and click buttons
  Esc/Q            - Quit

Examples:
  dodge window
  dodge window --offline --difficulty normal`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().BoolVar(&flagOffline, "offline", false, "Draw shapes instead of downloading images")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
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

	return window.Run(window.Options{
		Config:    cfg,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Player:    player,
		Store:     store,
		Logger:    logger,
		Listeners: listeners,
		Offline:   flagOffline,
	})
}
