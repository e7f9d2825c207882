package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/scene"
	"github.com/vovakirdan/tui-dodge/internal/spectate"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Flags shared by play and window.
var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagSpectate   string
	flagPlayer     string
)

// newLogger creates the process logger. Without --log-file it writes to
// fallback, which the terminal frontends set to io.Discard.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the YAML config and applies --difficulty.
func loadGameConfig() (config.DodgeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openStore opens the score database. Scores are optional, so failures
// only log a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playerName returns --player, or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.AnonymousPlayer
}

// extras starts the optional subsystems requested by flags and returns their
// listeners. The subsystems stop when ctx is cancelled or cleanup runs.
func extras(ctx context.Context, player string, logger *log.Logger) ([]scene.Listener, func()) {
	var listeners []scene.Listener
	cleanup := func() {}

	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			listeners = append(listeners, sm.Listen)
			cleanup = sm.Cleanup
		}
	}

	if flagSpectate != "" {
		srv := spectate.NewServer(flagSpectate, logger)
		if err := srv.Start(ctx); err != nil {
			logger.Warn("spectator feed disabled", "err", err)
		} else {
			listeners = append(listeners, srv.Hub().Listener(player))
		}
	}

	return listeners, cleanup
}
