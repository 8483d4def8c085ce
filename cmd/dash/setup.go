package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-dash/internal/audio"
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// newLogger builds the process logger. While a full-screen terminal UI is
// running, stderr belongs to the UI, so logs go to --log-file or nowhere.
// The returned closer releases the log file.
func newLogger(fullscreen bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case fullscreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	return logger, closer, nil
}

// loadGameConfig reads the config file and applies --difficulty.
func loadGameConfig() (config.Config, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the scores database. Games still work without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func newAudio(logger *log.Logger) *audio.Manager {
	return audio.New(audio.Options{
		Mute:   flagMute,
		Volume: 0.6,
		Logger: logger,
	})
}

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// modeArg returns the mode named on the command line, or classic.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return game.ModeClassic
}
