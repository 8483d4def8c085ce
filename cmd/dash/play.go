package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/broadcast"
	"github.com/vovakirdan/dino-dash/internal/platform/tui"
	"github.com/vovakirdan/dino-dash/internal/registry"
)

var (
	flagSpectate     string
	flagSpectateRate int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a run of the given mode (classic by default) in the terminal.

Controls:
  Space/Up/W - Jump
  Down/S     - Duck (hold)
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start and a lower speed cap
  normal - The default curve
  hard   - Faster start, denser spawns
  fixed  - No progression, speed and spawn rate stay at the base values

Spectators:
  --spectate :8080 serves a websocket feed at ws://host:8080/ws that streams
  msgpack frames of the run.

Examples:
  dash play
  dash play endless --difficulty hard
  dash play --spectate :8080 --spectate-rate 15
  dash play --config ./my-dash.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a spectator websocket on this address (e.g. :8080)")
	playCmd.Flags().IntVar(&flagSpectateRate, "spectate-rate", broadcast.DefaultRate, "Spectator frames per second")
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := modeArg(args)

	mode, err := registry.Get(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	effects := newAudio(logger)
	defer effects.Close()

	opts := tui.Options{
		Mode:    mode,
		Config:  gameCfg,
		Runtime: terminalConfig(),
		Store:   store,
		Effects: effects,
		Logger:  logger,
	}

	if flagSpectate != "" {
		hub := broadcast.NewHub(flagSpectateRate, logger)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := broadcast.ListenAndServe(ctx, flagSpectate, hub); err != nil {
				logger.Error("spectator server failed", "address", flagSpectate, "error", err)
			}
		}()
		opts.Spectators = hub
	}

	if _, err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
