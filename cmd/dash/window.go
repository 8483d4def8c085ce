package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/platform/window"
	"github.com/vovakirdan/dino-dash/internal/registry"
)

var (
	flagAssets string
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Start a run of the given mode (classic by default) in a desktop window.

Controls:
  Space/Up/W - Jump
  Down/S     - Duck while held
  Mouse/Tap  - Tap to jump, hold to duck, tap after game over to restart
  P/Esc      - Pause
  R          - Restart (after game over)
  F11        - Toggle fullscreen
  F12        - Save a PNG screenshot
  Q          - Quit

Sprites are drawn in code. Put player.png, player-duck.png, cactus.png,
bird.png, background.png or background-alt.png in --assets to replace them.

Examples:
  dash window
  dash window endless --mute
  dash window --assets ./sprites --width 1600 --height 800`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with PNG sprite overrides")
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) {
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

	logger, closeLog, err := newLogger(false)
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

	err = window.Run(window.Options{
		Mode:   mode,
		Config: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  flagWidth,
			ScreenH:  flagHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:     store,
		Effects:   effects,
		Logger:    logger,
		AssetsDir: flagAssets,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
