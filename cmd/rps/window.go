package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/epic-rps/internal/config"
	"github.com/vovakirdan/epic-rps/internal/games/roshambo"
	"github.com/vovakirdan/epic-rps/internal/platform/window"
	"github.com/vovakirdan/epic-rps/internal/registry"
)

// defaultMode is opened when no mode is given.
const defaultMode = roshambo.ClassicID

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Open the game window",
	Long: `Open the game window in the given mode (default: classic).

Media (rock, paper and scissors images and the welcome font) is read
relative to the working directory unless the config says otherwise.
If anything fails to load the error is logged and the window is not
opened.

Examples:
  rps window
  rps window versus
  rps window classic --config ./my-rps.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	modeID := defaultMode
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'rps list' to see available modes.")
		os.Exit(1)
	}

	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		logger.Error("could not create mode", "mode", modeID, "error", err)
		return
	}

	// Failures are reported but never change the exit status.
	err = window.Run(game, window.Options{
		Config:  cfg,
		Runtime: runtimeConfig(cfg.Window.Width, cfg.Window.Height),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("window session failed", "error", err)
	}
}
