// rps is a rock-paper-scissors game for the desktop and the terminal.
//
// Usage:
//
//	rps                    - Open the game window (classic mode)
//	rps window [mode]      - Open the game window in the given mode
//	rps play <mode>        - Play in the terminal
//	rps menu               - Pick a mode interactively in the terminal
//	rps list               - List available modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for the CPU opponent
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/epic-rps/internal/core"
	// Import modes to register them
	_ "github.com/vovakirdan/epic-rps/internal/games/roshambo"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Epic Rock Paper Scissors",
	Long: `Epic Rock Paper Scissors opens a window and lets you play
rock-paper-scissors against the computer or a friend.

Controls:
  1 / 2 / 3  - Rock / Paper / Scissors
  R          - Next round
  Esc/Q      - Quit

Available commands:
  window   - Open the game window in a given mode
  play     - Play in the terminal
  menu     - Interactive mode picker in the terminal
  list     - Show all available modes

Examples:
  rps
  rps window versus
  rps play classic --seed 42
  rps menu`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runWindow(cmd, []string{defaultMode})
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the process logger. An unknown level falls back to info.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		Prefix:          "rps",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// runtimeConfig builds the runtime config shared by every command.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
