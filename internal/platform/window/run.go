package window

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/epic-rps/internal/config"
	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/multiplayer"
	"github.com/vovakirdan/epic-rps/internal/registry"
)

// Options configures a window session.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Media is where asset paths are resolved. Defaults to the working directory.
	Media fs.FS
}

// Run opens the window and plays game until the window is closed or the
// player quits. Media is loaded before the window opens; if any asset
// fails the loop is skipped. Textures are always released before Run returns.
func Run(game registry.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	media := opts.Media
	if media == nil {
		media = os.DirFS(".")
	}

	match := multiplayer.NewMatch(game.ID(), game.Mode())
	logger = logger.With("match", match.ID(), "game", match.GameID())

	ctx := NewContext(opts.Config, media, logger)
	defer ctx.Close()

	if err := ctx.LoadMedia(); err != nil {
		return fmt.Errorf("failed to load media: %w", err)
	}

	win := opts.Config.Window
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	game.Reset(rt)
	logger.Info("starting", "mode", match.Mode())

	if err := ebiten.RunGame(newApp(ctx, game, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}

	state := game.State()
	logger.Info("session over", "rounds", state.Rounds, "player1_wins", state.Score)
	return nil
}
