package window

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/epic-rps/internal/assets"
	"github.com/vovakirdan/epic-rps/internal/config"
	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/registry"
)

// App adapts a registry.Game to ebiten.Game.
type App struct {
	ctx    *Context
	game   registry.Game
	cfg    config.GameConfig
	logger *log.Logger

	frame core.InputFrame
	keys  []ebiten.Key
}

func newApp(ctx *Context, game registry.Game, logger *log.Logger) *App {
	return &App{
		ctx:    ctx,
		game:   game,
		cfg:    ctx.cfg,
		logger: logger,
		frame:  core.NewInputFrame(),
	}
}

// Update: poll input, step the game (fixed TPS).
func (a *App) Update() error {
	a.keys = pollInput(&a.frame, a.keys)
	defer a.frame.Clear()

	if a.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := a.game.Step(a.frame)
	if result.RoundResolved {
		snap := a.game.Snapshot()
		a.logger.Info("round resolved",
			"round", result.State.Rounds,
			"left", snap.Left,
			"right", snap.Right,
			"result", snap.Status,
		)
	}
	return nil
}

// Draw: background, banner, sprites, status.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := float32(a.cfg.Window.Width), float32(a.cfg.Window.Height)

	screen.Fill(a.cfg.Window.Clear.RGBA())
	vector.DrawFilledRect(screen, 0, 0, w, h, a.cfg.Window.Background.RGBA(), false)

	a.drawHandle(screen, &a.ctx.welcome, a.cfg.Welcome.Position.Point())

	snap := a.game.Snapshot()
	a.drawSprite(screen, snap.Left, a.cfg.Layout.Left.Point())
	a.drawSprite(screen, snap.Right, a.cfg.Layout.Right.Point())

	a.drawStatus(screen, snap)
}

// drawSprite draws a move texture with its top-left corner at p.
// Unknown or unloaded sprites draw nothing.
func (a *App) drawSprite(screen *ebiten.Image, name string, p core.Point) {
	if name == "" {
		return
	}
	h, ok := a.ctx.sprites.Get(name)
	if !ok {
		return
	}
	a.drawHandle(screen, h, p)
}

// drawHandle draws the texture into the rect at p sized by the handle.
func (a *App) drawHandle(screen *ebiten.Image, h *assets.Handle[*ebiten.Image], p core.Point) {
	img, ok := h.Get()
	if !ok {
		return
	}
	w, hh := h.Size()
	op := &ebiten.DrawImageOptions{GeoM: destGeoM(p, w, hh, img.Bounds())}
	if a.cfg.Window.LinearFilter {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(img, op)
}

// destGeoM maps src onto the w x h rect whose top-left corner is p.
// A zero dimension keeps the source size on that axis.
func destGeoM(p core.Point, w, h int, src image.Rectangle) ebiten.GeoM {
	var g ebiten.GeoM
	sx, sy := 1.0, 1.0
	if w > 0 && src.Dx() > 0 {
		sx = float64(w) / float64(src.Dx())
	}
	if h > 0 && src.Dy() > 0 {
		sy = float64(h) / float64(src.Dy())
	}
	g.Scale(sx, sy)
	g.Translate(float64(p.X), float64(p.Y))
	return g
}

// drawStatus draws the round result and the next-input hint, one line each.
func (a *App) drawStatus(screen *ebiten.Image, snap core.Snapshot) {
	if a.ctx.statusFace == nil {
		return
	}

	p := a.cfg.Status.Position
	lineH := a.cfg.Status.Size * 1.5
	y := float64(p.Y)

	for _, line := range []string{snap.Status, snap.Hint} {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(p.X), y)
		op.ColorScale.ScaleWithColor(a.cfg.Status.Color.RGBA())
		text.Draw(screen, line, a.ctx.statusFace, op)
		y += lineH
	}
}

// Layout: fixed logical size, ebiten scales to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
