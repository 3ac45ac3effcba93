// Package window runs a game in a desktop window using Ebitengine.
// Sprites are PNG textures, the banner is rasterized from a TrueType font.
package window

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/epic-rps/internal/assets"
	"github.com/vovakirdan/epic-rps/internal/config"
)

// spriteOrder is the load order for the move sprites.
var spriteOrder = []string{"rock", "paper", "scissors"}

var errEmptyText = errors.New("text has zero size")

// Context owns every renderer resource of a window session.
// It is created by Run and closed exactly once when Run returns.
type Context struct {
	cfg    config.GameConfig
	fsys   fs.FS
	logger *log.Logger

	loader  *assets.Loader[*ebiten.Image]
	sprites *assets.Set[*ebiten.Image]
	welcome assets.Handle[*ebiten.Image]

	fontSource *text.GoTextFaceSource
	statusFace text.Face
}

// NewContext creates a context reading media from fsys.
func NewContext(cfg config.GameConfig, fsys fs.FS, logger *log.Logger) *Context {
	return &Context{
		cfg:     cfg,
		fsys:    fsys,
		logger:  logger,
		loader:  assets.NewLoader(fsys, uploadImage, freeImage, logger),
		sprites: assets.NewSet[*ebiten.Image](),
	}
}

func uploadImage(img image.Image) (*ebiten.Image, error) {
	return ebiten.NewImageFromImage(img), nil
}

func freeImage(img *ebiten.Image) {
	img.Deallocate()
}

// LoadMedia loads the sprites, the font and the welcome banner.
// Every asset is attempted; the returned error joins all failures.
func (c *Context) LoadMedia() error {
	var errs []error

	if err := c.loader.LoadSet(c.sprites, c.cfg.Media.Sprites(), spriteOrder); err != nil {
		c.logger.Error("failed to load sprite textures")
		errs = append(errs, err)
	}

	if err := c.loadFont(); err != nil {
		c.logger.Error("failed to load font", "path", c.cfg.Media.Font, "error", err)
		errs = append(errs, err)
	} else if err := c.loadWelcome(); err != nil {
		c.logger.Error("failed to create welcome message texture", "error", err)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// loadFont parses the configured font and prepares the status face.
func (c *Context) loadFont() error {
	font, err := assets.LoadFont(c.fsys, c.cfg.Media.Font)
	if err != nil {
		return err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(font.Data))
	if err != nil {
		return &assets.FontError{Path: font.Path, Err: err}
	}
	c.fontSource = src
	c.statusFace = &text.GoTextFace{Source: src, Size: c.cfg.Status.Size}
	c.logger.Debug("font loaded", "path", font.Path, "name", font.Name)
	return nil
}

// loadWelcome rasterizes the banner into its own texture.
func (c *Context) loadWelcome() error {
	face := &text.GoTextFace{Source: c.fontSource, Size: c.cfg.Welcome.Size}
	img, w, h, err := renderText(face, c.cfg.Welcome.Text, c.cfg.Welcome.Color.RGBA())
	if err != nil {
		return err
	}
	c.welcome.Set(img, w, h, freeImage)
	return nil
}

// renderText rasterizes s into a new texture sized to fit it.
func renderText(face text.Face, s string, clr color.Color) (*ebiten.Image, int, int, error) {
	w, h := text.Measure(s, face, 0)
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw < 1 || ih < 1 {
		return nil, 0, 0, &assets.FontError{Err: errEmptyText}
	}

	img := ebiten.NewImage(iw, ih)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, s, face, op)
	return img, iw, ih, nil
}

// Close releases every texture. Safe to call more than once.
func (c *Context) Close() {
	c.sprites.ReleaseAll()
	c.welcome.Release()
}
