// Package config provides YAML-based configuration for the game window:
// window size and colors, media paths, text and sprite placement.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/vovakirdan/epic-rps/internal/core"
)

// GameConfig contains all configuration for the graphical frontend.
type GameConfig struct {
	Window  WindowConfig `yaml:"window"`
	Media   MediaConfig  `yaml:"media"`
	Welcome TextConfig   `yaml:"welcome"`
	Status  TextConfig   `yaml:"status"`
	Layout  LayoutConfig `yaml:"layout"`
}

// WindowConfig defines the window and its background.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Background   RGB    `yaml:"background"`
	Clear        RGB    `yaml:"clear"`         // Color the frame is cleared to before the background fill
	LinearFilter bool   `yaml:"linear_filter"` // Linear texture filtering when sprites are scaled
}

// MediaConfig lists asset paths, relative to the working directory.
type MediaConfig struct {
	Rock     string `yaml:"rock"`
	Paper    string `yaml:"paper"`
	Scissors string `yaml:"scissors"`
	Font     string `yaml:"font"`
}

// TextConfig defines one line of rasterized text.
// Text is empty for lines whose content comes from the game.
type TextConfig struct {
	Text     string  `yaml:"text,omitempty"`
	Size     float64 `yaml:"size"`
	Color    RGB     `yaml:"color"`
	Position Pos     `yaml:"position"`
}

// LayoutConfig places the two participant sprites.
type LayoutConfig struct {
	Left  Pos `yaml:"left"`
	Right Pos `yaml:"right"`
}

// RGB is an opaque color.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA converts to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Pos is a screen position in pixels.
type Pos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts to a core.Point.
func (p Pos) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// Sprites returns the asset key to path mapping.
func (m MediaConfig) Sprites() map[string]string {
	return map[string]string{
		"rock":     m.Rock,
		"paper":    m.Paper,
		"scissors": m.Scissors,
	}
}

// Validate reports every problem with the config at once.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	for name, path := range c.Media.Sprites() {
		if path == "" {
			errs = append(errs, fmt.Errorf("media.%s is empty", name))
		}
	}
	if c.Media.Font == "" {
		errs = append(errs, errors.New("media.font is empty"))
	}
	if c.Welcome.Size <= 0 {
		errs = append(errs, fmt.Errorf("welcome.size %v must be positive", c.Welcome.Size))
	}
	if c.Status.Size <= 0 {
		errs = append(errs, fmt.Errorf("status.size %v must be positive", c.Status.Size))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
