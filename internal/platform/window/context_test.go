package window

import (
	"errors"
	"image"
	"io"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/epic-rps/internal/assets"
	"github.com/vovakirdan/epic-rps/internal/config"
	"github.com/vovakirdan/epic-rps/internal/core"
	"github.com/vovakirdan/epic-rps/internal/games/roshambo"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// leafErrors flattens errors.Join trees.
func leafErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, leafErrors(e)...)
		}
		return out
	}
	return []error{err}
}

func TestLoadMediaReportsEveryFailure(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"empty media directory", fstest.MapFS{}},
		{"font is not a font", fstest.MapFS{
			"media/ComicSansMS.ttf": &fstest.MapFile{Data: []byte("not a font")},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext(config.DefaultConfig(), tc.fsys, quietLogger())
			defer ctx.Close()

			err := ctx.LoadMedia()
			if err == nil {
				t.Fatal("LoadMedia() should fail without media")
			}

			var sprites []string
			fonts := 0
			for _, e := range leafErrors(err) {
				var loadErr *assets.LoadError
				var fontErr *assets.FontError
				switch {
				case errors.As(e, &loadErr):
					sprites = append(sprites, loadErr.Path)
				case errors.As(e, &fontErr):
					fonts++
				default:
					t.Errorf("unexpected error %v", e)
				}
			}

			expected := []string{"media/rock.png", "media/paper.png", "media/scissors.png"}
			if len(sprites) != len(expected) {
				t.Fatalf("sprite failures = %v, expected %v", sprites, expected)
			}
			for i := range expected {
				if sprites[i] != expected[i] {
					t.Errorf("sprite failure %d = %q, expected %q", i, sprites[i], expected[i])
				}
			}
			if fonts != 1 {
				t.Errorf("font failures = %d, expected 1", fonts)
			}
			if ctx.welcome.Loaded() {
				t.Error("welcome banner should not be created without a font")
			}
		})
	}
}

func TestRunSkipsLoopWhenMediaFails(t *testing.T) {
	game := roshambo.NewClassic()

	err := Run(game, Options{
		Config:  config.DefaultConfig(),
		Runtime: core.DefaultConfig(),
		Logger:  quietLogger(),
		Media:   fstest.MapFS{},
	})

	if err == nil {
		t.Fatal("Run() should fail when media is missing")
	}
	var loadErr *assets.LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error = %v, expected a wrapped LoadError", err)
	}
	var fontErr *assets.FontError
	if !errors.As(err, &fontErr) {
		t.Errorf("error = %v, expected a wrapped FontError", err)
	}
	if st := game.State(); st.Rounds != 0 {
		t.Errorf("rounds = %d, expected the game loop to be skipped", st.Rounds)
	}
}

func TestContextCloseTwice(t *testing.T) {
	ctx := NewContext(config.DefaultConfig(), fstest.MapFS{}, quietLogger())

	frees := 0
	free := func(*ebiten.Image) { frees++ }
	ctx.welcome.Set(nil, 10, 10, free)
	ctx.sprites.Handle("rock").Set(nil, 160, 160, free)

	ctx.Close()
	ctx.Close()

	if frees != 2 {
		t.Errorf("frees = %d, expected 2", frees)
	}
	if ctx.welcome.Loaded() {
		t.Error("welcome should be unset after Close")
	}
	if _, ok := ctx.sprites.Get("rock"); ok {
		t.Error("rock should be unset after Close")
	}
}

func TestDestGeoM(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		src        image.Rectangle
		endX, endY float64
	}{
		{"native size", 160, 160, image.Rect(0, 0, 160, 160), 240, 360},
		{"scaled down", 80, 40, image.Rect(0, 0, 160, 160), 160, 240},
		{"unset size keeps source", 0, 0, image.Rect(0, 0, 50, 20), 130, 220},
	}

	p := core.Point{X: 80, Y: 200}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := destGeoM(p, tc.w, tc.h, tc.src)

			if x, y := g.Apply(0, 0); x != 80 || y != 200 {
				t.Errorf("top-left = (%v, %v), expected (80, 200)", x, y)
			}
			x, y := g.Apply(float64(tc.src.Dx()), float64(tc.src.Dy()))
			if x != tc.endX || y != tc.endY {
				t.Errorf("bottom-right = (%v, %v), expected (%v, %v)", x, y, tc.endX, tc.endY)
			}
		})
	}
}
