package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultConfig()
	if cfg != def {
		t.Errorf("embedded YAML and DefaultConfig() differ:\n yaml: %+v\n code: %+v", cfg, def)
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %dx%d, expected 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Background.RGBA() != (color.RGBA{R: 172, G: 202, B: 250, A: 255}) {
		t.Errorf("background = %+v", cfg.Window.Background)
	}
	if cfg.Layout.Left.Point().X != 80 || cfg.Layout.Right.Point().X != 400 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Media.Sprites()["scissors"] != "media/scissors.png" {
		t.Errorf("scissors path = %q", cfg.Media.Sprites()["scissors"])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("window:\n  title: Test\nmedia:\n  font: fonts/other.ttf\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Window.Title != "Test" {
		t.Errorf("title = %q, expected Test", cfg.Window.Title)
	}
	if cfg.Media.Font != "fonts/other.ttf" {
		t.Errorf("font = %q", cfg.Media.Font)
	}
	// Untouched fields keep their defaults
	if cfg.Window.Width != 640 || cfg.Media.Rock != "media/rock.png" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "window: [oops", "failed to parse"},
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"empty font", "media:\n  font: \"\"\n", "media.font"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v, expected to contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	// Isolate from any real user or project config
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LocalPath), []byte("layout:\n  right: {x: 300, y: 100}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Layout.Right != (Pos{X: 300, Y: 100}) {
		t.Errorf("right = %+v, expected {300 100}", cfg.Layout.Right)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Height = -1
	cfg.Media.Paper = ""
	cfg.Status.Size = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"window size", "media.paper", "status.size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
