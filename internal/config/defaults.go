package config

import (
	_ "embed"
)

//go:embed defaults/rps.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: a 640x480 window with
// the sprites at (80,200) and (400,200).
func DefaultConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Title:        "Epic Rock Paper Scissors",
			Width:        640,
			Height:       480,
			Background:   RGB{R: 172, G: 202, B: 250},
			Clear:        RGB{R: 0xff, G: 0xff, B: 0xff},
			LinearFilter: true,
		},
		Media: MediaConfig{
			Rock:     "media/rock.png",
			Paper:    "media/paper.png",
			Scissors: "media/scissors.png",
			Font:     "media/ComicSansMS.ttf",
		},
		Welcome: TextConfig{
			Text:     "Use your keyboard: 1 - rock,  2 - paper, 3 - scissors.",
			Size:     20,
			Color:    RGB{},
			Position: Pos{X: 20, Y: 20},
		},
		Status: TextConfig{
			Size:     20,
			Color:    RGB{},
			Position: Pos{X: 20, Y: 420},
		},
		Layout: LayoutConfig{
			Left:  Pos{X: 80, Y: 200},
			Right: Pos{X: 400, Y: 200},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
