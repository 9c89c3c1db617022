package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the default snake configuration.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:    500,
			Height:   380,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			Min: 10,
			Max: 15,
		},
		Snake: SnakeConfig{
			Head: core.Cell{X: 12, Y: 9},
		},
		Countdown: CountdownConfig{
			From:       3,
			IntervalMS: 800,
		},
		Colors: ColorConfig{
			SnakeFill:   "#0170F3",
			SnakeStroke: "#003779",
			FoodFill:    "#DC3030",
			FoodStroke:  "#881A1B",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
