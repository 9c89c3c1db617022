// Package config provides YAML-based configuration loading for the snake
// playfield, speed band, countdown and colours.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is returned (wrapped) by Validate for unusable configurations.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the snake game.
// It is immutable once the process has started.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Speed     SpeedConfig     `yaml:"speed"`
	Snake     SnakeConfig     `yaml:"snake"`
	Countdown CountdownConfig `yaml:"countdown"`
	Colors    ColorConfig     `yaml:"colors"`
}

// CanvasConfig defines the drawing surface in pixels and the grid cell size.
type CanvasConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeConfig defines where a new snake starts.
type SnakeConfig struct {
	Head core.Cell `yaml:"head"`
}

// CountdownConfig defines the pre-game countdown.
type CountdownConfig struct {
	From       int `yaml:"from"`        // First value shown, 1..3
	IntervalMS int `yaml:"interval_ms"` // Delay between countdown steps
}

// ColorConfig defines fill and stroke colours as "#RRGGBB".
type ColorConfig struct {
	SnakeFill   core.Color `yaml:"snake_fill"`
	SnakeStroke core.Color `yaml:"snake_stroke"`
	FoodFill    core.Color `yaml:"food_fill"`
	FoodStroke  core.Color `yaml:"food_stroke"`
}

// GridWidth returns the playfield width in cells.
func (c Config) GridWidth() int {
	return c.Canvas.Width / c.Canvas.CellSize
}

// GridHeight returns the playfield height in cells.
func (c Config) GridHeight() int {
	return c.Canvas.Height / c.Canvas.CellSize
}

// SurfaceSize returns the drawing surface size in pixels.
// One extra pixel on each axis holds the right and bottom grid lines.
func (c Config) SurfaceSize() (int, int) {
	return c.GridWidth()*c.Canvas.CellSize + 1, c.GridHeight()*c.Canvas.CellSize + 1
}

// InitialVelocity is the direction a new snake travels: up.
func (c Config) InitialVelocity() core.Velocity {
	return core.Up
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	cv := c.Canvas
	if cv.CellSize <= 0 || cv.Width <= 0 || cv.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d with cell size %d", ErrInvalid, cv.Width, cv.Height, cv.CellSize)
	}
	if cv.Width%cv.CellSize != 0 || cv.Height%cv.CellSize != 0 {
		return fmt.Errorf("%w: canvas %dx%d is not a multiple of cell size %d", ErrInvalid, cv.Width, cv.Height, cv.CellSize)
	}
	if c.Speed.Min <= 0 || c.Speed.Min > c.Speed.Max {
		return fmt.Errorf("%w: speed band [%d, %d]", ErrInvalid, c.Speed.Min, c.Speed.Max)
	}
	if !c.Snake.Head.In(c.GridWidth(), c.GridHeight()) {
		return fmt.Errorf("%w: head %v outside %dx%d grid", ErrInvalid, c.Snake.Head, c.GridWidth(), c.GridHeight())
	}
	if c.Countdown.From < 1 || c.Countdown.From > 3 {
		return fmt.Errorf("%w: countdown must start between 1 and 3, got %d", ErrInvalid, c.Countdown.From)
	}
	if c.Countdown.IntervalMS <= 0 {
		return fmt.Errorf("%w: countdown interval %dms", ErrInvalid, c.Countdown.IntervalMS)
	}
	return nil
}
