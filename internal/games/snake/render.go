package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Surface is a 2D drawing target measured in pixels.
type Surface interface {
	ClearRect(x, y, w, h int)
	FillRect(x, y, w, h int, c core.Color)
	StrokeRect(x, y, w, h int, c core.Color)
}

// Renderer paints snapshots onto a Surface.
type Renderer struct {
	cellSize int
	width    int
	height   int
	colors   config.ColorConfig
}

// NewRenderer creates a renderer for the configured canvas and colours.
func NewRenderer(cfg config.Config) Renderer {
	return Renderer{
		cellSize: cfg.Canvas.CellSize,
		width:    cfg.Canvas.Width,
		height:   cfg.Canvas.Height,
		colors:   cfg.Colors,
	}
}

// Draw clears dst and paints the food, head and trail of s.
// Nothing is drawn without a surface or once the game is lost, which keeps
// the last frame before the collision on screen. It reports whether a frame
// was painted.
func (r Renderer) Draw(dst Surface, s Snapshot) bool {
	if dst == nil || s.IsLost {
		return false
	}

	dst.ClearRect(-1, -1, r.width+2, r.height+2)

	if s.HasFood() {
		r.cell(dst, s.Food, r.colors.FoodFill, r.colors.FoodStroke)
	}

	r.cell(dst, s.Snake.Head, r.colors.SnakeFill, r.colors.SnakeStroke)
	for _, c := range s.Snake.Trail {
		r.cell(dst, c, r.colors.SnakeFill, r.colors.SnakeStroke)
	}
	return true
}

// cell paints one grid square with its outline.
func (r Renderer) cell(dst Surface, c core.Cell, fill, stroke core.Color) {
	x, y := c.X*r.cellSize, c.Y*r.cellSize
	dst.FillRect(x, y, r.cellSize, r.cellSize, fill)
	dst.StrokeRect(x, y, r.cellSize, r.cellSize, stroke)
}
