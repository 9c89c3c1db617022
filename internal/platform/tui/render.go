package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of terminal columns one grid cell occupies.
const cellWidth = 2

// cellPaint is the sampled look of one grid cell.
type cellPaint struct {
	fill   core.Color
	stroke core.Color
}

// BoardRenderer turns the pixel canvas into styled terminal text.
// Each grid cell becomes "▐▌": the stroke colour shows at the edges and
// the fill colour in the middle.
type BoardRenderer struct {
	cellSize int
	cols     int
	rows     int
	empty    lipgloss.Style
	styles   map[cellPaint]lipgloss.Style
}

// NewBoardRenderer creates a renderer for the configured grid.
func NewBoardRenderer(cfg config.Config) *BoardRenderer {
	return &BoardRenderer{
		cellSize: cfg.Canvas.CellSize,
		cols:     cfg.GridWidth(),
		rows:     cfg.GridHeight(),
		empty:    lipgloss.NewStyle().Background(lipgloss.Color("234")),
		styles:   make(map[cellPaint]lipgloss.Style),
	}
}

// Size returns the board size in terminal columns and rows.
func (r *BoardRenderer) Size() (width, height int) {
	return r.cols * cellWidth, r.rows
}

func (r *BoardRenderer) style(p cellPaint) lipgloss.Style {
	if s, ok := r.styles[p]; ok {
		return s
	}
	stroke := p.stroke
	if !stroke.IsSet() {
		stroke = p.fill
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fill)).
		Background(lipgloss.Color(stroke))
	r.styles[p] = s
	return s
}

// Render converts the canvas to a styled string.
// Groups adjacent cells with the same paint to minimize ANSI escape sequences.
func (r *BoardRenderer) Render(c *core.Canvas) string {
	var sb strings.Builder
	sb.Grow(r.cols * r.rows * cellWidth * 4)

	for y := range r.rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < r.cols {
			start := r.sample(c, x, y)
			n := 0
			for x < r.cols && r.sample(c, x, y) == start {
				n++
				x++
			}

			if !start.fill.IsSet() {
				sb.WriteString(r.empty.Render(strings.Repeat(" ", n*cellWidth)))
				continue
			}
			sb.WriteString(r.style(start).Render(strings.Repeat("▐▌", n)))
		}
	}
	return sb.String()
}

// sample reads one cell. An unfilled cell only shows a neighbour's
// outline, so it is treated as empty.
func (r *BoardRenderer) sample(c *core.Canvas, x, y int) cellPaint {
	fill := c.CellFill(x, y, r.cellSize)
	if !fill.IsSet() {
		return cellPaint{}
	}
	return cellPaint{
		fill:   fill,
		stroke: c.CellStroke(x, y, r.cellSize),
	}
}

// Plain converts the canvas to uncoloured text for screenshots.
func (r *BoardRenderer) Plain(c *core.Canvas, colors config.ColorConfig) string {
	return c.Text(r.cellSize, func(fill core.Color) rune {
		switch fill {
		case colors.SnakeFill:
			return 'O'
		case colors.FoodFill:
			return '@'
		default:
			return '#'
		}
	})
}
