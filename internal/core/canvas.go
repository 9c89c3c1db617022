package core

import "strings"

// Canvas is an in-memory pixel surface.
// It implements the clear/fill/stroke primitives the renderer draws with and
// lets the terminal layer sample the result one grid cell at a time.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// NewCanvas creates a cleared canvas with the given pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// ClearRect erases every pixel in the rectangle.
// Areas outside the canvas are clipped.
func (c *Canvas) ClearRect(x, y, w, h int) {
	c.paint(NewRect(x, y, w, h), Transparent)
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	c.paint(NewRect(x, y, w, h), col)
}

// StrokeRect paints a one pixel outline around the rectangle.
// The outline spans w+1 by h+1 pixels, the same footprint a half-pixel
// offset stroke has on an HTML canvas.
func (c *Canvas) StrokeRect(x, y, w, h int, col Color) {
	for px := x; px <= x+w; px++ {
		c.Set(px, y, col)
		c.Set(px, y+h, col)
	}
	for py := y + 1; py < y+h; py++ {
		c.Set(x, py, col)
		c.Set(x+w, py, col)
	}
}

func (c *Canvas) paint(r Rect, col Color) {
	r = r.Intersect(c.bounds())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		row := c.pix[y*c.width : (y+1)*c.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = col
		}
	}
}

// Set paints a single pixel. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if !c.bounds().Contains(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

// At returns the pixel colour, or Transparent outside the canvas.
func (c *Canvas) At(x, y int) Color {
	if !c.bounds().Contains(x, y) {
		return Transparent
	}
	return c.pix[y*c.width+x]
}

// CellFill samples the interior of the grid cell (cx, cy).
func (c *Canvas) CellFill(cx, cy, cellSize int) Color {
	return c.At(cx*cellSize+cellSize/2, cy*cellSize+cellSize/2)
}

// CellStroke samples the top edge of the grid cell (cx, cy).
func (c *Canvas) CellStroke(cx, cy, cellSize int) Color {
	return c.At(cx*cellSize+cellSize/2, cy*cellSize)
}

// Painted counts the pixels that hold the given colour.
func (c *Canvas) Painted(col Color) int {
	n := 0
	for _, p := range c.pix {
		if p == col {
			n++
		}
	}
	return n
}

// Text converts the canvas to one character per grid cell.
// Cells whose interior is painted use the rune chosen by glyph.
func (c *Canvas) Text(cellSize int, glyph func(fill Color) rune) string {
	cols := c.width / cellSize
	rows := c.height / cellSize

	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range cols {
			fill := c.CellFill(x, y, cellSize)
			if !fill.IsSet() {
				sb.WriteRune('.')
				continue
			}
			sb.WriteRune(glyph(fill))
		}
	}
	return sb.String()
}
