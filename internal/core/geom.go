// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a position on the playfield grid, measured in cells.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell reached by moving one step with velocity v.
func (c Cell) Add(v Velocity) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// In reports whether the cell lies inside a w×h grid.
func (c Cell) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Velocity is an axis-aligned step of at most one cell per tick.
type Velocity struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Cardinal directions.
var (
	Up    = Velocity{DX: 0, DY: -1}
	Down  = Velocity{DX: 0, DY: 1}
	Left  = Velocity{DX: -1, DY: 0}
	Right = Velocity{DX: 1, DY: 0}
	Still = Velocity{}
)

// Neg returns the opposite velocity.
func (v Velocity) Neg() Velocity {
	return Velocity{DX: -v.DX, DY: -v.DY}
}

// IsZero reports whether the velocity does not move.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

func (v Velocity) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Still:
		return "still"
	default:
		return fmt.Sprintf("(%d,%d)", v.DX, v.DY)
	}
}

// Rect represents an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersect returns the overlapping area of two rectangles.
// The result has zero width or height when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
