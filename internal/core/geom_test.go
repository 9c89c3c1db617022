package core

import "testing"

func TestCellAdd(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		vel      Velocity
		expected Cell
	}{
		{"up", Cell{12, 9}, Up, Cell{12, 8}},
		{"down", Cell{12, 9}, Down, Cell{12, 10}},
		{"left off grid", Cell{0, 0}, Left, Cell{-1, 0}},
		{"right", Cell{3, 4}, Right, Cell{4, 4}},
		{"still", Cell{3, 4}, Still, Cell{3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Add(tc.vel); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCellIn(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{24, 18}, true},
		{"x too large", Cell{25, 0}, false},
		{"y too large", Cell{0, 19}, false},
		{"negative x", Cell{-1, 5}, false},
		{"negative y", Cell{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.In(25, 19); got != tc.expected {
				t.Errorf("In(25, 19) for %v = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestVelocity(t *testing.T) {
	if Right.Neg() != Left {
		t.Errorf("Right.Neg() = %v, expected left", Right.Neg())
	}
	if Up.Neg() != Down {
		t.Errorf("Up.Neg() = %v, expected down", Up.Neg())
	}
	if !Still.IsZero() {
		t.Error("Still should be zero")
	}
}

func TestRectIntersect(t *testing.T) {
	bounds := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
		empty    bool
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3), false},
		{"overhang top-left", NewRect(-1, -1, 12, 12), NewRect(0, 0, 10, 10), false},
		{"overhang right", NewRect(8, 0, 5, 1), NewRect(8, 0, 2, 1), false},
		{"outside", NewRect(20, 20, 5, 5), Rect{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Intersect(bounds)
			if got.Empty() != tc.empty {
				t.Fatalf("Empty() = %v, expected %v", got.Empty(), tc.empty)
			}
			if !tc.empty && got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}
