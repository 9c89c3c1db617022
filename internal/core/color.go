package core

// Color is a CSS-style hex colour ("#RRGGBB").
// The zero value means a transparent (cleared) pixel.
type Color string

// Transparent marks a pixel that holds no paint.
const Transparent Color = ""

// IsSet reports whether the colour holds paint.
func (c Color) IsSet() bool {
	return c != Transparent
}
