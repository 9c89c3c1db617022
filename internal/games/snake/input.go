package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// keyVelocities maps key identifiers to directions.
// Identifiers follow Bubble Tea's key names; the WASD set is lowercase only.
var keyVelocities = map[string]core.Velocity{
	"up":    core.Up,
	"down":  core.Down,
	"left":  core.Left,
	"right": core.Right,
	"w":     core.Up,
	"s":     core.Down,
	"a":     core.Left,
	"d":     core.Right,
}

// DirectionKeys returns the recognised key identifiers.
func DirectionKeys() []string {
	return []string{"up", "down", "left", "right", "w", "s", "a", "d"}
}

// MapKey translates a key identifier to a velocity.
func MapKey(id string) (core.Velocity, bool) {
	v, ok := keyVelocities[id]
	return v, ok
}

// ApplyInput proposes a new velocity from a key press.
// The candidate is checked against the velocity of the last completed tick,
// not the pending one, so two quick presses cannot fold the snake back onto
// itself. Unknown keys, reversals and input outside a running game leave
// the snapshot unchanged.
func ApplyInput(s Snapshot, id string) (Snapshot, bool) {
	if !s.Running {
		return s, false
	}
	v, ok := MapKey(id)
	if !ok {
		return s, false
	}
	if v == s.PreviousVelocity.Neg() {
		return s, false
	}
	s.Velocity = v
	return s, true
}
