// Package snake implements the grid snake simulation: game state, the
// per-tick engine, input mapping, frame rendering and the game lifecycle.
// It has no terminal dependencies; the platform layer drives it.
package snake

import (
	"slices"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CountDownIdle is the countdown value of a game that is not running.
const CountDownIdle = 4

// NoFood marks a snapshot that has no food placed yet.
var NoFood = core.Cell{X: -1, Y: -1}

// Phase is the lifecycle phase derived from a snapshot.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCounting Phase = "counting"
	PhasePlaying  Phase = "playing"
	PhaseLost     Phase = "lost"
)

// Actor is the snake: its head and the trail behind it, oldest cell first.
type Actor struct {
	Head  core.Cell   `json:"head"`
	Trail []core.Cell `json:"trail"`
}

// Occupies reports whether the head or any trail cell is at c.
func (a Actor) Occupies(c core.Cell) bool {
	return a.Head == c || slices.Contains(a.Trail, c)
}

// Len returns the number of drawn cells, head included.
func (a Actor) Len() int {
	return len(a.Trail) + 1
}

// Snapshot is the complete state of one game.
// Snapshots are values: every transition returns a new one and never
// modifies a trail slice that an older snapshot can still see.
type Snapshot struct {
	Snake            Actor         `json:"snake"`
	Food             core.Cell     `json:"food"`
	Velocity         core.Velocity `json:"velocity"`
	PreviousVelocity core.Velocity `json:"previousVelocity"`
	Score            int           `json:"score"`
	HighScore        int           `json:"highScore"`
	NewHighScore     bool          `json:"newHighScore"`
	Running          bool          `json:"running"`
	IsLost           bool          `json:"isLost"`
	CountDown        int           `json:"countDown"`
	TickDelay        time.Duration `json:"tickDelay"`
}

// Phase derives the lifecycle phase.
func (s Snapshot) Phase() Phase {
	switch {
	case s.IsLost:
		return PhaseLost
	case s.Running && s.CountDown == 0:
		return PhasePlaying
	case s.Running:
		return PhaseCounting
	default:
		return PhaseIdle
	}
}

// HasFood reports whether food has been placed.
func (s Snapshot) HasFood() bool {
	return s.Food != NoFood
}

// DisplayHighScore is the best score to show, counting the game in progress.
func (s Snapshot) DisplayHighScore() int {
	return max(s.HighScore, s.Score)
}

// ButtonLabel is the label of the start/restart command for this snapshot.
// The countdown value doubles as the label while counting down.
func (s Snapshot) ButtonLabel() string {
	switch {
	case s.CountDown == CountDownIdle && s.IsLost:
		return "Restart Game"
	case s.CountDown == CountDownIdle:
		return "Start Game"
	case s.CountDown > 0:
		return strconv.Itoa(s.CountDown)
	default:
		return ""
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	s.Snake.Trail = slices.Clone(s.Snake.Trail)
	return s
}

// initialSnapshot is the state at process start: idle, no food placed.
func initialSnapshot(head core.Cell, delay time.Duration) Snapshot {
	return Snapshot{
		Snake:     Actor{Head: head},
		Food:      NoFood,
		CountDown: CountDownIdle,
		TickDelay: delay,
	}
}
