package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// trailSlack is how many cells beyond the score the trail keeps.
// A snake with score 0 is drawn as its head plus two trailing cells.
const trailSlack = 2

// maxFoodAttempts bounds rejection sampling before falling back to a scan
// of the free cells.
const maxFoodAttempts = 100

// Collision describes what ended a game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Outcome is the result of advancing one tick.
type Outcome struct {
	Snapshot  Snapshot
	Ate       bool
	Collision Collision
}

// GameOver reports whether the tick ended the game.
func (o Outcome) GameOver() bool {
	return o.Collision != CollisionNone
}

// Engine advances snapshots one tick at a time.
type Engine struct {
	cfg    config.Config
	width  int
	height int
	rng    *rand.Rand
}

// NewEngine creates an engine for the configured grid.
// rng drives food placement; the same seed gives the same game.
func NewEngine(cfg config.Config, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:    cfg,
		width:  cfg.GridWidth(),
		height: cfg.GridHeight(),
		rng:    rng,
	}
}

// Advance moves the snake one cell along its velocity.
//
// Wall and self collisions are checked against the same next head as the
// food check. A collision wins over eating: the returned snapshot is the
// game-over state built from s, without the score increment.
func (e *Engine) Advance(s Snapshot) Outcome {
	next := s.Snake.Head.Add(s.Velocity)

	if !next.In(e.width, e.height) {
		return Outcome{Snapshot: GameOver(s), Collision: CollisionWall}
	}

	ate := s.HasFood() && next == s.Food

	// The trail keeps score+2 cells, measured with the score this tick started with.
	trail := make([]core.Cell, 0, len(s.Snake.Trail)+1)
	trail = append(trail, s.Snake.Trail...)
	trail = append(trail, s.Snake.Head)
	if keep := s.Score + trailSlack; len(trail) > keep {
		trail = trail[len(trail)-keep:]
	}

	if slices.Contains(trail, next) {
		return Outcome{Snapshot: GameOver(s), Collision: CollisionSelf}
	}

	ns := s
	ns.PreviousVelocity = s.Velocity
	ns.Snake = Actor{Head: next, Trail: trail}
	if ate {
		ns.Score++
		ns.Food = e.PlaceFood(ns.Snake)
		ns.TickDelay = e.cfg.Speed.Delay(ns.Score, s.TickDelay)
	}

	return Outcome{Snapshot: ns, Ate: ate}
}

// PlaceFood picks a random grid cell not occupied by the actor.
// It returns NoFood only when the actor fills the whole grid.
func (e *Engine) PlaceFood(a Actor) core.Cell {
	if a.Len() >= e.width*e.height {
		return NoFood
	}

	for range maxFoodAttempts {
		c := core.Cell{X: e.rng.Intn(e.width), Y: e.rng.Intn(e.height)}
		if !a.Occupies(c) {
			return c
		}
	}

	// Nearly full grid: choose among what is left
	var free []core.Cell
	for y := range e.height {
		for x := range e.width {
			c := core.Cell{X: x, Y: y}
			if !a.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return NoFood
	}
	return free[e.rng.Intn(len(free))]
}

// GameOver returns the terminal snapshot for s.
// Velocity freezes, the countdown returns to idle and the high score is
// raised when s beat it.
func GameOver(s Snapshot) Snapshot {
	ns := s.Clone()
	ns.Velocity = core.Still
	ns.IsLost = true
	ns.Running = false
	ns.CountDown = CountDownIdle
	ns.NewHighScore = false
	if s.Score > s.HighScore {
		ns.HighScore = s.Score
		ns.NewHighScore = true
	}
	return ns
}
