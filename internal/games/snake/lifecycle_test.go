package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestLifecycle(t *testing.T, opts ...Option) *Lifecycle {
	t.Helper()
	opts = append([]Option{WithSeed(12345)}, opts...)
	return NewLifecycle(config.DefaultConfig(), opts...)
}

// startPlaying starts a game and runs the countdown to zero.
func startPlaying(t *testing.T, l *Lifecycle) {
	t.Helper()
	l.Start()
	for l.CountdownActive() {
		l.CountdownTick()
	}
	if l.State().Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", l.State().Phase())
	}
}

func TestInitialState(t *testing.T) {
	l := newTestLifecycle(t)
	s := l.State()

	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", s.Phase())
	}
	if s.CountDown != CountDownIdle || s.Running {
		t.Errorf("CountDown=%d Running=%v, expected 4/false", s.CountDown, s.Running)
	}
	if s.HasFood() {
		t.Errorf("food = %v, expected unset", s.Food)
	}
	if s.ButtonLabel() != "Start Game" {
		t.Errorf("ButtonLabel() = %q", s.ButtonLabel())
	}
	if l.SimActive() || l.CountdownActive() {
		t.Error("no timer should be active while idle")
	}
}

func TestStartAndCountdown(t *testing.T) {
	l := newTestLifecycle(t)

	change := l.Start()
	if !change.Moved || !change.PhaseChanged {
		t.Errorf("Start() change = %+v", change)
	}

	s := l.State()
	if s.CountDown != 3 || !s.Running || s.IsLost {
		t.Errorf("after start: CountDown=%d Running=%v IsLost=%v", s.CountDown, s.Running, s.IsLost)
	}
	if s.Snake.Head != (core.Cell{X: 12, Y: 9}) || len(s.Snake.Trail) != 0 {
		t.Errorf("snake = %+v, expected fresh snake at (12,9)", s.Snake)
	}
	if s.Velocity != core.Up || s.PreviousVelocity != core.Up {
		t.Errorf("velocity = %v / %v, expected up", s.Velocity, s.PreviousVelocity)
	}
	if !s.HasFood() || s.Snake.Occupies(s.Food) {
		t.Errorf("food = %v", s.Food)
	}
	if s.TickDelay != 100*time.Millisecond {
		t.Errorf("TickDelay = %v, expected 100ms", s.TickDelay)
	}

	// The engine does not tick during the countdown
	if change := l.Tick(); change.Moved {
		t.Error("Tick() should be ignored while counting down")
	}

	labels := []string{"2", "1", ""}
	for i, want := range labels {
		if !l.CountdownActive() {
			t.Fatalf("countdown stopped early at step %d", i)
		}
		l.CountdownTick()
		if got := l.State().ButtonLabel(); got != want {
			t.Errorf("step %d: label = %q, expected %q", i, got, want)
		}
	}

	if l.CountdownActive() {
		t.Error("countdown should be inactive at 0")
	}
	if !l.SimActive() {
		t.Error("simulation should be active at 0")
	}
	if change := l.CountdownTick(); change != (Change{}) {
		t.Errorf("CountdownTick() at 0 = %+v, expected no change", change)
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	l := newTestLifecycle(t)
	startPlaying(t, l)
	l.Tick()
	before := l.State()

	if change := l.Start(); change != (Change{}) {
		t.Errorf("Start() while playing = %+v", change)
	}
	if l.State().Snake.Head != before.Snake.Head {
		t.Error("Start() while playing should not reset the snake")
	}
}

func TestStartDuringCountdownRestartsIt(t *testing.T) {
	l := newTestLifecycle(t)
	l.Start()
	l.CountdownTick()

	l.Start()
	if got := l.State().CountDown; got != 3 {
		t.Errorf("CountDown = %d, expected 3", got)
	}
}

func TestPlayToWallAndRestart(t *testing.T) {
	store := &memStore{}
	l := newTestLifecycle(t, WithStore(store))
	startPlaying(t, l)

	// Straight up from (12,9): 9 moves reach y=0, the 10th hits the wall
	var change Change
	ticks := 0
	for !change.GameOver {
		change = l.Tick()
		ticks++
		if ticks > 50 {
			t.Fatal("no game over after 50 ticks")
		}
	}
	if ticks != 10 {
		t.Errorf("wall reached after %d ticks, expected 10", ticks)
	}
	if change.Collision != CollisionWall {
		t.Errorf("Collision = %v, expected wall", change.Collision)
	}

	s := l.State()
	if s.Phase() != PhaseLost || s.Velocity != core.Still || s.CountDown != CountDownIdle {
		t.Errorf("lost state = %+v", s)
	}
	if s.ButtonLabel() != "Restart Game" {
		t.Errorf("ButtonLabel() = %q", s.ButtonLabel())
	}
	if l.SimActive() || l.CountdownActive() {
		t.Error("no timer should be active after game over")
	}
	if l.Tick() != (Change{}) {
		t.Error("Tick() after game over should do nothing")
	}
	if l.Input("left") {
		t.Error("input after game over should be ignored")
	}

	// Restart keeps the high score and resets everything else
	l.Start()
	s = l.State()
	if s.Phase() != PhaseCounting || s.Score != 0 || s.IsLost || s.NewHighScore {
		t.Errorf("restart state = %+v", s)
	}
}

func TestHighScoreRecord(t *testing.T) {
	store := &memStore{score: 5}
	l := newTestLifecycle(t, WithStore(store))
	if got := l.State().HighScore; got != 5 {
		t.Fatalf("loaded HighScore = %d, expected 5", got)
	}
	startPlaying(t, l)

	// Score 7, about to hit the top wall
	l.state.Score = 7
	l.state.Snake = Actor{Head: core.Cell{X: 12, Y: 0}}
	l.state.Velocity = core.Up

	change := l.Tick()

	if !change.GameOver || !change.NewRecord {
		t.Fatalf("change = %+v, expected game over with new record", change)
	}
	s := l.State()
	if s.HighScore != 7 || !s.NewHighScore {
		t.Errorf("HighScore=%d NewHighScore=%v, expected 7/true", s.HighScore, s.NewHighScore)
	}
	if len(store.saves) != 1 || store.saves[0] != 7 {
		t.Errorf("saves = %v, expected one save of 7", store.saves)
	}
}

func TestHighScoreNotBeaten(t *testing.T) {
	store := &memStore{score: 5}
	l := newTestLifecycle(t, WithStore(store))
	startPlaying(t, l)

	l.state.Score = 5
	l.state.Snake = Actor{Head: core.Cell{X: 0, Y: 3}}
	l.state.Velocity = core.Left
	l.state.PreviousVelocity = core.Left

	change := l.Tick()

	if !change.GameOver || change.NewRecord {
		t.Fatalf("change = %+v", change)
	}
	if s := l.State(); s.HighScore != 5 || s.NewHighScore {
		t.Errorf("HighScore=%d NewHighScore=%v, expected 5/false", s.HighScore, s.NewHighScore)
	}
	if len(store.saves) != 0 {
		t.Errorf("saves = %v, expected none", store.saves)
	}
}

func TestStartRereadsHighScore(t *testing.T) {
	store := &memStore{score: 2}
	l := newTestLifecycle(t, WithStore(store))

	// Another game on the same store sets a record meanwhile.
	store.score = 8
	l.Start()
	if got := l.State().HighScore; got != 8 {
		t.Errorf("HighScore after Start = %d, expected 8 from the store", got)
	}
}

func TestRecordCheckedAgainstStore(t *testing.T) {
	store := &memStore{score: 2}
	l := newTestLifecycle(t, WithStore(store))
	startPlaying(t, l)

	// Raised by another game after this one started.
	store.score = 6

	l.state.Score = 4
	l.state.Snake = Actor{Head: core.Cell{X: 12, Y: 0}}
	l.state.Velocity = core.Up

	change := l.Tick()
	if !change.GameOver {
		t.Fatal("expected game over")
	}
	if change.NewRecord {
		t.Error("4 must not count as a record over the stored 6")
	}
	s := l.State()
	if s.HighScore != 6 || s.NewHighScore {
		t.Errorf("HighScore=%d NewHighScore=%v, expected 6/false", s.HighScore, s.NewHighScore)
	}
	if len(store.saves) != 0 {
		t.Errorf("saves = %v, expected none", store.saves)
	}
}

func TestHighScoreStoreFailures(t *testing.T) {
	l := newTestLifecycle(t, WithStore(&memStore{score: 9, loadErr: errDisk}))
	if got := l.State().HighScore; got != 0 {
		t.Errorf("HighScore after load failure = %d, expected 0", got)
	}

	negative := newTestLifecycle(t, WithStore(&memStore{score: -3}))
	if got := negative.State().HighScore; got != 0 {
		t.Errorf("negative stored score loaded as %d, expected 0", got)
	}

	store := &memStore{saveErr: errDisk}
	l = newTestLifecycle(t, WithStore(store))
	startPlaying(t, l)
	l.state.Score = 3
	l.state.Snake = Actor{Head: core.Cell{X: 12, Y: 0}}

	change := l.Tick()
	if !change.GameOver {
		t.Fatal("expected game over")
	}
	// The record still counts for this process
	if l.State().HighScore != 3 {
		t.Errorf("HighScore = %d, expected 3", l.State().HighScore)
	}
}

func TestRedrawOnMovement(t *testing.T) {
	rec := &recorder{}
	l := newTestLifecycle(t, WithSurface(rec))

	l.Start()
	afterStart := len(rec.ops)
	if afterStart == 0 {
		t.Fatal("Start() should draw a frame")
	}

	l.CountdownTick()
	if len(rec.ops) != afterStart {
		t.Error("countdown steps do not move anything and should not redraw")
	}

	for l.CountdownActive() {
		l.CountdownTick()
	}
	l.Tick()
	if len(rec.ops) == afterStart {
		t.Error("Tick() should redraw")
	}

	// Drive into the wall; the lost frame is not drawn
	l.state.Snake = Actor{Head: core.Cell{X: 12, Y: 0}}
	before := len(rec.ops)
	l.Tick()
	if len(rec.ops) != before {
		t.Error("game over should leave the last frame in place")
	}
}

func TestAttachDrawsCurrentFrame(t *testing.T) {
	l := newTestLifecycle(t)
	l.Start()

	rec := &recorder{}
	l.Attach(rec)
	if len(rec.ops) == 0 {
		t.Error("Attach() should draw the current frame")
	}
}

// chase steers toward the food, sidestepping when the direct key would be a reversal.
func chase(l *Lifecycle) {
	s := l.State()
	head := s.Snake.Head

	var wants []string
	switch {
	case s.Food.X < head.X:
		wants = append(wants, "left")
	case s.Food.X > head.X:
		wants = append(wants, "right")
	}
	switch {
	case s.Food.Y < head.Y:
		wants = append(wants, "up")
	case s.Food.Y > head.Y:
		wants = append(wants, "down")
	}
	wants = append(wants, "left", "right")

	for _, k := range wants {
		if l.Input(k) {
			return
		}
	}
}

func TestScoreMonotonicWithinGame(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		l := NewLifecycle(config.DefaultConfig(), WithSeed(seed))
		startPlaying(t, l)

		prev := 0
		for i := range 500 {
			chase(l)
			change := l.Tick()
			score := l.State().Score
			if score < prev {
				t.Fatalf("seed %d tick %d: score fell from %d to %d", seed, i, prev, score)
			}
			prev = score
			if change.GameOver {
				break
			}
		}
		if prev == 0 {
			t.Errorf("seed %d: chasing food never scored", seed)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs end in identical snapshots
	run := func() Snapshot {
		l := NewLifecycle(config.DefaultConfig(), WithSeed(99))
		startPlaying(t, l)
		for i := range 60 {
			switch i {
			case 3:
				l.Input("left")
			case 9:
				l.Input("down")
			case 20:
				l.Input("d")
			}
			l.Tick()
		}
		return l.State()
	}

	s1, s2 := run(), run()
	if s1.Snake.Head != s2.Snake.Head || s1.Food != s2.Food || s1.Score != s2.Score || s1.IsLost != s2.IsLost {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
