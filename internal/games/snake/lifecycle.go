package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// HighScoreStore persists the best score across processes.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Change summarises what a lifecycle call did, so the driver knows which
// timers to re-arm and whether a frame was drawn.
type Change struct {
	Moved        bool // Snake or food moved; a frame was drawn
	Ate          bool
	GameOver     bool
	NewRecord    bool
	Collision    Collision
	PhaseChanged bool
	DelayChanged bool
}

// Lifecycle owns the single game snapshot and every transition applied to it:
// start/restart, countdown steps, simulation ticks and input.
// It is not safe for concurrent use; the platform calls it from one
// serialized update path.
type Lifecycle struct {
	cfg      config.Config
	engine   *Engine
	renderer Renderer
	surface  Surface
	store    HighScoreStore
	logger   *log.Logger
	rng      *rand.Rand
	state    Snapshot
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithStore persists high scores through store.
func WithStore(store HighScoreStore) Option {
	return func(l *Lifecycle) {
		l.store = store
	}
}

// WithLogger sets the logger used for game events and storage failures.
func WithLogger(logger *log.Logger) Option {
	return func(l *Lifecycle) {
		l.logger = logger
	}
}

// WithSeed seeds food placement.
func WithSeed(seed int64) Option {
	return func(l *Lifecycle) {
		l.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSurface attaches the drawing surface.
func WithSurface(dst Surface) Option {
	return func(l *Lifecycle) {
		l.surface = dst
	}
}

// NewLifecycle creates an idle game and loads the high score once.
// A missing or unreadable high score starts at 0.
func NewLifecycle(cfg config.Config, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		cfg:      cfg,
		renderer: NewRenderer(cfg),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	l.engine = NewEngine(cfg, l.rng)

	l.state = initialSnapshot(cfg.Snake.Head, cfg.Speed.InitialDelay())
	l.state.HighScore = l.loadHighScore()
	return l
}

func (l *Lifecycle) loadHighScore() int {
	if l.store == nil {
		return 0
	}
	score, err := l.store.LoadHighScore()
	if err != nil {
		l.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return max(score, 0)
}

// State returns a copy of the current snapshot.
func (l *Lifecycle) State() Snapshot {
	return l.state.Clone()
}

// Config returns the configuration the game was built with.
func (l *Lifecycle) Config() config.Config {
	return l.cfg
}

// Attach sets the drawing surface and paints the current frame on it.
func (l *Lifecycle) Attach(dst Surface) {
	l.surface = dst
	l.redraw()
}

// SimActive reports whether the simulation timer should be running.
func (l *Lifecycle) SimActive() bool {
	return l.state.Running && l.state.CountDown == 0
}

// CountdownActive reports whether the countdown timer should be running.
func (l *Lifecycle) CountdownActive() bool {
	return l.state.CountDown > 0 && l.state.CountDown < CountDownIdle
}

// TickDelay returns the current simulation period.
func (l *Lifecycle) TickDelay() time.Duration {
	return l.state.TickDelay
}

// CountdownInterval returns the countdown period.
func (l *Lifecycle) CountdownInterval() time.Duration {
	return time.Duration(l.cfg.Countdown.IntervalMS) * time.Millisecond
}

// Start begins a new game, or restarts one that is idle, counting down or lost.
// It is ignored while a game is being played.
func (l *Lifecycle) Start() Change {
	if l.state.Phase() == PhasePlaying {
		return Change{}
	}

	prevDelay := l.state.TickDelay
	head := l.cfg.Snake.Head
	v := l.cfg.InitialVelocity()

	ns := Snapshot{
		Snake:            Actor{Head: head},
		Velocity:         v,
		PreviousVelocity: v,
		HighScore:        max(l.state.HighScore, l.loadHighScore()),
		Running:          true,
		CountDown:        l.cfg.Countdown.From,
		TickDelay:        l.cfg.Speed.InitialDelay(),
	}
	ns.Food = l.engine.PlaceFood(ns.Snake)
	l.state = ns

	l.logger.Debug("game started", "head", head, "food", ns.Food)
	l.redraw()
	return Change{
		Moved:        true,
		PhaseChanged: true,
		DelayChanged: prevDelay != ns.TickDelay,
	}
}

// CountdownTick steps the pre-game countdown.
// The game starts playing when it reaches 0.
func (l *Lifecycle) CountdownTick() Change {
	if !l.CountdownActive() {
		return Change{}
	}
	l.state.CountDown--
	return Change{PhaseChanged: l.state.CountDown == 0}
}

// Tick advances the simulation by one step while playing.
func (l *Lifecycle) Tick() Change {
	if !l.SimActive() {
		return Change{}
	}

	prevDelay := l.state.TickDelay
	out := l.engine.Advance(l.state)
	l.state = out.Snapshot

	if out.GameOver() {
		return l.gameOver(out.Collision)
	}

	l.redraw()
	return Change{
		Moved:        true,
		Ate:          out.Ate,
		DelayChanged: l.state.TickDelay != prevDelay,
	}
}

// gameOver finishes the transition the engine started: the record is
// written once, from this single update path.
func (l *Lifecycle) gameOver(collision Collision) Change {
	l.checkRecord()
	s := l.state
	l.logger.Info("game over",
		"collision", collision,
		"score", s.Score,
		"highscore", s.HighScore,
		"new_record", s.NewHighScore,
	)

	if s.NewHighScore && l.store != nil {
		if err := l.store.SaveHighScore(s.HighScore); err != nil {
			l.logger.Error("could not save high score", "score", s.HighScore, "error", err)
		}
	}

	return Change{
		GameOver:     true,
		NewRecord:    s.NewHighScore,
		Collision:    collision,
		PhaseChanged: true,
	}
}

// checkRecord re-reads the store before a record is claimed, since another
// game sharing it may have raised the high score since Start.
func (l *Lifecycle) checkRecord() {
	if !l.state.NewHighScore || l.store == nil {
		return
	}
	stored, err := l.store.LoadHighScore()
	if err != nil || stored < l.state.Score {
		return
	}
	l.state.HighScore = stored
	l.state.NewHighScore = false
}

// Input applies a key press. It reports whether the key was accepted.
func (l *Lifecycle) Input(key string) bool {
	ns, ok := ApplyInput(l.state, key)
	if ok {
		l.state = ns
	}
	return ok
}

func (l *Lifecycle) redraw() {
	l.renderer.Draw(l.surface, l.state)
}
