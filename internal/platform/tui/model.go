package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/spectate"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a Model. Every field is optional.
type Options struct {
	Store         *storage.Store // high score and score history
	Spectators    *spectate.Hub  // receives every state change
	Logger        *log.Logger
	Seed          int64 // 0 means time-based
	Session       string
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game of snake.
// Update is the only place game state changes, so the lifecycle needs no
// locking even though two timers and the keyboard all feed into it.
type Model struct {
	cfg       config.Config
	game      *snake.Lifecycle
	canvas    *core.Canvas
	board     *BoardRenderer
	sim       timer
	countdown timer
	keys      KeyMap
	help      help.Model
	opts      Options
	logger    *log.Logger
	width     int
	height    int
	status    string
	quitting  bool
}

// NewModel creates a model with an idle game.
func NewModel(cfg config.Config, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Session == "" {
		opts.Session = uuid.New().String()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}
	logger := opts.Logger.With("session", opts.Session)

	canvas := core.NewCanvas(cfg.SurfaceSize())
	lcOpts := []snake.Option{
		snake.WithLogger(logger),
		snake.WithSeed(opts.Seed),
		snake.WithSurface(canvas),
	}
	if opts.Store != nil {
		lcOpts = append(lcOpts, snake.WithStore(opts.Store))
	}

	return Model{
		cfg:       cfg,
		game:      snake.NewLifecycle(cfg, lcOpts...),
		canvas:    canvas,
		board:     NewBoardRenderer(cfg),
		sim:       newTimer(newSimTick),
		countdown: newTimer(newCountdownTick),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		opts:      opts,
		logger:    logger,
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tui-snake", "screenshots")
	}
	return filepath.Join(home, ".tui-snake", "screenshots")
}

// State returns the current game snapshot.
func (m Model) State() snake.Snapshot {
	return m.game.State()
}

// Init publishes the idle board. No timer runs until a game starts.
func (m Model) Init() tea.Cmd {
	m.publish()
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case simTickMsg:
		if !m.sim.current(msg.gen) {
			return m, nil
		}
		m.sim.fired()
		return m.apply(m.game.Tick(), false)

	case countdownTickMsg:
		if !m.countdown.current(msg.gen) {
			return m, nil
		}
		m.countdown.fired()
		return m.apply(m.game.CountdownTick(), false)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.opts.Spectators != nil {
			m.opts.Spectators.Forget(m.opts.Session)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Start):
		m.status = ""
		ch := m.game.Start()
		return m.apply(ch, ch.PhaseChanged)
	}

	if m.game.Input(msg.String()) {
		m.logger.Debug("direction", "key", msg.String())
	}
	return m, nil
}

// apply reacts to a lifecycle change and reconciles both timers with it.
func (m Model) apply(ch snake.Change, restart bool) (tea.Model, tea.Cmd) {
	if ch.GameOver {
		m.recordScore()
	}
	if ch.Moved || ch.PhaseChanged {
		m.publish()
	}
	return m, m.schedule(restart)
}

func (m *Model) schedule(restart bool) tea.Cmd {
	return tea.Batch(
		m.sim.sync(m.game.SimActive(), m.game.TickDelay(), restart),
		m.countdown.sync(m.game.CountdownActive(), m.game.CountdownInterval(), restart),
	)
}

// recordScore appends a finished game to the score history.
func (m *Model) recordScore() {
	s := m.game.State()
	if m.opts.Store == nil || s.Score == 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(s.Score); err != nil {
		m.logger.Error("could not save score", "score", s.Score, "error", err)
	}
}

func (m *Model) publish() {
	if m.opts.Spectators == nil {
		return
	}
	m.opts.Spectators.Publish(m.opts.Session, m.game.State())
}

// saveScreenshot writes the current frame as text.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.status = "screenshot failed"
		m.logger.Error("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.board.Plain(m.canvas, m.cfg.Colors)+"\n"), 0o600); err != nil {
		m.status = "screenshot failed"
		m.logger.Error("could not save screenshot", "path", path, "error", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0170F3"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#DC3030")).
			Padding(0, 1)
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#881A1B")).
			Padding(1, 4).
			Align(lipgloss.Center)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MinSize returns the smallest terminal that fits the game.
func MinSize(cfg config.Config) (width, height int) {
	w, h := NewBoardRenderer(cfg).Size()
	// border, header, button line, help line
	return w + 2, h + 5
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.game.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render("SNAKE"))
	b.WriteString("  ")
	b.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d   Highscore: %d", s.Score, s.DisplayHighScore())))
	b.WriteString("\n")

	boardW, boardH := m.board.Size()
	board := m.board.Render(m.canvas)
	if s.IsLost {
		board = lipgloss.Place(boardW, boardH, lipgloss.Center, lipgloss.Center, gameOverText(s))
	}
	b.WriteString(boardStyle.Render(board))
	b.WriteString("\n")

	b.WriteString(m.controlLine(s))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func gameOverText(s snake.Snapshot) string {
	result := "You scored: " + strconv.Itoa(s.Score)
	if s.NewHighScore {
		result = "New Highscore"
	}
	return overlayStyle.Render("Game Over\n\n" + result)
}

// controlLine shows the start button, the countdown digit or how to play.
func (m Model) controlLine(s snake.Snapshot) string {
	if m.status != "" {
		return dimStyle.Render(m.status)
	}
	switch s.Phase() {
	case snake.PhaseCounting:
		return countStyle.Render(s.ButtonLabel())
	case snake.PhasePlaying:
		return dimStyle.Render("How to Play: steer with arrows or WASD, eat the food, avoid walls and yourself")
	default:
		return buttonStyle.Render(s.ButtonLabel()) + dimStyle.Render("  press enter")
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.Config, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
