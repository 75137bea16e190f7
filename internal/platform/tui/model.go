package tui

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/metrics"
	"github.com/vovakirdan/snek/internal/snake"
)

// Options configures a Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Theme    config.Theme
	ShowHelp bool
	Logger   *log.Logger        // nil discards logs
	Metrics  *metrics.Collector // nil records nothing
	// Picker overrides the food picker for every session. Nil uses a
	// RandomPicker seeded from Runtime.Seed (or the clock when it is 0).
	Picker snake.CellPicker

	tracker *gameTracker
}

// gameTracker follows the live game across Model copies, so the owner of the
// program can account for a game that ended without reaching GameOver.
type gameTracker struct {
	mu      sync.Mutex
	running bool
	score   int
}

func (t *gameTracker) update(session *snake.Session) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = session != nil && !session.IsOver()
	if session != nil {
		t.score = session.Score()
	}
}

// abandoned returns the score of a game that was still running.
func (t *gameTracker) abandoned() (int, bool) {
	if t == nil {
		return 0, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.score, t.running
}

// Model is the Bubble Tea model for a snek terminal. It owns at most one game
// session at a time: created on Start, discarded on resize, replaced on Start
// after game over.
type Model struct {
	runtime   core.RuntimeConfig
	theme     config.Theme
	showHelp  bool
	picker    snake.CellPicker
	session   *snake.Session
	sessionID string
	sized     bool
	tooSmall  bool
	screen    *core.Screen
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	metrics   *metrics.Collector
	tracker   *gameTracker
	quitting  bool
}

// NewModel creates a shell model. A positive Runtime screen size counts as the
// first known viewport size; otherwise input is ignored until a resize arrives.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.Tick <= 0 {
		opts.Runtime.Tick = core.DefaultConfig().Tick
	}

	keys := DefaultKeyMap()
	m := Model{
		runtime:   opts.Runtime,
		theme:     opts.Theme,
		showHelp:  opts.ShowHelp,
		picker:    opts.Picker,
		sized:     opts.Runtime.ScreenW > 0 && opts.Runtime.ScreenH > 0,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		logger:    logger,
		metrics:   opts.Metrics,
		tracker:   opts.tracker,
	}
	m.help.Width = opts.Runtime.ScreenW
	m.screen = core.NewScreen(opts.Runtime.ScreenW, m.fieldHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Skip input until the viewport size is known
	if !m.sized {
		return m, nil
	}

	switch {
	case action == core.ActionStart:
		if m.session == nil || m.session.IsOver() {
			m.startSession()
		}
	case action.IsDirection():
		if m.session != nil {
			m.session.SetDirection(directionFor(action))
		}
	}
	return m, nil
}

// handleResize adopts the new viewport and drops the current session; its
// arena no longer matches the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	if m.session != nil && !m.session.IsOver() {
		m.logger.Info("session discarded on resize", "session", m.sessionID, "score", m.session.Score())
		m.metrics.GameOver("resize", m.session.Score())
	}
	m.session = nil
	m.sessionID = ""
	m.tooSmall = false
	m.sized = true
	m.tracker.update(nil)

	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.fieldHeight())
	return m
}

// handleTick advances a running session and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session != nil && !m.session.IsOver() {
		before := m.session.Score()
		m.session.Tick()
		m.metrics.FoodEaten(m.session.Score() - before)

		if m.session.IsOver() {
			snap := m.session.Snapshot()
			m.logger.Info("game over",
				"session", m.sessionID,
				"cause", snap.Cause,
				"score", snap.Score,
				"turns", snap.Turn,
			)
			m.metrics.GameOver(snap.Cause.String(), snap.Score)
		}
		m.tracker.update(m.session)
	}
	return m, tickCmd(m.runtime.Tick)
}

// startSession replaces the current session with a fresh one sized to the screen.
func (m *Model) startSession() {
	arena := snake.Arena{Width: m.screen.Width(), Height: m.screen.Height()}

	picker := m.picker
	if picker == nil {
		seed := m.runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		picker = snake.NewRandomPicker(seed)
	}

	session, err := snake.New(arena, picker)
	if err != nil {
		if errors.Is(err, snake.ErrArenaTooSmall) {
			m.tooSmall = true
		}
		m.logger.Warn("cannot start session", "error", err)
		return
	}

	m.session = session
	m.sessionID = uuid.NewString()
	m.tooSmall = false
	m.logger.Info("session started", "session", m.sessionID, "width", arena.Width, "height", arena.Height)
	m.metrics.GameStarted()
	m.tracker.update(session)
}

// fieldHeight is the screen height left for the play field after the footer.
func (m Model) fieldHeight() int {
	if m.showHelp {
		return max(m.runtime.ScreenH-1, 0)
	}
	return max(m.runtime.ScreenH, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	area := m.screen.Bounds()

	var snap *snake.Snapshot
	if m.session != nil {
		s := m.session.Snapshot()
		snap = &s
		drawSession(m.screen, area, s, m.theme)
	}
	if snap == nil || snap.State == snake.GameOver || m.tooSmall {
		drawPrompt(m.screen, area, promptLines(snap, m.tooSmall), m.theme)
	}

	view := RenderScreen(m.screen)
	if m.showHelp {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Session returns the current session, or nil when none has been started.
func (m Model) Session() *snake.Session {
	return m.session
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// directionFor maps a steering action to an engine direction.
func directionFor(a core.Action) snake.Direction {
	switch a {
	case core.ActionDown:
		return snake.Down
	case core.ActionLeft:
		return snake.Left
	case core.ActionRight:
		return snake.Right
	default:
		return snake.Up
	}
}

// Run starts a local Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
