package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// Spectators receives a snapshot after every step. Implementations must not block.
type Spectators interface {
	Publish(snap game.Snapshot)
}

// Options configures a game model.
type Options struct {
	Mode       registry.Mode
	Config     config.Config // base config; the mode is applied on top
	Runtime    core.RuntimeConfig
	Store      *storage.Store // nil keeps the high score in memory
	Effects    game.Effects
	Spectators Spectators
	Logger     *log.Logger

	// ScreenshotDir overrides ~/.dash/screenshots.
	ScreenshotDir string

	// Embedded models leave quitting on Back to the parent model.
	Embedded bool
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	opts    Options
	session *game.Session
	screen  *core.Screen
	surface *CellSurface
	styles  styleCache
	keys    *KeyMapper
	duck    *duckKey
	logger  *log.Logger
	now     func() time.Time

	lastTick   time.Time
	state      core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	opts.Runtime = cfg

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var scores game.HighScores = game.NewMemoryHighScores(0)
	if opts.Store != nil {
		key, err := storage.NewHighScoreKey(opts.Store, opts.Mode.ID)
		if err != nil {
			logger.Warn("could not load high score", "mode", opts.Mode.ID, "error", err)
		} else {
			scores = key
		}
	}

	w, h := WorldSize(cfg.ScreenW, cfg.ScreenH)
	session := game.NewSession(game.Options{
		Config:     opts.Mode.Configure(opts.Config),
		Width:      w,
		Height:     h,
		Seed:       cfg.Seed,
		Effects:    opts.Effects,
		HighScores: scores,
		Logger:     logger,
	})

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		opts:    opts,
		session: session,
		screen:  screen,
		surface: NewCellSurface(screen),
		styles:  make(styleCache),
		keys:    NewKeyMapper(),
		duck:    newDuckKey(DuckRelease),
		logger:  logger,
		now:     time.Now,
		state:   session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		if m.duck.Cancel() {
			m.session.Input(core.IntentDuckEnd)
		}
		m.session.Input(core.IntentJump)
	case core.ActionDuck:
		if m.duck.Press(m.now()) {
			m.session.Input(core.IntentDuckStart)
		}
	case core.ActionPause:
		m.session.TogglePause()
		m.state = m.session.State()
	case core.ActionRestart:
		if m.state.GameOver {
			m.session.Input(core.IntentRestart)
			m.state = m.session.State()
			m.runSaved = false
			m.duck.Cancel()
		}
	case core.ActionBack:
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(WorldSize(msg.Width, msg.Height))
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1000.0 / float64(m.opts.Runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	if m.duck.Expired(now) {
		m.session.Input(core.IntentDuckEnd)
	}

	m.state = m.session.Step(dt)

	if m.opts.Spectators != nil {
		m.opts.Spectators.Publish(m.session.Snapshot())
	}

	if m.state.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRun records the finished run. Best-effort: the game continues regardless.
func (m Model) saveRun() {
	if m.opts.Store == nil {
		return
	}
	run := storage.RunEntry{
		Mode:     m.opts.Mode.ID,
		Score:    m.state.Score,
		Outcome:  m.session.Outcome().String(),
		Duration: m.session.Elapsed(),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "mode", run.Mode, "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".dash", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.Mode.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.screen.Clear()
	game.Render(m.surface, m.session.Snapshot())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.draw()
	return renderWith(m.screen, m.styles)
}

// State returns the last game state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with a game model.
// It reports whether the player asked to return to the menu.
func Run(opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
