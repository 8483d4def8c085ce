// Package window runs the game in a desktop window on ebiten.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/game"
	"github.com/vovakirdan/dino-dash/internal/platform/window/art"
	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

const (
	DefaultWidth  = 1200
	DefaultHeight = 600
)

var (
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	duckKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	pauseKeys = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
)

// Spectators receives a snapshot after every step. Implementations must not block.
type Spectators interface {
	Publish(snap game.Snapshot)
}

// Options configures a window game.
type Options struct {
	Mode       registry.Mode
	Config     config.Config
	Runtime    core.RuntimeConfig // ScreenW/ScreenH are window pixels
	Store      *storage.Store
	Effects    game.Effects
	Spectators Spectators
	Logger     *log.Logger

	// AssetsDir holds optional <sprite>.png overrides.
	AssetsDir string

	// ScreenshotDir overrides ~/.dash/screenshots.
	ScreenshotDir string
}

// Game implements ebiten.Game around one session.
type Game struct {
	opts    Options
	session *game.Session
	surface *imageSurface
	gesture *game.Gesture
	logger  *log.Logger

	clock      float64 // ms of host time since start
	touchID    ebiten.TouchID
	touching   bool
	keyDucking bool
	width      int
	height     int
	state      core.GameState
	runSaved   bool
	shotWanted bool
}

// NewGame creates a game for the given mode.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
	}
	opts.Runtime = cfg

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	faces, err := art.Faces()
	if err != nil {
		return nil, err
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

	session := game.NewSession(game.Options{
		Config:     opts.Mode.Configure(opts.Config),
		Width:      float64(cfg.ScreenW),
		Height:     float64(cfg.ScreenH),
		Seed:       cfg.Seed,
		Effects:    opts.Effects,
		HighScores: scores,
		Logger:     logger,
	})

	return &Game{
		opts:    opts,
		session: session,
		surface: &imageSurface{
			sprites: loadSprites(opts.AssetsDir, logger),
			faces:   faces,
		},
		gesture: game.NewGesture(game.DefaultHold),
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		state:   session.State(),
	}, nil
}

// Update runs one simulation step per tick.
func (g *Game) Update() error {
	step := 1000.0 / float64(g.opts.Runtime.TickRate)
	g.clock += step

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shotWanted = true
	}

	g.handleKeys()
	g.handlePointer()

	g.state = g.session.Step(step)

	if g.opts.Spectators != nil {
		g.opts.Spectators.Publish(g.session.Snapshot())
	}
	if g.state.GameOver && !g.runSaved {
		g.saveRun()
		g.runSaved = true
	}
	return nil
}

func (g *Game) handleKeys() {
	if anyJustPressed(pauseKeys) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}

	if anyJustPressed(jumpKeys) {
		if g.keyDucking {
			g.keyDucking = false
			g.session.Input(core.IntentDuckEnd)
		}
		g.session.Input(core.IntentJump)
	}

	switch {
	case !g.keyDucking && anyJustPressed(duckKeys):
		g.keyDucking = true
		g.session.Input(core.IntentDuckStart)
	case g.keyDucking && !anyPressed(duckKeys):
		g.keyDucking = false
		g.session.Input(core.IntentDuckEnd)
	}
}

// handlePointer feeds the left mouse button or the first touch into the
// gesture tracker. A tap on the game-over screen restarts.
func (g *Game) handlePointer() {
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if !g.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touchID = ids[0]
			g.touching = true
			pressed = true
		}
	} else if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		released = true
	}

	if pressed && !g.gesture.Active() {
		if g.state.GameOver {
			g.restart()
			return
		}
		g.gesture.Press(g.clock)
	}
	g.input(g.gesture.Tick(g.clock))
	if released {
		g.input(g.gesture.Release(g.clock, g.session.Snapshot().Player))
	}
}

func (g *Game) input(intents []core.Intent) {
	for _, in := range intents {
		g.session.Input(in)
	}
}

func (g *Game) restart() {
	if !g.state.GameOver {
		return
	}
	g.session.Input(core.IntentRestart)
	g.state = g.session.State()
	g.runSaved = false
	g.keyDucking = false
}

// saveRun records the finished run. Best-effort: the game continues regardless.
func (g *Game) saveRun() {
	if g.opts.Store == nil {
		return
	}
	run := storage.RunEntry{
		Mode:     g.opts.Mode.ID,
		Score:    g.state.Score,
		Outcome:  g.session.Outcome().String(),
		Duration: g.session.Elapsed(),
	}
	if _, err := g.opts.Store.SaveRun(run); err != nil {
		g.logger.Warn("could not save run", "mode", run.Mode, "error", err)
	}
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	game.Render(g.surface, g.session.Snapshot())

	if g.shotWanted {
		g.shotWanted = false
		g.saveScreenshot(screen)
	}
}

// Layout keeps one world unit per window pixel. A size change resizes the
// running session.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(g.width), float64(g.height))
	}
	return g.width, g.height
}

func (g *Game) saveScreenshot(screen *ebiten.Image) {
	dir := g.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			g.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".dash", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	b := screen.Bounds()
	img := image.NewRGBA(b)
	screen.ReadPixels(img.Pix)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", g.opts.Mode.ID, timestamp))
	f, err := os.Create(path)
	if err != nil {
		g.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		g.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	g.logger.Info("screenshot saved", "path", path)
}

// State returns the last game state.
func (g *Game) State() core.GameState {
	return g.state
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(fmt.Sprintf("Dino Dash - %s", opts.Mode.Title))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.Runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
