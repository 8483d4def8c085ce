// Package game implements the runner simulation: player physics, obstacle
// spawning, collisions, scoring, the danger phase and particle effects.
// It draws through the Surface port and plays sound through Effects, so it
// has no dependency on any terminal, window or audio library.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Phase is the music/visual phase derived from the score.
type Phase int

const (
	PhaseCalm Phase = iota
	PhaseDanger
)

func (p Phase) String() string {
	if p == PhaseDanger {
		return "danger"
	}
	return "calm"
}

// Outcome is the state of the run.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "running"
	}
}

// Options configures a new Session.
type Options struct {
	Config     config.Config
	Width      float64 // viewport in world units
	Height     float64
	Seed       int64 // 0 seeds from the clock
	Effects    Effects
	HighScores HighScores
	Logger     *log.Logger // nil uses log.Default
}

// Session owns one run of the game and advances it step by step.
// It is not safe for concurrent use; hosts drive it from a single goroutine.
type Session struct {
	cfg        config.Config
	difficulty *config.Difficulty
	rng        *rand.Rand
	fx         Effects
	scores     HighScores
	logger     *log.Logger

	width, height float64
	groundY       float64

	player    *Player
	spawner   *Spawner
	obstacles []Obstacle
	particles *ParticleSystem
	pending   []core.Intent

	score      int
	highScore  int
	scoreAcc   float64 // ms not yet converted into points
	milestone  int     // last milestone boundary celebrated
	speed      float64
	background float64 // parallax offset, in (-width, 0]
	elapsed    float64 // simulation time in ms

	phase      Phase
	aboutToEnd bool
	outcome    Outcome
	paused     bool
	saveFailed bool // the last high score write failed
}

// NewSession creates a running session and starts the calm music.
func NewSession(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fx := opts.Effects
	if fx == nil {
		fx = NopEffects{}
	}
	scores := opts.HighScores
	if scores == nil {
		scores = NewMemoryHighScores(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		cfg:        opts.Config,
		difficulty: config.NewDifficulty(opts.Config),
		rng:        rand.New(rand.NewSource(seed)),
		fx:         fx,
		scores:     scores,
		logger:     logger,
		highScore:  scores.HighScore(),
		obstacles:  make([]Obstacle, 0, 16),
		particles:  NewParticleSystem(opts.Config.Particles),
	}
	s.spawner = NewSpawner(s.cfg.Spawner, s.rng)
	s.setViewport(opts.Width, opts.Height)
	s.player = NewPlayer(s.cfg, s.groundY)
	s.speed = s.difficulty.Speed(0)

	s.play(SoundStart)
	s.play(SoundCalm)
	return s
}

func (s *Session) setViewport(w, h float64) {
	s.width = math.Max(w, 0)
	s.height = math.Max(h, 0)
	s.groundY = s.height - s.cfg.Player.GroundOffset
}

// Input queues an intent for the next step. Restart is applied at once and
// only when the run has ended; everything else is dropped after the run ends.
func (s *Session) Input(in core.Intent) {
	if in == core.IntentRestart {
		s.Restart()
		return
	}
	if s.outcome != OutcomeRunning {
		return
	}
	s.pending = append(s.pending, in)
}

func (s *Session) applyIntents() {
	for _, in := range s.pending {
		switch in {
		case core.IntentJump:
			if s.player.Jump() {
				s.play(SoundJump)
			}
		case core.IntentDuckStart:
			s.player.StartDuck()
		case core.IntentDuckEnd:
			s.player.EndDuck()
		case core.IntentGestureEnd:
			s.player.EndGesture()
		}
	}
	s.pending = s.pending[:0]
}

// Step advances the simulation by dt milliseconds. Negative or non-finite
// dt is treated as zero and longer steps are cut to Physics.MaxStepMs.
// Nothing moves once the run has ended or while paused; intents queued
// during a pause apply on the first step after it. Step never fails.
func (s *Session) Step(dt float64) core.GameState {
	if s.outcome != OutcomeRunning {
		s.pending = s.pending[:0]
		return s.State()
	}
	// A zero-length frame changes nothing; queued intents wait for the next one.
	if s.paused || math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return s.State()
	}
	dt = math.Min(dt, s.cfg.Physics.MaxStepMs)
	f := core.Clamp(dt/s.cfg.Physics.FrameMs, 0, s.cfg.Physics.MaxFrameFactor)
	s.elapsed += dt

	s.applyIntents()

	s.speed = s.difficulty.Speed(s.score)
	s.scrollBackground(f)
	s.player.Update(f)

	if s.spawner.Advance(dt, s.difficulty.SpawnInterval(s.score)) {
		s.obstacles = append(s.obstacles, s.spawner.Spawn(s.width, s.groundY)...)
	}

	if s.advanceObstacles(f) {
		s.lose()
	} else {
		s.accrueScore(dt)
		s.celebrateMilestones()
		if s.outcome == OutcomeRunning {
			s.updatePhase()
		}
	}

	s.particles.Update(f)
	return s.State()
}

func (s *Session) scrollBackground(f float64) {
	if s.width <= 0 {
		s.background = 0
		return
	}
	s.background -= s.speed / 2 * f
	for s.background <= -s.width {
		s.background += s.width
	}
}

// advanceObstacles moves and prunes obstacles and reports the first hit.
// Once a hit is found the remaining obstacles stay where they are.
func (s *Session) advanceObstacles(f float64) bool {
	bob := bobbing{amplitude: s.cfg.Spawner.BobAmplitude, period: s.cfg.Spawner.BobPeriod}
	box := s.player.Hitbox()
	hit := false

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !hit {
			o.advance(s.speed, f, s.elapsed, bob)
			if o.OffScreen() {
				continue
			}
			hit = o.Rect().Overlaps(box)
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
	return hit
}

func (s *Session) lose() {
	cx, cy := s.player.Hitbox().Center()
	s.particles.Burst(s.rng, cx, cy, s.cfg.Particles.CollisionBurst)
	s.play(SoundDeath)
	s.stopMusic()
	s.outcome = OutcomeLost
}

func (s *Session) accrueScore(dt float64) {
	s.scoreAcc += dt
	per := s.cfg.Scoring.MsPerPoint
	if s.scoreAcc < per {
		return
	}
	inc := math.Floor(s.scoreAcc / per)
	s.scoreAcc -= inc * per
	if s.scoreAcc < 0 || s.scoreAcc >= per {
		s.scoreAcc = 0
	}

	ceiling := s.cfg.Scoring.Ceiling
	limit := float64(math.MaxInt32 - s.score)
	if ceiling > 0 {
		limit = float64(max(ceiling-s.score, 0))
	}
	s.score += int(math.Min(inc, limit))

	won := ceiling > 0 && s.score >= ceiling
	if won {
		s.score = ceiling
	}

	if s.score > s.highScore {
		s.highScore = s.score
		s.saveHighScore()
	}

	if won {
		s.stopMusic()
		s.outcome = OutcomeWon
	}
}

// saveHighScore persists a new best. A failing store is reported once until
// it recovers; the run goes on either way.
func (s *Session) saveHighScore() {
	err := s.scores.SetHighScore(s.highScore)
	if err != nil && !s.saveFailed {
		s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
	}
	s.saveFailed = err != nil
}

func (s *Session) celebrateMilestones() {
	step := s.cfg.Scoring.MilestoneStep
	for next := s.milestone + step; next <= s.score; next += step {
		s.milestone = next
		s.particles.Burst(s.rng, s.width/2, s.height/2, s.cfg.Particles.MilestoneBurst)
		s.play(SoundCongrats)
	}
}

func (s *Session) updatePhase() {
	ph := s.cfg.Phases
	if s.score >= ph.DangerStart && s.score < ph.DangerEnd {
		if s.phase != PhaseDanger {
			s.fx.Pause(SoundCalm)
			s.fx.Rewind(SoundDanger)
			s.fx.Play(SoundDanger)
			s.phase = PhaseDanger
			s.aboutToEnd = false
		}
		if !s.aboutToEnd && s.score >= ph.AboutToEnd {
			s.aboutToEnd = true
			s.play(SoundAboutToEnd)
		}
		return
	}
	if s.phase != PhaseCalm {
		s.fx.Pause(SoundDanger)
		s.fx.Rewind(SoundCalm)
		s.fx.Play(SoundCalm)
		s.phase = PhaseCalm
	}
}

// play starts a cue from the beginning unless it is already sounding.
func (s *Session) play(snd Sound) {
	if s.fx.Playing(snd) {
		return
	}
	s.fx.Rewind(snd)
	s.fx.Play(snd)
}

func (s *Session) stopMusic() {
	s.fx.Pause(SoundCalm)
	s.fx.Pause(SoundDanger)
}

func (s *Session) currentLoop() Sound {
	if s.phase == PhaseDanger {
		return SoundDanger
	}
	return SoundCalm
}

// Restart starts a new run after the previous one ended. The high score is
// kept. It reports whether a restart happened.
func (s *Session) Restart() bool {
	if s.outcome == OutcomeRunning {
		return false
	}

	s.player.Reset(s.groundY)
	s.spawner.Reset()
	s.obstacles = s.obstacles[:0]
	s.particles.Clear()
	s.pending = s.pending[:0]

	s.score = 0
	s.scoreAcc = 0
	s.milestone = 0
	s.speed = s.difficulty.Speed(0)
	s.background = 0
	s.elapsed = 0
	s.phase = PhaseCalm
	s.aboutToEnd = false
	s.outcome = OutcomeRunning
	s.paused = false

	s.fx.Pause(SoundDanger)
	s.fx.Rewind(SoundCalm)
	s.fx.Play(SoundCalm)
	return true
}

// TogglePause freezes or resumes a running session along with its music.
func (s *Session) TogglePause() {
	if s.outcome != OutcomeRunning {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.fx.Pause(s.currentLoop())
	} else {
		s.fx.Play(s.currentLoop())
	}
}

// Resize changes the viewport. The ground line follows the new height and
// everything standing on it moves with it.
func (s *Session) Resize(w, h float64) {
	oldGround := s.groundY
	s.setViewport(w, h)
	dy := s.groundY - oldGround
	for i := range s.obstacles {
		s.obstacles[i].Y += dy
	}
	s.player.SetGround(s.groundY)
	if s.width > 0 {
		s.background = math.Mod(s.background, s.width)
	}
}

// State returns the summary hosts use for HUDs and persistence.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  s.outcome != OutcomeRunning,
		Won:       s.outcome == OutcomeWon,
		Paused:    s.paused,
	}
}

// Outcome returns whether the run is going, lost or won.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Elapsed returns the simulated run time.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.elapsed * float64(time.Millisecond))
}
