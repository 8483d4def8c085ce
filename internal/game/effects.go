package game

// Sound identifies an audio cue. Hosts map it to a real asset or synth.
type Sound int

const (
	SoundStart Sound = iota
	SoundCalm
	SoundJump
	SoundDeath
	SoundDanger
	SoundCongrats
	SoundAboutToEnd
)

// Sounds lists every cue in declaration order.
func Sounds() []Sound {
	return []Sound{SoundStart, SoundCalm, SoundJump, SoundDeath, SoundDanger, SoundCongrats, SoundAboutToEnd}
}

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundCalm:
		return "calm"
	case SoundJump:
		return "jump"
	case SoundDeath:
		return "death"
	case SoundDanger:
		return "danger"
	case SoundCongrats:
		return "congrats"
	case SoundAboutToEnd:
		return "about-to-end"
	default:
		return "unknown"
	}
}

// Looping reports whether the cue is background music that repeats until paused.
func (s Sound) Looping() bool {
	return s == SoundCalm || s == SoundDanger
}

// Effects plays audio cues. Calls are fire-and-forget and must not block.
type Effects interface {
	Play(s Sound)
	Pause(s Sound)
	Rewind(s Sound)
	Playing(s Sound) bool
}

// NopEffects discards every cue.
type NopEffects struct{}

func (NopEffects) Play(Sound)         {}
func (NopEffects) Pause(Sound)        {}
func (NopEffects) Rewind(Sound)       {}
func (NopEffects) Playing(Sound) bool { return false }

// HighScores persists the best score across sessions.
type HighScores interface {
	HighScore() int
	SetHighScore(score int) error
}

// MemoryHighScores keeps the high score for the lifetime of the process.
type MemoryHighScores struct {
	best int
}

// NewMemoryHighScores returns a store seeded with an initial value.
func NewMemoryHighScores(initial int) *MemoryHighScores {
	return &MemoryHighScores{best: initial}
}

func (m *MemoryHighScores) HighScore() int {
	return m.best
}

func (m *MemoryHighScores) SetHighScore(score int) error {
	m.best = score
	return nil
}
