// Package audio plays the game's sound cues through the system speaker.
// All cues are synthesized, so no asset files are needed.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dino-dash/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Options configures a Manager.
type Options struct {
	Mute   bool
	Volume float64 // linear, 1 is full scale
	Logger *log.Logger
}

// voice is one playback of a cue. A rewind replaces the voice.
type voice struct {
	ctrl    *beep.Ctrl
	playing atomic.Bool
	done    atomic.Bool
}

// Manager implements game.Effects on top of a beep mixer. When the speaker
// cannot be opened it keeps running in silent mode and tracks state only.
type Manager struct {
	mu     sync.Mutex
	silent bool
	volume float64
	mixer  *beep.Mixer
	voices map[game.Sound]*voice
	logger *log.Logger
}

var _ game.Effects = (*Manager)(nil)

// New opens the speaker unless muted.
func New(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	vol := opts.Volume
	if vol <= 0 && !opts.Mute {
		vol = 1
	}

	m := &Manager{
		silent: opts.Mute,
		volume: vol,
		mixer:  &beep.Mixer{},
		voices: make(map[game.Sound]*voice),
		logger: logger,
	}

	if !m.silent {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			logger.Warn("audio unavailable, continuing muted", "err", err)
			m.silent = true
		} else {
			speaker.Play(m.mixer)
		}
	}

	for _, s := range game.Sounds() {
		m.voices[s] = m.newVoice(s, true)
	}
	if !m.silent {
		// Paused voices stream silence until played.
		speaker.Lock()
		for _, v := range m.voices {
			m.mixer.Add(v.ctrl)
		}
		speaker.Unlock()
	}
	return m
}

// Silent reports whether the manager is running without a speaker.
func (m *Manager) Silent() bool {
	return m.silent
}

func (m *Manager) newVoice(s game.Sound, paused bool) *voice {
	v := &voice{}
	if m.silent {
		return v
	}

	st := cue(sampleRate, s, m.volume)
	if !s.Looping() {
		// Runs on the speaker goroutine, so it only touches atomics.
		st = beep.Seq(st, beep.Callback(func() {
			v.playing.Store(false)
			v.done.Store(true)
		}))
	}
	v.ctrl = &beep.Ctrl{Streamer: st, Paused: paused}
	return v
}

func (m *Manager) Play(s game.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.voices[s]
	if !ok {
		return
	}
	if v.done.Load() {
		m.replace(s, false)
		v = m.voices[s]
	}

	if m.silent {
		// Without a speaker one-shots finish the moment they start.
		if s.Looping() {
			v.playing.Store(true)
		} else {
			v.playing.Store(false)
			v.done.Store(true)
		}
		return
	}

	v.playing.Store(true)
	speaker.Lock()
	v.ctrl.Paused = false
	speaker.Unlock()
}

func (m *Manager) Pause(s game.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.voices[s]
	if !ok {
		return
	}
	v.playing.Store(false)
	if m.silent {
		return
	}
	speaker.Lock()
	v.ctrl.Paused = true
	speaker.Unlock()
}

// Rewind restarts the cue from the beginning and keeps its paused state.
func (m *Manager) Rewind(s game.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.voices[s]
	if !ok {
		return
	}
	m.replace(s, !v.playing.Load())
}

func (m *Manager) Playing(s game.Sound) bool {
	m.mu.Lock()
	v, ok := m.voices[s]
	m.mu.Unlock()
	return ok && v.playing.Load()
}

// replace swaps the voice of s for a fresh one. Callers hold m.mu.
func (m *Manager) replace(s game.Sound, paused bool) {
	old := m.voices[s]
	nv := m.newVoice(s, paused)
	nv.playing.Store(!paused)

	if !m.silent {
		speaker.Lock()
		// A Ctrl with no streamer drains and the mixer drops it.
		old.ctrl.Streamer = nil
		m.mixer.Add(nv.ctrl)
		speaker.Unlock()
	}
	m.voices[s] = nv
}

// Close stops all sound and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.voices {
		v.playing.Store(false)
	}
	if m.silent {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.silent = true
}
