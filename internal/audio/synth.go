package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/dino-dash/internal/game"
)

// wave streams a mono signal computed from the time in seconds.
// total < 0 means the wave never ends.
type wave struct {
	sr    beep.SampleRate
	pos   int
	total int
	fn    func(t float64) float64
}

func newWave(sr beep.SampleRate, d time.Duration, fn func(t float64) float64) *wave {
	total := -1
	if d > 0 {
		total = sr.N(d)
	}
	return &wave{sr: sr, total: total, fn: fn}
}

func (w *wave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if w.total >= 0 && w.pos >= w.total {
			return i, i > 0
		}
		v := w.fn(float64(w.pos) / float64(w.sr))
		samples[i][0] = v
		samples[i][1] = v
		w.pos++
	}
	return len(samples), true
}

func (w *wave) Err() error { return nil }

// volume scales a streamer linearly; 0 mutes it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// note is a plain sine of fixed length.
func note(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}

func sin(freq, t float64) float64 {
	return math.Sin(2 * math.Pi * freq * t)
}

// jump is a short upward sweep.
func jump(sr beep.SampleRate) beep.Streamer {
	const length = 0.15
	return newWave(sr, 150*time.Millisecond, func(t float64) float64 {
		freq := 300 + 400*t/length
		return 0.3 * (1 - t/length) * sin(freq, t)
	})
}

// death is a decaying low buzz.
func death(sr beep.SampleRate) beep.Streamer {
	return newWave(sr, 400*time.Millisecond, func(t float64) float64 {
		v := 0.3*sin(110, t) + 0.15*sin(220, t) + 0.075*sin(330, t)
		return v * math.Exp(-t*6)
	})
}

// calm is a gentle looping arpeggio.
func calm(sr beep.SampleRate) beep.Streamer {
	notes := []float64{261.63, 329.63, 392.0, 523.25}
	const step = 0.25
	return newWave(sr, 0, func(t float64) float64 {
		i := int(t/step) % len(notes)
		local := math.Mod(t, step)
		env := math.Exp(-local * 8)
		return 0.12 * env * sin(notes[i], t)
	})
}

// danger is a pulsing bass loop.
func danger(sr beep.SampleRate) beep.Streamer {
	const beat = 0.5
	return newWave(sr, 0, func(t float64) float64 {
		local := math.Mod(t, beat)
		kick := 0.0
		if local < 0.1 {
			env := 1 - local/0.1
			kick = 0.35 * env * sin(60*(1+2*env), local)
		}
		return kick + 0.1*sin(110, t) + 0.05*sin(220, t)
	})
}

// bell is the about-to-end chime.
func bell(sr beep.SampleRate) beep.Streamer {
	return newWave(sr, 600*time.Millisecond, func(t float64) float64 {
		return 0.25*math.Exp(-t*5)*sin(880, t) + 0.1*math.Exp(-t*9)*sin(1760, t)
	})
}

func fanfare(sr beep.SampleRate, freqs []float64, d time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		parts = append(parts, note(sr, f, d))
	}
	return volume(beep.Seq(parts...), 0.25)
}

// cue builds a fresh streamer for a sound, scaled by the master volume.
func cue(sr beep.SampleRate, s game.Sound, master float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case game.SoundStart:
		st = fanfare(sr, []float64{523.25, 783.99}, 120*time.Millisecond)
	case game.SoundCongrats:
		st = fanfare(sr, []float64{523.25, 659.25, 783.99, 1046.5}, 150*time.Millisecond)
	case game.SoundJump:
		st = jump(sr)
	case game.SoundDeath:
		st = death(sr)
	case game.SoundCalm:
		st = calm(sr)
	case game.SoundDanger:
		st = danger(sr)
	case game.SoundAboutToEnd:
		st = bell(sr)
	default:
		st = beep.Silence(0)
	}
	return volume(st, master)
}
