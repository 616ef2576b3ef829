package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// melody cycles through notes forever. Loop needs a seeker, so the
// background track is generated rather than looped.
type melody struct {
	notes    []float64
	noteLen  int
	position int
	phase    float64
	rate     beep.SampleRate
}

func newMelody(notes []float64, noteLen time.Duration, rate beep.SampleRate) *melody {
	return &melody{notes: notes, noteLen: rate.N(noteLen), rate: rate}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.position / m.noteLen) % len(m.notes)
		inNote := m.position % m.noteLen

		// Short fade at each note edge avoids clicks.
		edge := m.rate.N(10 * time.Millisecond)
		vol := 1.0
		if inNote < edge {
			vol = float64(inNote) / float64(edge)
		} else if m.noteLen-inNote < edge {
			vol = float64(m.noteLen-inNote) / float64(edge)
		}

		val := vol * math.Sin(2*math.Pi*m.phase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.notes[idx] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// newVolume scales a stream linearly; zero or less is silent.
// math.Log2(0) is -Inf, so silence is handled separately.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := 5 * time.Millisecond
	release := min(d/3, 60*time.Millisecond)
	return newEnvelope(newOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// backgroundNotes is an A major run, up and back down.
var backgroundNotes = []float64{440, 494, 523, 587, 659, 587, 523, 494}

// synthesize builds the streamer for a cue, or nil for an unknown cue.
func synthesize(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CuePop:
		return tone(660, 150*time.Millisecond, WaveSine, rate)
	case core.CueCorrect:
		return beep.Seq(
			tone(880, 100*time.Millisecond, WaveSine, rate),
			tone(1320, 100*time.Millisecond, WaveSine, rate),
		)
	case core.CueWrong:
		return tone(220, 300*time.Millisecond, WaveSaw, rate)
	case core.CueClick:
		return tone(1200, 40*time.Millisecond, WaveSquare, rate)
	case core.CueLevelUp:
		return beep.Seq(
			tone(523, 120*time.Millisecond, WaveSquare, rate),
			tone(659, 120*time.Millisecond, WaveSquare, rate),
			tone(784, 240*time.Millisecond, WaveSquare, rate),
		)
	case core.CueGameOver:
		return beep.Seq(
			tone(440, 250*time.Millisecond, WaveSaw, rate),
			tone(330, 250*time.Millisecond, WaveSaw, rate),
			tone(220, 500*time.Millisecond, WaveSaw, rate),
		)
	case core.CueBackground:
		return newMelody(backgroundNotes, 250*time.Millisecond, rate)
	default:
		return nil
	}
}
