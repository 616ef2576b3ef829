// Package audio provides AudioPort implementations: a speaker-backed player
// that synthesizes every cue, and a silent fallback.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Volumes, linear.
const (
	effectVolume     = 0.3
	backgroundVolume = 0.12
)

// Player plays synthesized cues through the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	background  *beep.Ctrl
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayCue starts a cue. The background cue loops until stopped and is not
// restarted while already playing.
func (p *Player) PlayCue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	if c == core.CueBackground {
		speaker.Lock()
		if p.background == nil {
			p.background = &beep.Ctrl{Streamer: newVolume(synthesize(c, sampleRate), backgroundVolume)}
			p.mixer.Add(p.background)
		}
		p.background.Paused = false
		speaker.Unlock()
		return
	}

	s := synthesize(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(newVolume(s, effectVolume))
	speaker.Unlock()
}

// StopCue stops a looping cue. One-shot cues run to completion.
func (p *Player) StopCue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || c != core.CueBackground || p.background == nil {
		return
	}
	speaker.Lock()
	p.background.Paused = true
	speaker.Unlock()
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.background = nil
	p.initialized = false
}

// Open returns a working AudioPort and a function to release it.
// When muted, or when the speaker cannot be opened, the port is silent;
// the latter is logged as a warning.
func Open(logger *log.Logger, muted bool) (core.AudioPort, func()) {
	if muted {
		return core.NopAudio{}, func() {}
	}

	p := NewPlayer()
	if err := p.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return core.NopAudio{}, func() {}
	}
	return p, p.Close
}
