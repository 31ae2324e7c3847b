// Package audio plays short feedback cues for game actions. Audio is
// strictly optional: if the speaker cannot initialize the player goes
// silent and the game runs without sound.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces feedback tones through the system speaker.
type Player struct {
	ready bool
	muted bool
}

// NewPlayer initializes the speaker. Initialization failure is not an
// error; the returned player is simply silent.
func NewPlayer(enabled bool) *Player {
	p := &Player{muted: !enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		p.ready = true
	}
	return p
}

// Ready reports whether the speaker initialized.
func (p *Player) Ready() bool {
	return p.ready
}

// SetMuted toggles cue playback without touching the speaker.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Confirm plays a short high tone for an applied action.
func (p *Player) Confirm() {
	p.tone(880, 40*time.Millisecond)
}

// Reject plays a lower tone for a boundary hit (already at minimum
// zoom, speed clamped, and so on).
func (p *Player) Reject() {
	p.tone(220, 60*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.ready || p.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
	}
}
