// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(48000)

// maxVoices bounds how many cues can sound at once; extra cues are dropped.
const maxVoices = 32

// Synth mixes cues into a single speaker stream.
type Synth struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	master *effects.Volume
	closed bool
}

// NewSynth opens the speaker. Only one Synth may exist per process.
func NewSynth() (*Synth, error) {
	mixer := &beep.Mixer{}
	s := &Synth{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.master)
	return s, nil
}

// PlayCue implements the game's audio sink. It never blocks on playback.
func (s *Synth) PlayCue(c core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || c.Frequency <= 0 || c.Duration <= 0 {
		return
	}

	speaker.Lock()
	if s.mixer.Len() < maxVoices {
		s.mixer.Add(Tone(c, SampleRate))
	}
	speaker.Unlock()
}

// SetVolume shifts the master volume by v doublings; negative is quieter.
func (s *Synth) SetVolume(v float64) {
	speaker.Lock()
	s.master.Volume = v
	s.master.Silent = v <= -10
	speaker.Unlock()
}

// Close silences and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Nop discards every cue. Used when the speaker cannot be opened.
type Nop struct{}

// PlayCue implements the game's audio sink.
func (Nop) PlayCue(core.Cue) {}
