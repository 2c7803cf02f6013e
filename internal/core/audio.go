package core

import "time"

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSine
	WaveSawtooth
)

func (w Wave) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSine:
		return "sine"
	case WaveSawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Cue describes one synthesized tone. Delay postpones its start relative to
// the moment it was emitted, which is how short jingles are expressed.
type Cue struct {
	Frequency float64
	Duration  time.Duration
	Wave      Wave
	Volume    float64
	Delay     time.Duration
}
