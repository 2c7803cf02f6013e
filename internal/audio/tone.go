package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// floorGain is where the exponential fade of every tone ends.
const floorGain = 0.001

// tone is a single oscillator note whose gain ramps exponentially from its
// volume down to floorGain over its length.
type tone struct {
	wave     core.Wave
	freq     float64
	volume   float64
	rate     beep.SampleRate
	phase    float64
	position int
	length   int
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case core.WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case core.WaveSawtooth:
			v = 2*t.phase - 1
		default:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= t.gain()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain follows volume * (floor/volume)^(position/length).
func (t *tone) gain() float64 {
	if t.volume <= floorGain {
		return t.volume
	}
	frac := float64(t.position) / float64(t.length)
	return t.volume * math.Pow(floorGain/t.volume, frac)
}

// Tone renders c at rate: silence for the cue's delay, then the note.
func Tone(c core.Cue, rate beep.SampleRate) beep.Streamer {
	note := &tone{
		wave:   c.Wave,
		freq:   c.Frequency,
		volume: core.ClampF(c.Volume, 0, 1),
		rate:   rate,
		length: max(1, rate.N(c.Duration)),
	}
	if c.Delay <= 0 {
		return note
	}
	return beep.Seq(beep.Silence(rate.N(c.Delay)), note)
}
