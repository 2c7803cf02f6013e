package shooter

import (
	"time"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . ScoreStore,AudioSink

// ScoreStore persists the best score. Implementations swallow their own
// failures: Read returns 0 when nothing can be read.
type ScoreStore interface {
	Read() int
	Write(score int)
}

// AudioSink plays sound cues. PlayCue must not block the caller for long
// and never reports failure.
type AudioSink interface {
	PlayCue(c core.Cue)
}

// Intent is the input snapshot consumed once per frame. MoveX and MoveY are
// -1, 0 or +1; the remaining fields are discrete presses except Fire, which
// is held.
type Intent struct {
	MoveX, MoveY int
	Fire         bool
	Pause        bool
	Mute         bool
	Start        bool
	Restart      bool
}

// IntentFromFrame folds platform actions into an Intent.
func IntentFromFrame(f core.InputFrame) Intent {
	return Intent{
		MoveX:   f.Axis(core.ActionLeft, core.ActionRight),
		MoveY:   f.Axis(core.ActionUp, core.ActionDown),
		Fire:    f.Has(core.ActionFire),
		Pause:   f.Has(core.ActionPause),
		Mute:    f.Has(core.ActionMute),
		Start:   f.Has(core.ActionStart),
		Restart: f.Has(core.ActionRestart),
	}
}

type silentAudio struct{}

func (silentAudio) PlayCue(core.Cue) {}

// volatileScore keeps the best score only in memory.
type volatileScore struct{ best int }

func (v *volatileScore) Read() int       { return v.best }
func (v *volatileScore) Write(score int) { v.best = score }

func tone(freq float64, ms int, w core.Wave, vol float64) core.Cue {
	return core.Cue{Frequency: freq, Duration: time.Duration(ms) * time.Millisecond, Wave: w, Volume: vol}
}

func after(ms int, c core.Cue) core.Cue {
	c.Delay = time.Duration(ms) * time.Millisecond
	return c
}

// Sound effects.
var (
	cuesShot      = []core.Cue{tone(700, 40, core.WaveSquare, 0.06)}
	cuesEnemyShot = []core.Cue{tone(200, 60, core.WaveSawtooth, 0.04)}
	cuesKill      = []core.Cue{tone(350, 120, core.WaveSquare, 0.08)}
	cuesDamage    = []core.Cue{tone(250, 50, core.WaveSquare, 0.05)}
	cuesExplosion = []core.Cue{
		tone(120, 300, core.WaveSawtooth, 0.15),
		after(50, tone(80, 200, core.WaveSquare, 0.08)),
	}
	cuesPowerUp = []core.Cue{
		tone(500, 80, core.WaveSine, 0.12),
		after(80, tone(700, 80, core.WaveSine, 0.12)),
		after(160, tone(900, 120, core.WaveSine, 0.12)),
	}
	cuesLevelUp = []core.Cue{
		tone(400, 100, core.WaveSine, 0.12),
		after(100, tone(500, 100, core.WaveSine, 0.12)),
		after(200, tone(600, 100, core.WaveSine, 0.12)),
		after(300, tone(800, 150, core.WaveSine, 0.15)),
	}
	cuesBossSpawn = []core.Cue{tone(60, 500, core.WaveSawtooth, 0.2)}
)
