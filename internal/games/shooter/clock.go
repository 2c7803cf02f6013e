package shooter

import (
	"math"
	"time"
)

// MaxDelta caps a single simulation step in seconds. Longer gaps between
// frames (suspended window, debugger) advance the game by exactly this much.
const MaxDelta = 0.05

// ClampDelta bounds dt to [0, MaxDelta]. NaN and negative values become 0.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, MaxDelta)
}

// Clock converts wall-clock frame times into clamped deltas.
type Clock struct {
	last    time.Time
	started bool
}

// Reset moves the baseline to now so the next Tick measures from here.
func (c *Clock) Reset(now time.Time) {
	c.last = now
	c.started = true
}

// Tick returns the clamped seconds since the previous Tick or Reset. The
// first call after construction returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.Reset(now)
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// Loop drives a session from platform frame callbacks. Each Frame consumes
// one Intent: discrete presses change state first, then a running session
// advances by the clamped delta.
type Loop struct {
	session *Session
	clock   Clock
}

// NewLoop wraps s.
func NewLoop(s *Session) *Loop {
	return &Loop{session: s}
}

// Session returns the driven session.
func (l *Loop) Session() *Session { return l.session }

// Frame handles one platform frame at wall time now. It reports whether the
// session is running, i.e. whether the simulation wants more frames.
func (l *Loop) Frame(now time.Time, in Intent) bool {
	s := l.session
	if in.Mute {
		s.ToggleMute()
	}

	switch s.State() {
	case StateNotStarted:
		if in.Start {
			s.Start()
			l.clock.Reset(now)
		}
	case StateGameOver:
		if in.Restart || in.Start {
			s.Restart()
			l.clock.Reset(now)
		}
	case StateRunning, StatePaused:
		if in.Pause {
			s.TogglePause()
			if s.State() == StateRunning {
				// paused time must not count as elapsed
				l.clock.Reset(now)
			}
		}
	}

	if s.State() != StateRunning {
		return false
	}
	s.Update(l.clock.Tick(now), in)
	return s.State() == StateRunning
}
