package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report no key release, only auto-repeat, so movement and fire
// stay active until the repeat stream stops for this long.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "m":
		return core.ActionMute, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// isHeld reports whether a stays active across frames while repeated.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// opposite returns the action that cancels a on the same axis.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// HeldKeys turns a stream of key presses into per-frame input.
// Held actions last for the hold window after each press; discrete
// actions are delivered on exactly one frame.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
	pulses []core.Action
}

// NewHeldKeys creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{window: window, until: make(map[core.Action]time.Time)}
}

// Press records a at time now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		h.pulses = append(h.pulses, a)
		return
	}
	// Reversing direction releases the old one at once.
	delete(h.until, opposite(a))
	h.until[a] = now.Add(h.window)
}

// Frame returns the input for a frame at time now and consumes pulses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for _, a := range h.pulses {
		f.Set(a)
	}
	h.pulses = h.pulses[:0]
	return f
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.until)
	h.pulses = h.pulses[:0]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionPages
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "g":
		return MenuActionPages
	}
	return MenuActionNone
}
