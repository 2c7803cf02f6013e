package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// binding maps one action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// heldBindings are active on every frame the key is down.
var heldBindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
}

// pressBindings fire once on the frame the key goes down.
var pressBindings = []binding{
	{core.ActionStart, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionMute, []ebiten.Key{ebiten.KeyM}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// readInput samples the keyboard for one frame.
func readInput() core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}
	for _, b := range pressBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}
	return f
}
