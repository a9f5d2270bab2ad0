package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tiletap/internal/core"
)

// binding ties an action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// bindings lists every key the window reacts to. Digits on the main row
// and the numeric keypad both tap tiles.
var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionTap, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionKey1, []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
	{core.ActionKey2, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	{core.ActionKey3, []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}},
	{core.ActionKey4, []ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}},
	{core.ActionKey5, []ebiten.Key{ebiten.KeyDigit5, ebiten.KeyNumpad5}},
	{core.ActionKey6, []ebiten.Key{ebiten.KeyDigit6, ebiten.KeyNumpad6}},
	{core.ActionKey7, []ebiten.Key{ebiten.KeyDigit7, ebiten.KeyNumpad7}},
	{core.ActionKey8, []ebiten.Key{ebiten.KeyDigit8, ebiten.KeyNumpad8}},
	{core.ActionKey9, []ebiten.Key{ebiten.KeyDigit9, ebiten.KeyNumpad9}},
}

// quitKeys close the window immediately.
var quitKeys = []ebiten.Key{ebiten.KeyQ}

// pollInput sets the actions whose keys were pressed since the last frame.
// Returns true if a quit key was pressed.
func pollInput(frame *core.InputFrame) bool {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return false
}
