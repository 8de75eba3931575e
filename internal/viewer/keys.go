package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wireframe/internal/engine/camera"
	"github.com/Faultbox/wireframe/internal/engine/input"
)

// action is what a key press asks the viewer to do.
type action int

const (
	actionNone action = iota
	actionMove
	actionToggleAnimation
	actionToggleBounds
	actionReload
	actionScreenshot
	actionQuit
)

var moveKeys = map[sdl.Scancode]camera.Move{
	sdl.SCANCODE_LEFT:  camera.MoveOrbitLeft,
	sdl.SCANCODE_RIGHT: camera.MoveOrbitRight,
	sdl.SCANCODE_A:     camera.MoveTruckLeft,
	sdl.SCANCODE_D:     camera.MoveTruckRight,
	sdl.SCANCODE_W:     camera.MoveDollyForward,
	sdl.SCANCODE_UP:    camera.MoveDollyForward,
	sdl.SCANCODE_S:     camera.MoveDollyBackward,
	sdl.SCANCODE_DOWN:  camera.MoveDollyBackward,
}

var actionKeys = map[sdl.Scancode]action{
	sdl.SCANCODE_SPACE:  actionToggleAnimation,
	sdl.SCANCODE_B:      actionToggleBounds,
	sdl.SCANCODE_R:      actionReload,
	sdl.SCANCODE_F12:    actionScreenshot,
	sdl.SCANCODE_ESCAPE: actionQuit,
}

// bind maps an input event to an action. Held keys repeat camera moves only.
func bind(e input.Event) (action, camera.Move) {
	switch e.Type {
	case input.EventKeyDown:
		if m, ok := moveKeys[e.Key]; ok {
			return actionMove, m
		}
		if e.Repeat {
			return actionNone, camera.MoveNone
		}
		if a, ok := actionKeys[e.Key]; ok {
			return a, camera.MoveNone
		}
	case input.EventMouseWheel:
		if e.Wheel > 0 {
			return actionMove, camera.MoveDollyForward
		}
		if e.Wheel < 0 {
			return actionMove, camera.MoveDollyBackward
		}
	case input.EventQuit:
		return actionQuit, camera.MoveNone
	}
	return actionNone, camera.MoveNone
}
