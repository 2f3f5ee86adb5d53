// Package input translates SDL2 events into platform-neutral events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/folio3d/internal/engine/event"
)

// Input polls SDL and buffers translated events.
type Input struct {
	events []event.Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]event.Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		e, ok := Translate(ev)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == event.Quit {
			quit = true
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []event.Event {
	return i.events
}

// Translate converts one SDL event. It returns false for events the
// application does not use.
func Translate(ev sdl.Event) (event.Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return event.Event{Type: event.Quit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return event.Event{
				Type:   event.Resize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return event.Event{}, false
		}
		t := event.KeyDown
		if e.Type == sdl.KEYUP {
			t = event.KeyUp
		}
		return event.Event{
			Type: t,
			Key:  translateKey(e.Keysym.Scancode),
			Mods: translateMods(sdl.Keymod(e.Keysym.Mod)),
		}, true

	case *sdl.MouseMotionEvent:
		return event.Event{
			Type: event.PointerMove,
			X:    float32(e.X),
			Y:    float32(e.Y),
			DX:   float32(e.XRel),
			DY:   float32(e.YRel),
			Mods: translateMods(sdl.GetModState()),
		}, true

	case *sdl.MouseButtonEvent:
		t := event.PointerDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = event.PointerUp
		}
		return event.Event{
			Type:   t,
			X:      float32(e.X),
			Y:      float32(e.Y),
			Button: translateButton(e.Button),
			Mods:   translateMods(sdl.GetModState()),
		}, true

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		return event.Event{Type: event.Wheel, DeltaY: dy}, true
	}

	return event.Event{}, false
}

func translateKey(sc sdl.Scancode) event.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return event.KeyEscape
	case sdl.SCANCODE_F12:
		return event.KeyF12
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return event.KeyShift
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		return event.KeyControl
	}
	return event.KeyUnknown
}

func translateButton(b uint8) event.Button {
	switch b {
	case sdl.BUTTON_MIDDLE:
		return event.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return event.ButtonRight
	}
	return event.ButtonLeft
}

func translateMods(m sdl.Keymod) event.Modifier {
	var out event.Modifier
	if m&sdl.KMOD_SHIFT != 0 {
		out |= event.ModShift
	}
	if m&sdl.KMOD_CTRL != 0 {
		out |= event.ModCtrl
	}
	if m&sdl.KMOD_ALT != 0 {
		out |= event.ModAlt
	}
	return out
}
