package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/folio3d/internal/engine/event"
)

func TestTranslateKeys(t *testing.T) {
	e, ok := Translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE},
	})
	assert.True(t, ok)
	assert.Equal(t, event.KeyDown, e.Type)
	assert.Equal(t, event.KeyEscape, e.Key)

	e, ok = Translate(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12, Mod: uint16(sdl.KMOD_LSHIFT)},
	})
	assert.True(t, ok)
	assert.Equal(t, event.KeyUp, e.Type)
	assert.Equal(t, event.KeyF12, e.Key)
	assert.Equal(t, event.ModShift, e.Mods)

	e, _ = Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}})
	assert.Equal(t, event.KeyUnknown, e.Key)
}

func TestTranslateSkipsKeyRepeat(t *testing.T) {
	_, ok := Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1})
	assert.False(t, ok)
}

func TestTranslateResize(t *testing.T) {
	e, ok := Translate(&sdl.WindowEvent{Event: uint8(sdl.WINDOWEVENT_SIZE_CHANGED), Data1: 1024, Data2: 768})
	assert.True(t, ok)
	assert.Equal(t, event.Event{Type: event.Resize, Width: 1024, Height: 768}, e)

	_, ok = Translate(&sdl.WindowEvent{Event: uint8(sdl.WINDOWEVENT_FOCUS_GAINED)})
	assert.False(t, ok)
}

func TestTranslateWheel(t *testing.T) {
	e, ok := Translate(&sdl.MouseWheelEvent{Y: 2})
	assert.True(t, ok)
	assert.Equal(t, event.Wheel, e.Type)
	assert.Equal(t, float32(2), e.DeltaY)

	e, _ = Translate(&sdl.MouseWheelEvent{Y: 2, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)})
	assert.Equal(t, float32(-2), e.DeltaY)
}

func TestTranslatePointer(t *testing.T) {
	e, ok := Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: uint8(sdl.BUTTON_RIGHT), X: 10, Y: 20})
	assert.True(t, ok)
	assert.Equal(t, event.PointerDown, e.Type)
	assert.Equal(t, event.ButtonRight, e.Button)
	assert.Equal(t, float32(10), e.X)
	assert.Equal(t, float32(20), e.Y)

	e, _ = Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: uint8(sdl.BUTTON_LEFT)})
	assert.Equal(t, event.PointerUp, e.Type)
	assert.Equal(t, event.ButtonLeft, e.Button)

	e, ok = Translate(&sdl.MouseMotionEvent{X: 5, Y: 6, XRel: -3, YRel: 4})
	assert.True(t, ok)
	assert.Equal(t, event.PointerMove, e.Type)
	assert.Equal(t, float32(-3), e.DX)
	assert.Equal(t, float32(4), e.DY)
}

func TestTranslateQuit(t *testing.T) {
	e, ok := Translate(&sdl.QuitEvent{})
	assert.True(t, ok)
	assert.Equal(t, event.Quit, e.Type)
}
