// Package event defines platform-neutral window and pointer events and a
// dispatcher that fans them out to subscribers.
package event

import "sync"

// Type identifies an event kind.
type Type int

const (
	None Type = iota
	Quit
	Resize
	KeyDown
	KeyUp
	PointerDown
	PointerUp
	PointerMove
	Wheel
)

var typeNames = [...]string{"none", "quit", "resize", "keydown", "keyup", "pointerdown", "pointerup", "pointermove", "wheel"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Key is a keyboard key the application reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF12
	KeyShift
	KeyControl
)

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Modifier flags held during an event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Event is a single input or window event. Fields not relevant to Type are zero.
type Event struct {
	Type Type

	// Resize
	Width, Height int

	// Keyboard
	Key Key

	// Pointer position in window pixels, and motion since the last move.
	X, Y   float32
	DX, DY float32
	Button Button

	// Wheel: positive DeltaY scrolls away from the user.
	DeltaY float32

	Mods Modifier
}

// Handler receives events.
type Handler func(Event)

// Source is anything that delivers events to subscribers.
type Source interface {
	// Subscribe registers h and returns a function removing it.
	Subscribe(h Handler) (unsubscribe func())
}

// Dispatcher is a Source that forwards Dispatch calls to every subscriber in
// subscription order. It is safe for concurrent use; handlers may subscribe
// or unsubscribe from inside a dispatch.
type Dispatcher struct {
	mu       sync.Mutex
	nextID   int
	handlers []entry
}

type entry struct {
	id int
	h  Handler
}

// Subscribe implements Source. Calling the returned function more than once is a no-op.
func (d *Dispatcher) Subscribe(h Handler) func() {
	if h == nil {
		return func() {}
	}
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, entry{id: id, h: h})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Dispatcher) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.handlers {
		if e.id == id {
			d.handlers = append(d.handlers[:i:i], d.handlers[i+1:]...)
			return
		}
	}
}

// Len returns the number of subscribers.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}

// Dispatch delivers e to a snapshot of the current subscribers.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.Lock()
	snapshot := make([]entry, len(d.handlers))
	copy(snapshot, d.handlers)
	d.mu.Unlock()

	for _, s := range snapshot {
		s.h(e)
	}
}
