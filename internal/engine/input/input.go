// Package input tracks keyboard and mouse state between frames.
//
// The window package translates platform events into Events; this package
// only accumulates them, so it has no SDL dependency.
package input

import "time"

// Key identifies a key the viewer binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyShift
	KeyEnter
	KeyTab
	KeyEscape
	KeyM
	KeyPlus
	KeyMinus
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF12
	KeyP
	KeyLeftBracket
	KeyRightBracket
	KeyBackspace
	keyCount
)

// Digit returns the number 1-9 for Key1..Key9, or 0.
func (k Key) Digit() int {
	if k >= Key1 && k <= Key9 {
		return int(k-Key1) + 1
	}
	return 0
}

// EventType is the kind of input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Mouse buttons.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
)

// Event is a platform-independent input event.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool // Key auto-repeat
	Width  int
	Height int
	DX, DY float32 // Relative mouse motion or wheel delta
	Button uint8
}

// State accumulates events for one frame and remembers held keys.
type State struct {
	held    [keyCount]bool
	pressed [keyCount]bool
	buttons [8]bool
	clicked [8]bool

	mouseDX, mouseDY float32
	wheel            float32

	quit          bool
	resized       bool
	width, height int

	events []Event
}

// New creates an empty input state.
func New() *State {
	return &State{events: make([]Event, 0, 16)}
}

// BeginFrame clears per-frame data. Held keys and buttons persist.
func (s *State) BeginFrame() {
	s.pressed = [keyCount]bool{}
	s.clicked = [8]bool{}
	s.mouseDX, s.mouseDY, s.wheel = 0, 0, 0
	s.resized = false
	s.events = s.events[:0]
}

// Apply records one event.
func (s *State) Apply(e Event) {
	s.events = append(s.events, e)

	switch e.Type {
	case EventQuit:
		s.quit = true
	case EventWindowResize:
		s.resized = true
		s.width, s.height = e.Width, e.Height
	case EventKeyDown:
		if e.Key <= KeyUnknown || e.Key >= keyCount {
			return
		}
		if !e.Repeat && !s.held[e.Key] {
			s.pressed[e.Key] = true
		}
		s.held[e.Key] = true
	case EventKeyUp:
		if e.Key > KeyUnknown && e.Key < keyCount {
			s.held[e.Key] = false
		}
	case EventMouseMove:
		s.mouseDX += e.DX
		s.mouseDY += e.DY
	case EventMouseDown, EventMouseUp:
		if int(e.Button) < len(s.buttons) {
			down := e.Type == EventMouseDown
			if down && !s.buttons[e.Button] {
				s.clicked[e.Button] = true
			}
			s.buttons[e.Button] = down
		}
	case EventWheel:
		s.wheel += e.DY
	}
}

// Events returns the events applied since BeginFrame.
func (s *State) Events() []Event {
	return s.events
}

// Held reports whether k is currently down.
func (s *State) Held(k Key) bool {
	return k > KeyUnknown && k < keyCount && s.held[k]
}

// Pressed reports whether k went down this frame. Auto-repeat does not count.
func (s *State) Pressed(k Key) bool {
	return k > KeyUnknown && k < keyCount && s.pressed[k]
}

// ButtonHeld reports whether a mouse button is down.
func (s *State) ButtonHeld(button uint8) bool {
	return int(button) < len(s.buttons) && s.buttons[button]
}

// ButtonPressed reports whether a mouse button went down this frame.
func (s *State) ButtonPressed(button uint8) bool {
	return int(button) < len(s.clicked) && s.clicked[button]
}

// MouseDelta returns relative mouse motion this frame.
func (s *State) MouseDelta() (dx, dy float32) {
	return s.mouseDX, s.mouseDY
}

// Wheel returns vertical wheel motion this frame.
func (s *State) Wheel() float32 {
	return s.wheel
}

// QuitRequested reports whether the window was asked to close.
func (s *State) QuitRequested() bool {
	return s.quit
}

// Resized returns the new window size if it changed this frame.
func (s *State) Resized() (width, height int, ok bool) {
	return s.width, s.height, s.resized
}

// Debouncer lets an action through at most once per interval.
type Debouncer struct {
	Interval time.Duration
	last     time.Time
}

// Allow reports whether the action may fire at now, and records it if so.
func (d *Debouncer) Allow(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.Interval {
		return false
	}
	d.last = now
	return true
}
