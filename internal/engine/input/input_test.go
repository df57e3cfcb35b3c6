package input

import (
	"testing"
	"time"
)

func TestKeyPressAndHold(t *testing.T) {
	s := New()

	s.BeginFrame()
	s.Apply(Event{Type: EventKeyDown, Key: KeyW})
	if !s.Pressed(KeyW) || !s.Held(KeyW) {
		t.Fatal("W should be pressed and held on the first frame")
	}

	s.BeginFrame()
	s.Apply(Event{Type: EventKeyDown, Key: KeyW, Repeat: true})
	if s.Pressed(KeyW) {
		t.Error("auto-repeat should not count as a press")
	}
	if !s.Held(KeyW) {
		t.Error("W should still be held")
	}

	s.BeginFrame()
	s.Apply(Event{Type: EventKeyUp, Key: KeyW})
	if s.Held(KeyW) {
		t.Error("W should be released")
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Apply(Event{Type: EventKeyDown, Key: KeyUnknown})
	s.Apply(Event{Type: EventKeyDown, Key: Key(999)})

	if s.Pressed(KeyUnknown) || s.Held(Key(999)) {
		t.Error("unknown keys should never report as down")
	}
	if len(s.Events()) != 2 {
		t.Errorf("events still recorded: got %d", len(s.Events()))
	}
}

func TestMouseAccumulates(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Apply(Event{Type: EventMouseMove, DX: 3, DY: -1})
	s.Apply(Event{Type: EventMouseMove, DX: 2, DY: -4})
	s.Apply(Event{Type: EventWheel, DY: 1})
	s.Apply(Event{Type: EventWheel, DY: 1})

	dx, dy := s.MouseDelta()
	if dx != 5 || dy != -5 {
		t.Errorf("MouseDelta = (%v, %v), want (5, -5)", dx, dy)
	}
	if s.Wheel() != 2 {
		t.Errorf("Wheel = %v, want 2", s.Wheel())
	}

	s.BeginFrame()
	if dx, dy := s.MouseDelta(); dx != 0 || dy != 0 || s.Wheel() != 0 {
		t.Error("per-frame motion should reset")
	}
}

func TestMouseButtons(t *testing.T) {
	s := New()
	s.Apply(Event{Type: EventMouseDown, Button: ButtonRight})
	if !s.ButtonHeld(ButtonRight) {
		t.Error("right button should be held")
	}
	s.Apply(Event{Type: EventMouseUp, Button: ButtonRight})
	if s.ButtonHeld(ButtonRight) {
		t.Error("right button should be released")
	}
	s.Apply(Event{Type: EventMouseDown, Button: 200})
	if s.ButtonHeld(200) || s.ButtonPressed(200) {
		t.Error("out of range button should be ignored")
	}
}

func TestButtonPressedOncePerClick(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Apply(Event{Type: EventMouseDown, Button: ButtonLeft})
	if !s.ButtonPressed(ButtonLeft) {
		t.Error("left button should be pressed on the frame it went down")
	}

	s.BeginFrame()
	if s.ButtonPressed(ButtonLeft) || !s.ButtonHeld(ButtonLeft) {
		t.Error("held button should not count as pressed on later frames")
	}

	s.Apply(Event{Type: EventMouseUp, Button: ButtonLeft})
	s.Apply(Event{Type: EventMouseDown, Button: ButtonLeft})
	if !s.ButtonPressed(ButtonLeft) {
		t.Error("second click should be pressed")
	}
}

func TestQuitAndResize(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Apply(Event{Type: EventWindowResize, Width: 800, Height: 600})

	w, h, ok := s.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized = (%d, %d, %v)", w, h, ok)
	}

	s.BeginFrame()
	if _, _, ok := s.Resized(); ok {
		t.Error("resize should be reported once")
	}

	s.Apply(Event{Type: EventQuit})
	s.BeginFrame()
	if !s.QuitRequested() {
		t.Error("quit should persist across frames")
	}
}

func TestKeyDigit(t *testing.T) {
	tests := []struct {
		key  Key
		want int
	}{
		{Key1, 1},
		{Key5, 5},
		{Key9, 9},
		{KeyW, 0},
	}
	for _, tt := range tests {
		if got := tt.key.Digit(); got != tt.want {
			t.Errorf("Key(%d).Digit() = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestDebouncer(t *testing.T) {
	d := Debouncer{Interval: 200 * time.Millisecond}
	start := time.Unix(1000, 0)

	if !d.Allow(start) {
		t.Fatal("first call should be allowed")
	}
	if d.Allow(start.Add(100 * time.Millisecond)) {
		t.Error("call within the interval should be blocked")
	}
	if !d.Allow(start.Add(250 * time.Millisecond)) {
		t.Error("call after the interval should be allowed")
	}
}
