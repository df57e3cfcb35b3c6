package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orrery/internal/engine/input"
)

var keymap = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:            input.KeyW,
	sdl.SCANCODE_A:            input.KeyA,
	sdl.SCANCODE_S:            input.KeyS,
	sdl.SCANCODE_D:            input.KeyD,
	sdl.SCANCODE_Q:            input.KeyQ,
	sdl.SCANCODE_E:            input.KeyE,
	sdl.SCANCODE_UP:           input.KeyUp,
	sdl.SCANCODE_DOWN:         input.KeyDown,
	sdl.SCANCODE_LEFT:         input.KeyLeft,
	sdl.SCANCODE_RIGHT:        input.KeyRight,
	sdl.SCANCODE_SPACE:        input.KeySpace,
	sdl.SCANCODE_LSHIFT:       input.KeyShift,
	sdl.SCANCODE_RSHIFT:       input.KeyShift,
	sdl.SCANCODE_RETURN:       input.KeyEnter,
	sdl.SCANCODE_KP_ENTER:     input.KeyEnter,
	sdl.SCANCODE_TAB:          input.KeyTab,
	sdl.SCANCODE_ESCAPE:       input.KeyEscape,
	sdl.SCANCODE_M:            input.KeyM,
	sdl.SCANCODE_EQUALS:       input.KeyPlus,
	sdl.SCANCODE_KP_PLUS:      input.KeyPlus,
	sdl.SCANCODE_MINUS:        input.KeyMinus,
	sdl.SCANCODE_KP_MINUS:     input.KeyMinus,
	sdl.SCANCODE_1:            input.Key1,
	sdl.SCANCODE_2:            input.Key2,
	sdl.SCANCODE_3:            input.Key3,
	sdl.SCANCODE_4:            input.Key4,
	sdl.SCANCODE_5:            input.Key5,
	sdl.SCANCODE_6:            input.Key6,
	sdl.SCANCODE_7:            input.Key7,
	sdl.SCANCODE_8:            input.Key8,
	sdl.SCANCODE_9:            input.Key9,
	sdl.SCANCODE_F12:          input.KeyF12,
	sdl.SCANCODE_P:            input.KeyP,
	sdl.SCANCODE_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRightBracket,
	sdl.SCANCODE_BACKSPACE:    input.KeyBackspace,
}

// PollEvents drains the SDL queue into s. Resize events carry the
// drawable size in pixels. Mouse Y motion is flipped so positive is up.
func (w *Window) PollEvents(s *input.State) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Apply(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				dw, dh := w.DrawableSize()
				s.Apply(input.Event{Type: input.EventWindowResize, Width: dw, Height: dh})
			}

		case *sdl.KeyboardEvent:
			key, ok := keymap[e.Keysym.Scancode]
			if !ok {
				continue
			}
			typ := input.EventKeyDown
			if e.Type == sdl.KEYUP {
				typ = input.EventKeyUp
			}
			s.Apply(input.Event{Type: typ, Key: key, Repeat: e.Repeat != 0})

		case *sdl.MouseMotionEvent:
			s.Apply(input.Event{
				Type: input.EventMouseMove,
				DX:   float32(e.XRel),
				DY:   -float32(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			typ := input.EventMouseUp
			if e.Type == sdl.MOUSEBUTTONDOWN {
				typ = input.EventMouseDown
			}
			s.Apply(input.Event{Type: typ, Button: e.Button})

		case *sdl.MouseWheelEvent:
			s.Apply(input.Event{Type: input.EventWheel, DY: float32(e.Y)})
		}
	}
}
