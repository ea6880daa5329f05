package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-ui/internal/ui/input"
)

// scancodes maps SDL (USB HID) scan codes to toolkit keys.
var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE:    input.KeyEscape,
	sdl.SCANCODE_1:         input.Key1,
	sdl.SCANCODE_2:         input.Key2,
	sdl.SCANCODE_3:         input.Key3,
	sdl.SCANCODE_4:         input.Key4,
	sdl.SCANCODE_5:         input.Key5,
	sdl.SCANCODE_6:         input.Key6,
	sdl.SCANCODE_7:         input.Key7,
	sdl.SCANCODE_8:         input.Key8,
	sdl.SCANCODE_9:         input.Key9,
	sdl.SCANCODE_0:         input.Key0,
	sdl.SCANCODE_MINUS:     input.KeyMinus,
	sdl.SCANCODE_EQUALS:    input.KeyEquals,
	sdl.SCANCODE_BACKSPACE: input.KeyBackspace,
	sdl.SCANCODE_TAB:       input.KeyTab,

	sdl.SCANCODE_Q: input.KeyQ,
	sdl.SCANCODE_W: input.KeyW,
	sdl.SCANCODE_E: input.KeyE,
	sdl.SCANCODE_R: input.KeyR,
	sdl.SCANCODE_T: input.KeyT,
	sdl.SCANCODE_Y: input.KeyY,
	sdl.SCANCODE_U: input.KeyU,
	sdl.SCANCODE_I: input.KeyI,
	sdl.SCANCODE_O: input.KeyO,
	sdl.SCANCODE_P: input.KeyP,
	sdl.SCANCODE_A: input.KeyA,
	sdl.SCANCODE_S: input.KeyS,
	sdl.SCANCODE_D: input.KeyD,
	sdl.SCANCODE_F: input.KeyF,
	sdl.SCANCODE_G: input.KeyG,
	sdl.SCANCODE_H: input.KeyH,
	sdl.SCANCODE_J: input.KeyJ,
	sdl.SCANCODE_K: input.KeyK,
	sdl.SCANCODE_L: input.KeyL,
	sdl.SCANCODE_Z: input.KeyZ,
	sdl.SCANCODE_X: input.KeyX,
	sdl.SCANCODE_C: input.KeyC,
	sdl.SCANCODE_V: input.KeyV,
	sdl.SCANCODE_B: input.KeyB,
	sdl.SCANCODE_N: input.KeyN,
	sdl.SCANCODE_M: input.KeyM,

	sdl.SCANCODE_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET: input.KeyRightBracket,
	sdl.SCANCODE_RETURN:       input.KeyEnter,
	sdl.SCANCODE_SEMICOLON:    input.KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:   input.KeyApostrophe,
	sdl.SCANCODE_GRAVE:        input.KeyGrave,
	sdl.SCANCODE_BACKSLASH:    input.KeyBackslash,
	sdl.SCANCODE_COMMA:        input.KeyComma,
	sdl.SCANCODE_PERIOD:       input.KeyPeriod,
	sdl.SCANCODE_SLASH:        input.KeySlash,
	sdl.SCANCODE_SPACE:        input.KeySpace,
	sdl.SCANCODE_CAPSLOCK:     input.KeyCapsLock,

	sdl.SCANCODE_LSHIFT: input.KeyLeftShift,
	sdl.SCANCODE_RSHIFT: input.KeyRightShift,
	sdl.SCANCODE_LCTRL:  input.KeyLeftControl,
	sdl.SCANCODE_RCTRL:  input.KeyRightControl,
	sdl.SCANCODE_LALT:   input.KeyLeftAlt,
	sdl.SCANCODE_RALT:   input.KeyRightAlt,

	sdl.SCANCODE_F1:  input.KeyF1,
	sdl.SCANCODE_F2:  input.KeyF2,
	sdl.SCANCODE_F3:  input.KeyF3,
	sdl.SCANCODE_F4:  input.KeyF4,
	sdl.SCANCODE_F5:  input.KeyF5,
	sdl.SCANCODE_F6:  input.KeyF6,
	sdl.SCANCODE_F7:  input.KeyF7,
	sdl.SCANCODE_F8:  input.KeyF8,
	sdl.SCANCODE_F9:  input.KeyF9,
	sdl.SCANCODE_F10: input.KeyF10,
	sdl.SCANCODE_F11: input.KeyF11,
	sdl.SCANCODE_F12: input.KeyF12,

	sdl.SCANCODE_KP_ENTER: input.KeyNumpadEnter,
	sdl.SCANCODE_HOME:     input.KeyHome,
	sdl.SCANCODE_UP:       input.KeyUp,
	sdl.SCANCODE_PAGEUP:   input.KeyPageUp,
	sdl.SCANCODE_LEFT:     input.KeyLeft,
	sdl.SCANCODE_RIGHT:    input.KeyRight,
	sdl.SCANCODE_END:      input.KeyEnd,
	sdl.SCANCODE_DOWN:     input.KeyDown,
	sdl.SCANCODE_PAGEDOWN: input.KeyPageDown,
	sdl.SCANCODE_INSERT:   input.KeyInsert,
	sdl.SCANCODE_DELETE:   input.KeyDelete,
}

// Translate returns the toolkit key for an SDL scan code.
func Translate(sc sdl.Scancode) (input.Key, bool) {
	k, ok := scancodes[sc]
	return k, ok
}
