package input

// Key names a keyboard scan code. Values follow the PC set-1 scan codes
// (extended keys carry 0x80).
type Key int

const (
	KeyNone         Key = 0
	KeyEscape       Key = 1
	Key1            Key = 2
	Key2            Key = 3
	Key3            Key = 4
	Key4            Key = 5
	Key5            Key = 6
	Key6            Key = 7
	Key7            Key = 8
	Key8            Key = 9
	Key9            Key = 10
	Key0            Key = 11
	KeyMinus        Key = 12
	KeyEquals       Key = 13
	KeyBackspace    Key = 14
	KeyTab          Key = 15
	KeyQ            Key = 16
	KeyW            Key = 17
	KeyE            Key = 18
	KeyR            Key = 19
	KeyT            Key = 20
	KeyY            Key = 21
	KeyU            Key = 22
	KeyI            Key = 23
	KeyO            Key = 24
	KeyP            Key = 25
	KeyLeftBracket  Key = 26
	KeyRightBracket Key = 27
	KeyEnter        Key = 28
	KeyLeftControl  Key = 29
	KeyA            Key = 30
	KeyS            Key = 31
	KeyD            Key = 32
	KeyF            Key = 33
	KeyG            Key = 34
	KeyH            Key = 35
	KeyJ            Key = 36
	KeyK            Key = 37
	KeyL            Key = 38
	KeySemicolon    Key = 39
	KeyApostrophe   Key = 40
	KeyGrave        Key = 41
	KeyLeftShift    Key = 42
	KeyBackslash    Key = 43
	KeyZ            Key = 44
	KeyX            Key = 45
	KeyC            Key = 46
	KeyV            Key = 47
	KeyB            Key = 48
	KeyN            Key = 49
	KeyM            Key = 50
	KeyComma        Key = 51
	KeyPeriod       Key = 52
	KeySlash        Key = 53
	KeyRightShift   Key = 54
	KeyLeftAlt      Key = 56
	KeySpace        Key = 57
	KeyCapsLock     Key = 58
	KeyF1           Key = 59
	KeyF2           Key = 60
	KeyF3           Key = 61
	KeyF4           Key = 62
	KeyF5           Key = 63
	KeyF6           Key = 64
	KeyF7           Key = 65
	KeyF8           Key = 66
	KeyF9           Key = 67
	KeyF10          Key = 68
	KeyF11          Key = 87
	KeyF12          Key = 88

	KeyNumpadEnter  Key = 156
	KeyRightControl Key = 157
	KeyRightAlt     Key = 184
	KeyHome         Key = 199
	KeyUp           Key = 200
	KeyPageUp       Key = 201
	KeyLeft         Key = 203
	KeyRight        Key = 205
	KeyEnd          Key = 207
	KeyDown         Key = 208
	KeyPageDown     Key = 209
	KeyInsert       Key = 210
	KeyDelete       Key = 211
)

// IsShift reports whether k is either shift key.
func (k Key) IsShift() bool { return k == KeyLeftShift || k == KeyRightShift }

// IsAlt reports whether k is either alt key.
func (k Key) IsAlt() bool { return k == KeyLeftAlt || k == KeyRightAlt }

// IsControl reports whether k is either control key.
func (k Key) IsControl() bool { return k == KeyLeftControl || k == KeyRightControl }

// KeyData is one raw key sample for the current frame.
type KeyData struct {
	Scancode int
	Char     rune
	HasChar  bool
	Pressed  bool
	Released bool
}

// Key returns the scan code as a named Key.
func (k KeyData) Key() Key {
	return Key(k.Scancode)
}
