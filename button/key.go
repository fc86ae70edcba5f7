package button

import (
	"fmt"
	"strings"
	"unicode"
)

// Key represents a keyboard key.
//
// Printable keys use their upper-case ASCII code as their value, so KeyA is
// 65 and Key0 is 48. Special keys start at 256 and never collide with the
// printable range.
type Key uint16

// Printable keys. Values match the upper-case ASCII code of the key's
// unshifted character.
const (
	// KeyNone represents no key.
	KeyNone Key = 0

	KeySpace        Key = 32
	KeyApostrophe   Key = 39 /* ' */
	KeyComma        Key = 44 /* , */
	KeyMinus        Key = 45 /* - */
	KeyPeriod       Key = 46 /* . */
	KeySlash        Key = 47 /* / */
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59 /* ; */
	KeyEqual        Key = 61 /* = */
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91 /* [ */
	KeyBackslash    Key = 92 /* \ */
	KeyRightBracket Key = 93 /* ] */
	KeyGrave        Key = 96 /* ` */
)

// Special (non-printable) keys.
const (
	KeyEscape Key = iota + 256
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPDecimal
	KeyKPDivide
	KeyKPMultiply
	KeyKPSubtract
	KeyKPAdd
	KeyKPEnter
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyRightShift
	KeyRightControl
	KeyRightAlt
)

// specialKeyNames maps special keys to their canonical names.
var specialKeyNames = map[Key]string{
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyKP0:          "KP0",
	KeyKP1:          "KP1",
	KeyKP2:          "KP2",
	KeyKP3:          "KP3",
	KeyKP4:          "KP4",
	KeyKP5:          "KP5",
	KeyKP6:          "KP6",
	KeyKP7:          "KP7",
	KeyKP8:          "KP8",
	KeyKP9:          "KP9",
	KeyKPDecimal:    "KP.",
	KeyKPDivide:     "KP/",
	KeyKPMultiply:   "KP*",
	KeyKPSubtract:   "KP-",
	KeyKPAdd:        "KP+",
	KeyKPEnter:      "KPEnter",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
}

// keyNameAliases maps additional accepted names (lowercase) to keys.
var keyNameAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"cr":     KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
	"ins":    KeyInsert,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
	"space":  KeySpace,
	"spc":    KeySpace,
}

// keyNameMap is the reverse of specialKeyNames plus the aliases, keyed by
// lowercase name. Populated at init.
var keyNameMap = map[string]Key{}

func init() {
	for k, name := range specialKeyNames {
		keyNameMap[strings.ToLower(name)] = k
	}
	for name, k := range keyNameAliases {
		keyNameMap[name] = k
	}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	switch {
	case k == KeyNone:
		return "None"
	case k == KeySpace:
		return "Space"
	case k.IsPrintable():
		return string(rune(k))
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// IsPrintable returns true if the key corresponds to a printable character.
func (k Key) IsPrintable() bool {
	return k >= KeySpace && k <= KeyGrave
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyRight && k <= KeyUp
}

// IsKeypadKey returns true if this is a keypad key.
func (k Key) IsKeypadKey() bool {
	return k >= KeyKP0 && k <= KeyKPEnter
}

// KeyFromRune returns the Key for a character, or KeyNone if the character
// has no corresponding key. Letters are folded to their key regardless of
// case, so both 'w' and 'W' resolve to KeyW. Shifted punctuation such as '!'
// has no key of its own and resolves to KeyNone.
func KeyFromRune(r rune) Key {
	r = unicode.ToUpper(r)
	if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
		return Key(r)
	}
	switch r {
	case ' ':
		return KeySpace
	case '\'', ',', '-', '.', '/', ';', '=', '[', '\\', ']', '`':
		return Key(r)
	}
	return KeyNone
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Single-character names resolve through KeyFromRune. Returns KeyNone if the
// name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	if len(name) == 1 {
		return KeyFromRune(rune(name[0]))
	}
	return KeyNone
}
