package button

import "cmp"

// Source identifies the device a Button belongs to.
type Source uint8

const (
	// SourceNone indicates the zero Button.
	SourceNone Source = iota
	// SourceKeyboard indicates a keyboard key.
	SourceKeyboard
	// SourceMouse indicates a mouse button.
	SourceMouse
)

// String returns a string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	default:
		return "none"
	}
}

// Button is a physical input identifier: either a keyboard key or a mouse
// button. It is comparable and can be used directly as a map key. The zero
// Button identifies no input and never matches a real key or button.
type Button struct {
	src   Source
	key   Key
	mouse MouseButton
}

// Keyboard returns the Button identifying a keyboard key.
func Keyboard(k Key) Button {
	return Button{src: SourceKeyboard, key: k}
}

// Mouse returns the Button identifying a mouse button.
func Mouse(b MouseButton) Button {
	return Button{src: SourceMouse, mouse: b}
}

// Source reports which device the button belongs to.
func (b Button) Source() Source {
	return b.src
}

// Key returns the keyboard key and true if this is a keyboard button.
func (b Button) Key() (Key, bool) {
	return b.key, b.src == SourceKeyboard
}

// MouseButton returns the mouse button and true if this is a mouse button.
func (b Button) MouseButton() (MouseButton, bool) {
	return b.mouse, b.src == SourceMouse
}

// IsZero returns true if the button identifies no input.
func (b Button) IsZero() bool {
	return b.src == SourceNone
}

// String returns a human-readable representation such as "key:W" or
// "mouse:left".
func (b Button) String() string {
	switch b.src {
	case SourceKeyboard:
		return "key:" + b.key.String()
	case SourceMouse:
		return "mouse:" + b.mouse.String()
	default:
		return "none"
	}
}

// Compare orders two buttons: keyboard before mouse, then by code. It
// returns -1, 0, or 1 like the functions in package cmp, making Button
// usable with slices.SortFunc for deterministic listings.
func Compare(a, b Button) int {
	if c := cmp.Compare(a.src, b.src); c != 0 {
		return c
	}
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.mouse, b.mouse)
}
