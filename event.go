package rebind

import "github.com/dshills/rebind/button"

// EventKind discriminates the variants of a raw input Event.
type EventKind uint8

const (
	// EventNone is the zero value; translating it is a no-op.
	EventNone EventKind = iota
	// EventPress is a key or mouse button going down.
	EventPress
	// EventRelease is a key or mouse button coming up.
	EventRelease
	// EventMove is cursor motion in window coordinates.
	EventMove
	// EventScroll is scroll wheel movement.
	EventScroll
)

// String returns a string representation of the kind.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventMove:
		return "move"
	case EventScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Event is a raw input event as delivered by the application's windowing or
// terminal layer. Button is meaningful for EventPress and EventRelease; X
// and Y are meaningful for EventMove (window coordinates) and EventScroll
// (wheel deltas, positive Y scrolling up).
type Event struct {
	Kind   EventKind
	Button button.Button
	X, Y   float64
}

// PressEvent returns a raw press event for the given button.
func PressEvent(b button.Button) Event {
	return Event{Kind: EventPress, Button: b}
}

// ReleaseEvent returns a raw release event for the given button.
func ReleaseEvent(b button.Button) Event {
	return Event{Kind: EventRelease, Button: b}
}

// MoveEvent returns a raw cursor motion event at the given window
// coordinates.
func MoveEvent(x, y float64) Event {
	return Event{Kind: EventMove, X: x, Y: y}
}

// ScrollEvent returns a raw scroll event with the given wheel deltas.
func ScrollEvent(dx, dy float64) Event {
	return Event{Kind: EventScroll, X: dx, Y: dy}
}
