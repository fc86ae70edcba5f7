// Package tcelldriver adapts tcell terminal events to rebind raw input
// events, so a tcell application can feed a rebind Translator directly.
//
// Terminals report key presses only, never key releases, so keyboard events
// translate to press events alone; an application that needs release edges
// for keyboard actions must synthesize them itself. Mouse reporting carries
// the full button state on every event, which the driver diffs against the
// previous state to produce press and release edges, motion, and scroll.
package tcelldriver

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind"
	"github.com/dshills/rebind/button"
)

// buttonMasks pairs each tcell button bit with its rebind identity, in
// reporting order.
var buttonMasks = []struct {
	mask tcell.ButtonMask
	btn  button.MouseButton
}{
	{tcell.ButtonPrimary, button.MouseLeft},
	{tcell.ButtonMiddle, button.MouseMiddle},
	{tcell.ButtonSecondary, button.MouseRight},
	{tcell.Button4, button.MouseBack},
	{tcell.Button5, button.MouseForward},
}

// Driver converts tcell events into rebind raw events. It tracks the last
// reported mouse button state and cursor position, so it must be fed every
// mouse event from a single event loop.
type Driver struct {
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
	moved   bool
}

// New creates a Driver with no buttons down.
func New() *Driver {
	return &Driver{}
}

// Translate converts one tcell event into zero or more rebind raw events.
// A single tcell mouse event can report a button change and cursor motion
// at once, so the result is a slice; feed its elements to the Translator in
// order. Events the driver does not understand, including resizes, produce
// an empty result.
func (d *Driver) Translate(ev tcell.Event) []rebind.Event {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return d.translateKey(tev)
	case *tcell.EventMouse:
		return d.translateMouse(tev)
	default:
		return nil
	}
}

// Reset clears the tracked mouse state, for use after the screen is
// suspended or mouse reporting is toggled.
func (d *Driver) Reset() {
	d.buttons = tcell.ButtonNone
	d.moved = false
}

func (d *Driver) translateKey(ev *tcell.EventKey) []rebind.Event {
	k := keyOf(ev)
	if k == button.KeyNone {
		return nil
	}
	return []rebind.Event{rebind.PressEvent(button.Keyboard(k))}
}

func (d *Driver) translateMouse(ev *tcell.EventMouse) []rebind.Event {
	var out []rebind.Event

	x, y := ev.Position()
	if !d.moved || x != d.lastX || y != d.lastY {
		out = append(out, rebind.MoveEvent(float64(x), float64(y)))
		d.lastX, d.lastY = x, y
		d.moved = true
	}

	cur := ev.Buttons()
	for _, bm := range buttonMasks {
		was := d.buttons&bm.mask != 0
		now := cur&bm.mask != 0
		switch {
		case now && !was:
			out = append(out, rebind.PressEvent(button.Mouse(bm.btn)))
		case was && !now:
			out = append(out, rebind.ReleaseEvent(button.Mouse(bm.btn)))
		}
	}
	d.buttons = cur &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	if dx, dy := wheelOf(cur); dx != 0 || dy != 0 {
		out = append(out, rebind.ScrollEvent(dx, dy))
	}

	return out
}

// wheelOf maps wheel bits to scroll deltas, positive y scrolling up.
func wheelOf(mask tcell.ButtonMask) (float64, float64) {
	var dx, dy float64
	if mask&tcell.WheelUp != 0 {
		dy++
	}
	if mask&tcell.WheelDown != 0 {
		dy--
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	return dx, dy
}
