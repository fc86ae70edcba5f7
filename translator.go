package rebind

import (
	"maps"

	"github.com/dshills/rebind/button"
)

// Translator is the runtime translation engine. It consumes raw input
// events one at a time and produces at most one Translated value per event,
// tracking a per-action up/down state so that only press and release edges
// are reported.
//
// The binding table and mouse settings are frozen at construction. The
// press state and last cursor position are the only mutable state; see the
// package documentation for the concurrency contract.
type Translator[A Action] struct {
	keymap  map[button.Button]A
	mouse   mouseTranslator
	pressed map[A]bool
}

// Translate resolves a single raw event. The second return value is false
// when the event produced no translation: an unbound input, a press for an
// action that is already down (auto-repeat suppression), a release for an
// action that is already up, or an event kind the engine does not handle.
// Translate never fails; absence of a mapping is a normal outcome.
func (t *Translator[A]) Translate(ev Event) (Translated[A], bool) {
	switch ev.Kind {
	case EventPress:
		act, ok := t.keymap[ev.Button]
		if !ok || t.pressed[act] {
			return Translated[A]{}, false
		}
		t.pressed[act] = true
		return press(act), true

	case EventRelease:
		act, ok := t.keymap[ev.Button]
		if !ok || !t.pressed[act] {
			return Translated[A]{}, false
		}
		t.pressed[act] = false
		return release(act), true

	case EventMove:
		x, y := t.mouse.move(ev.X, ev.Y)
		return motion[A](x, y), true

	case EventScroll:
		dx, dy := t.mouse.scroll(ev.X, ev.Y)
		return scroll[A](dx, dy), true

	default:
		return Translated[A]{}, false
	}
}

// SetSize replaces the viewport extents used for mouse translation, for use
// after a window resize. Non-positive dimensions are ignored.
func (t *Translator[A]) SetSize(width, height int) {
	t.mouse.setSize(Size{Width: width, Height: height})
}

// Pressed reports whether the action is currently down.
func (t *Translator[A]) Pressed(a A) bool {
	return t.pressed[a]
}

// MouseMode returns the configured mouse interpretation mode.
func (t *Translator[A]) MouseMode() MouseMode {
	return t.mouse.settings.mode
}

// ViewportSize returns the current viewport extents.
func (t *Translator[A]) ViewportSize() Size {
	return t.mouse.settings.viewport
}

// Bindings returns a copy of the binding table.
func (t *Translator[A]) Bindings() map[button.Button]A {
	return maps.Clone(t.keymap)
}

// IntoRebind converts the Translator's frozen configuration into a Rebind
// for introspection or reconfiguration. The Translator remains usable; the
// Rebind is an independent copy.
func (t *Translator[A]) IntoRebind() *Rebind[A] {
	r := &Rebind[A]{
		actions: make(map[A]ButtonSet),
		mouse:   t.mouse.settings,
	}
	for _, in := range sortedButtons(t.keymap) {
		act := t.keymap[in]
		set := r.actions[act]
		set.Insert(in)
		r.actions[act] = set
	}
	return r
}
