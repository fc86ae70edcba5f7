package rebind

import (
	"slices"

	"github.com/dshills/rebind/button"
)

// ButtonSetCap is the maximum number of physical inputs that may be bound
// to a single action through a Rebind.
const ButtonSetCap = 3

// ButtonSet holds up to three physical inputs bound to one action. The zero
// value is an empty set.
type ButtonSet struct {
	buttons [ButtonSetCap]button.Button
}

// NewButtonSet creates a set from the given buttons. Zero buttons and
// buttons beyond the capacity are dropped.
func NewButtonSet(btns ...button.Button) ButtonSet {
	var s ButtonSet
	for _, b := range btns {
		s.Insert(b)
	}
	return s
}

// Contains reports whether the button is in the set.
func (s ButtonSet) Contains(b button.Button) bool {
	if b.IsZero() {
		return false
	}
	for _, have := range s.buttons {
		if have == b {
			return true
		}
	}
	return false
}

// Insert adds the button to the first free slot, searching left to right.
// It returns false if the set is full, the button is the zero Button, or
// the button is already present.
func (s *ButtonSet) Insert(b button.Button) bool {
	if b.IsZero() || s.Contains(b) {
		return false
	}
	for i, have := range s.buttons {
		if have.IsZero() {
			s.buttons[i] = b
			return true
		}
	}
	return false
}

// Buttons returns the non-zero buttons in slot order.
func (s ButtonSet) Buttons() []button.Button {
	out := make([]button.Button, 0, ButtonSetCap)
	for _, b := range s.buttons {
		if !b.IsZero() {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of buttons in the set.
func (s ButtonSet) Len() int {
	n := 0
	for _, b := range s.buttons {
		if !b.IsZero() {
			n++
		}
	}
	return n
}

// Rebind is the stateless introspection role: a view of the current
// bindings organized by action rather than by input. It tracks no press
// state and translates nothing; it exists for querying and editing a
// configuration, and converts freely to and from a Translator.
type Rebind[A Action] struct {
	actions map[A]ButtonSet
	mouse   mouseSettings
}

// NewRebind creates an empty Rebind with the given viewport dimensions.
func NewRebind[A Action](width, height int) *Rebind[A] {
	return &Rebind[A]{
		actions: make(map[A]ButtonSet),
		mouse: mouseSettings{
			viewport: Size{Width: width, Height: height},
		},
	}
}

// InsertAction registers an action with an empty ButtonSet, replacing any
// existing set. The previous set and whether one existed are returned.
func (r *Rebind[A]) InsertAction(a A) (ButtonSet, bool) {
	prev, ok := r.actions[a]
	r.actions[a] = ButtonSet{}
	return prev, ok
}

// InsertActionWithButtons registers an action with the given ButtonSet,
// replacing any existing set. The previous set and whether one existed are
// returned.
func (r *Rebind[A]) InsertActionWithButtons(a A, set ButtonSet) (ButtonSet, bool) {
	prev, ok := r.actions[a]
	r.actions[a] = set
	return prev, ok
}

// BindingsFor returns the ButtonSet for an action and whether the action is
// registered.
func (r *Rebind[A]) BindingsFor(a A) (ButtonSet, bool) {
	set, ok := r.actions[a]
	return set, ok
}

// Actions returns the registered actions in sorted order.
func (r *Rebind[A]) Actions() []A {
	out := make([]A, 0, len(r.actions))
	for a := range r.actions {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// MouseMode returns the configured mouse interpretation mode.
func (r *Rebind[A]) MouseMode() MouseMode {
	return r.mouse.mode
}

// SetMouseMode replaces the mouse interpretation mode.
func (r *Rebind[A]) SetMouseMode(mode MouseMode) {
	r.mouse.mode = mode
}

// ViewportSize returns the viewport extents.
func (r *Rebind[A]) ViewportSize() Size {
	return r.mouse.viewport
}

// SetViewportSize replaces the viewport extents. Non-positive dimensions
// are rejected with ErrInvalidSize.
func (r *Rebind[A]) SetViewportSize(width, height int) error {
	s := Size{Width: width, Height: height}
	if !s.valid() {
		return ErrInvalidSize
	}
	r.mouse.viewport = s
	return nil
}

// IntoTranslator converts the Rebind's configuration into a Translator with
// all actions up. The Rebind remains usable; the Translator is an
// independent copy. Actions are applied in sorted order, so if two actions
// claim the same button the higher action keeps it.
func (r *Rebind[A]) IntoTranslator() *Translator[A] {
	t := &Translator[A]{
		keymap:  make(map[button.Button]A),
		mouse:   newMouseTranslator(r.mouse),
		pressed: make(map[A]bool),
	}
	for _, a := range r.Actions() {
		for _, in := range r.actions[a].Buttons() {
			t.keymap[in] = a
		}
	}
	return t
}

// sortedButtons returns the keys of a binding table in Compare order, so
// conversions and listings are deterministic.
func sortedButtons[A Action](keymap map[button.Button]A) []button.Button {
	out := make([]button.Button, 0, len(keymap))
	for in := range keymap {
		out = append(out, in)
	}
	slices.SortFunc(out, button.Compare)
	return out
}
