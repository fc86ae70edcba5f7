package rebind

import (
	"testing"

	"github.com/dshills/rebind/button"
)

type testAction int

const (
	actionUp testAction = iota + 1
	actionDown
	actionLeft
	actionRight
	actionJump
)

// newTestBuilder pre-populates a builder with the standard WASD/arrow
// movement bindings used across the tests.
func newTestBuilder() *Builder[testAction] {
	return NewDefaultBuilder[testAction]().
		WithActionMapping(button.Keyboard(button.KeyUp), actionUp).
		WithActionMapping(button.Keyboard(button.KeyW), actionUp).
		WithActionMapping(button.Keyboard(button.KeyDown), actionDown).
		WithActionMapping(button.Keyboard(button.KeyS), actionDown).
		WithActionMapping(button.Keyboard(button.KeyLeft), actionLeft).
		WithActionMapping(button.Keyboard(button.KeyA), actionLeft).
		WithActionMapping(button.Keyboard(button.KeyRight), actionRight).
		WithActionMapping(button.Keyboard(button.KeyD), actionRight)
}

func newTestTranslator(t *testing.T) *Translator[testAction] {
	t.Helper()
	tr, err := newTestBuilder().BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}
	return tr
}

func mustPress(t *testing.T, tr *Translator[testAction], b button.Button, want testAction) {
	t.Helper()
	out, ok := tr.Translate(PressEvent(b))
	if !ok {
		t.Fatalf("Translate(press %s) produced nothing, want Press(%d)", b, want)
	}
	if out.Kind != TranslatedPress || out.Action != want {
		t.Fatalf("Translate(press %s) = %s(%d), want press(%d)", b, out.Kind, out.Action, want)
	}
}

func mustRelease(t *testing.T, tr *Translator[testAction], b button.Button, want testAction) {
	t.Helper()
	out, ok := tr.Translate(ReleaseEvent(b))
	if !ok {
		t.Fatalf("Translate(release %s) produced nothing, want Release(%d)", b, want)
	}
	if out.Kind != TranslatedRelease || out.Action != want {
		t.Fatalf("Translate(release %s) = %s(%d), want release(%d)", b, out.Kind, out.Action, want)
	}
}

func mustSilent(t *testing.T, tr *Translator[testAction], ev Event) {
	t.Helper()
	if out, ok := tr.Translate(ev); ok {
		t.Fatalf("Translate(%s) = %s(%d), want nothing", ev.Kind, out.Kind, out.Action)
	}
}

func TestTranslatePress(t *testing.T) {
	tr := newTestTranslator(t)

	mustPress(t, tr, button.Keyboard(button.KeyDown), actionDown)
	mustPress(t, tr, button.Keyboard(button.KeyD), actionRight)
	mustPress(t, tr, button.Keyboard(button.KeyLeft), actionLeft)
	mustPress(t, tr, button.Keyboard(button.KeyW), actionUp)
}

func TestRepeatPressSuppressed(t *testing.T) {
	tr := newTestTranslator(t)
	w := button.Keyboard(button.KeyW)

	mustPress(t, tr, w, actionUp)
	// Auto-repeat duplicates report nothing; only the rising edge counts.
	mustSilent(t, tr, PressEvent(w))
	mustSilent(t, tr, PressEvent(w))

	mustRelease(t, tr, w, actionUp)
	mustPress(t, tr, w, actionUp)
}

func TestSpuriousReleaseIgnored(t *testing.T) {
	tr := newTestTranslator(t)
	s := button.Keyboard(button.KeyS)

	mustSilent(t, tr, ReleaseEvent(s))

	mustPress(t, tr, s, actionDown)
	mustRelease(t, tr, s, actionDown)
	mustSilent(t, tr, ReleaseEvent(s))
}

func TestUnboundInputNeutral(t *testing.T) {
	tr := newTestTranslator(t)
	x := button.Keyboard(button.KeyX)

	mustSilent(t, tr, PressEvent(x))
	mustSilent(t, tr, ReleaseEvent(x))

	// An unbound press must not disturb the state of bound actions.
	mustPress(t, tr, button.Keyboard(button.KeyW), actionUp)
	mustSilent(t, tr, PressEvent(x))
	if !tr.Pressed(actionUp) {
		t.Error("actionUp up after unbound press, want still down")
	}
}

func TestManyToOneBinding(t *testing.T) {
	tr := newTestTranslator(t)
	w := button.Keyboard(button.KeyW)
	up := button.Keyboard(button.KeyUp)

	// Both keys bound to actionUp: second press is silent, the action is
	// already down.
	mustPress(t, tr, w, actionUp)
	mustSilent(t, tr, PressEvent(up))

	// Releasing either drops the action; releasing the other is silent.
	mustRelease(t, tr, up, actionUp)
	mustSilent(t, tr, ReleaseEvent(w))

	mustPress(t, tr, up, actionUp)
}

func TestRebindingOverwrites(t *testing.T) {
	k := button.Keyboard(button.KeyE)

	tr, err := NewDefaultBuilder[testAction]().
		WithActionMapping(k, actionUp).
		WithActionMapping(k, actionJump).
		BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	mustPress(t, tr, k, actionJump)
}

func TestReleaseNeverExceedsPress(t *testing.T) {
	tr := newTestTranslator(t)
	w := button.Keyboard(button.KeyW)
	up := button.Keyboard(button.KeyUp)

	events := []Event{
		PressEvent(w), PressEvent(w), PressEvent(up),
		ReleaseEvent(w), ReleaseEvent(up), ReleaseEvent(w),
		PressEvent(up), ReleaseEvent(up), ReleaseEvent(up),
	}

	presses, releases := 0, 0
	for _, ev := range events {
		out, ok := tr.Translate(ev)
		if !ok {
			continue
		}
		switch out.Kind {
		case TranslatedPress:
			presses++
		case TranslatedRelease:
			releases++
		}
		if releases > presses {
			t.Fatalf("releases (%d) exceed presses (%d) mid-sequence", releases, presses)
		}
	}

	if presses != 2 || releases != 2 {
		t.Errorf("press/release counts = %d/%d, want 2/2", presses, releases)
	}
}

func TestMouseButtonsTranslate(t *testing.T) {
	fire := button.Mouse(button.MouseLeft)

	tr, err := NewDefaultBuilder[testAction]().
		WithActionMapping(fire, actionJump).
		BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	mustPress(t, tr, fire, actionJump)
	mustSilent(t, tr, PressEvent(fire))
	mustRelease(t, tr, fire, actionJump)
}

func TestAbsoluteMotionClamped(t *testing.T) {
	tr, err := NewBuilder[testAction](800, 600).BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 50, 50, 50, 50},
		{"left edge", -10, 300, 0, 300},
		{"beyond extents", 900, 700, 800, 600},
		{"origin", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := tr.Translate(MoveEvent(tt.x, tt.y))
			if !ok || out.Kind != TranslatedMotion {
				t.Fatalf("Translate(move) = %v, %v, want motion", out.Kind, ok)
			}
			if out.X != tt.wantX || out.Y != tt.wantY {
				t.Errorf("motion = (%v, %v), want (%v, %v)", out.X, out.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRelativeMotionDeltas(t *testing.T) {
	tr, err := NewBuilder[testAction](800, 600).
		WithMouseMode(MouseRelative).
		BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	// The reference position starts at the viewport center (400, 300).
	out, ok := tr.Translate(MoveEvent(10, 10))
	if !ok || out.Kind != TranslatedMotion {
		t.Fatalf("first move = %v, %v, want motion", out.Kind, ok)
	}
	if out.X != -390 || out.Y != -290 {
		t.Errorf("first delta = (%v, %v), want (-390, -290)", out.X, out.Y)
	}

	out, ok = tr.Translate(MoveEvent(15, 12))
	if !ok || out.X != 5 || out.Y != 2 {
		t.Errorf("second delta = (%v, %v), %v, want (5, 2), true", out.X, out.Y, ok)
	}

	// No motion since the last sample yields a zero delta, not silence.
	out, ok = tr.Translate(MoveEvent(15, 12))
	if !ok || out.X != 0 || out.Y != 0 {
		t.Errorf("repeat delta = (%v, %v), %v, want (0, 0), true", out.X, out.Y, ok)
	}
}

func TestScrollTranslates(t *testing.T) {
	tr, err := NewDefaultBuilder[testAction]().BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	out, ok := tr.Translate(ScrollEvent(0, 1))
	if !ok || out.Kind != TranslatedScroll {
		t.Fatalf("Translate(scroll) = %v, %v, want scroll", out.Kind, ok)
	}
	if out.X != 0 || out.Y != 1 {
		t.Errorf("scroll = (%v, %v), want (0, 1)", out.X, out.Y)
	}
}

func TestScrollInversion(t *testing.T) {
	tr, err := NewDefaultBuilder[testAction]().
		WithXScrollInverted(true).
		WithYScrollInverted(true).
		BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	out, ok := tr.Translate(ScrollEvent(2, -1))
	if !ok || out.X != -2 || out.Y != 1 {
		t.Errorf("inverted scroll = (%v, %v), %v, want (-2, 1), true", out.X, out.Y, ok)
	}
}

func TestMotionInversion(t *testing.T) {
	tr, err := NewBuilder[testAction](800, 600).
		WithXMotionInverted(true).
		BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	out, ok := tr.Translate(MoveEvent(100, 200))
	if !ok || out.X != 700 || out.Y != 200 {
		t.Errorf("mirrored motion = (%v, %v), %v, want (700, 200), true", out.X, out.Y, ok)
	}
}

func TestUnknownEventKindsIgnored(t *testing.T) {
	tr := newTestTranslator(t)

	mustSilent(t, tr, Event{})
	mustSilent(t, tr, Event{Kind: EventKind(200)})
}

func TestSetSize(t *testing.T) {
	tr, err := NewBuilder[testAction](800, 600).BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator() error = %v", err)
	}

	tr.SetSize(400, 300)
	if got := tr.ViewportSize(); got != (Size{Width: 400, Height: 300}) {
		t.Errorf("ViewportSize() = %v, want 400x300", got)
	}

	out, _ := tr.Translate(MoveEvent(500, 500))
	if out.X != 400 || out.Y != 300 {
		t.Errorf("motion after resize = (%v, %v), want (400, 300)", out.X, out.Y)
	}

	// Invalid sizes are ignored rather than failing at translate time.
	tr.SetSize(0, -5)
	if got := tr.ViewportSize(); got != (Size{Width: 400, Height: 300}) {
		t.Errorf("ViewportSize() after invalid SetSize = %v, want 400x300", got)
	}
}

func TestBindingsCopy(t *testing.T) {
	tr := newTestTranslator(t)

	bindings := tr.Bindings()
	if len(bindings) != 8 {
		t.Fatalf("len(Bindings()) = %d, want 8", len(bindings))
	}
	if got := bindings[button.Keyboard(button.KeyW)]; got != actionUp {
		t.Errorf("Bindings()[KeyW] = %d, want actionUp", got)
	}

	// Mutating the copy must not affect the translator.
	delete(bindings, button.Keyboard(button.KeyW))
	mustPress(t, tr, button.Keyboard(button.KeyW), actionUp)
}
