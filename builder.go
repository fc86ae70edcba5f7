package rebind

import (
	"fmt"
	"maps"

	"github.com/dshills/rebind/button"
)

// Default viewport dimensions used by NewDefaultBuilder.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Builder accumulates action bindings and mouse settings, then produces an
// immutable Translator or Rebind. All With methods return the receiver for
// chaining. The builder touches no external input source; construction has
// no side effects beyond the built value.
type Builder[A Action] struct {
	bindings map[button.Button]A
	mouse    mouseSettings
}

// NewBuilder creates a Builder with the given viewport dimensions. The
// dimensions are validated when BuildTranslator or BuildRebind is called,
// never during accumulation.
func NewBuilder[A Action](width, height int) *Builder[A] {
	return &Builder[A]{
		bindings: make(map[button.Button]A),
		mouse: mouseSettings{
			viewport: Size{Width: width, Height: height},
		},
	}
}

// NewDefaultBuilder creates a Builder with an 800x600 viewport.
func NewDefaultBuilder[A Action]() *Builder[A] {
	return NewBuilder[A](DefaultWidth, DefaultHeight)
}

// WithActionMapping binds a physical input to an action. Several inputs may
// map to the same action. Binding an input that is already bound replaces
// the previous action: last write wins, no error.
func (b *Builder[A]) WithActionMapping(in button.Button, action A) *Builder[A] {
	b.bindings[in] = action
	return b
}

// WithMouseMode sets the mouse interpretation mode.
func (b *Builder[A]) WithMouseMode(mode MouseMode) *Builder[A] {
	b.mouse.mode = mode
	return b
}

// WithViewportSize replaces the viewport dimensions.
func (b *Builder[A]) WithViewportSize(width, height int) *Builder[A] {
	b.mouse.viewport = Size{Width: width, Height: height}
	return b
}

// WithXMotionInverted sets whether cursor motion is mirrored on the x axis.
func (b *Builder[A]) WithXMotionInverted(invert bool) *Builder[A] {
	b.mouse.xMotionInverted = invert
	return b
}

// WithYMotionInverted sets whether cursor motion is mirrored on the y axis.
func (b *Builder[A]) WithYMotionInverted(invert bool) *Builder[A] {
	b.mouse.yMotionInverted = invert
	return b
}

// WithXScrollInverted sets whether horizontal scroll is inverted.
func (b *Builder[A]) WithXScrollInverted(invert bool) *Builder[A] {
	b.mouse.xScrollInverted = invert
	return b
}

// WithYScrollInverted sets whether vertical scroll is inverted.
func (b *Builder[A]) WithYScrollInverted(invert bool) *Builder[A] {
	b.mouse.yScrollInverted = invert
	return b
}

// BuildTranslator produces a Translator from the accumulated configuration.
// An empty binding table is valid and simply produces no press or release
// translations. The only failure is a non-positive viewport dimension,
// reported as ErrInvalidSize.
func (b *Builder[A]) BuildTranslator() (*Translator[A], error) {
	if !b.mouse.viewport.valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize,
			b.mouse.viewport.Width, b.mouse.viewport.Height)
	}
	return &Translator[A]{
		keymap:  maps.Clone(b.bindings),
		mouse:   newMouseTranslator(b.mouse),
		pressed: make(map[A]bool),
	}, nil
}

// BuildRebind produces a Rebind from the accumulated configuration. It
// fails under the same conditions as BuildTranslator. If more inputs are
// bound to one action than a ButtonSet holds, the extras are dropped.
func (b *Builder[A]) BuildRebind() (*Rebind[A], error) {
	t, err := b.BuildTranslator()
	if err != nil {
		return nil, err
	}
	return t.IntoRebind(), nil
}
