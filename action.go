package rebind

import "cmp"

// Action constrains the logical action types an application may bind inputs
// to. Any ordered, comparable type qualifies; a small integer or string
// enumeration is the intended shape. The set of distinct values should be
// small and fixed for the lifetime of a Translator.
type Action interface {
	cmp.Ordered
}

// TranslatedKind discriminates the variants of a Translated value.
type TranslatedKind uint8

const (
	// TranslatedNone is the zero value; it never appears in a Translated
	// value returned with ok == true.
	TranslatedNone TranslatedKind = iota
	// TranslatedPress reports an action transitioning from up to down.
	TranslatedPress
	// TranslatedRelease reports an action transitioning from down to up.
	TranslatedRelease
	// TranslatedMotion reports resolved mouse motion.
	TranslatedMotion
	// TranslatedScroll reports scroll wheel movement.
	TranslatedScroll
)

// String returns a string representation of the kind.
func (k TranslatedKind) String() string {
	switch k {
	case TranslatedPress:
		return "press"
	case TranslatedRelease:
		return "release"
	case TranslatedMotion:
		return "motion"
	case TranslatedScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Translated is one output of the translation engine.
//
// Action is meaningful for TranslatedPress and TranslatedRelease. X and Y
// are meaningful for TranslatedMotion, where they carry either clamped
// window coordinates (MouseAbsolute) or deltas from the previous position
// (MouseRelative), and for TranslatedScroll, where they carry wheel deltas.
type Translated[A Action] struct {
	Kind   TranslatedKind
	Action A
	X, Y   float64
}

func press[A Action](a A) Translated[A] {
	return Translated[A]{Kind: TranslatedPress, Action: a}
}

func release[A Action](a A) Translated[A] {
	return Translated[A]{Kind: TranslatedRelease, Action: a}
}

func motion[A Action](x, y float64) Translated[A] {
	return Translated[A]{Kind: TranslatedMotion, X: x, Y: y}
}

func scroll[A Action](dx, dy float64) Translated[A] {
	return Translated[A]{Kind: TranslatedScroll, X: dx, Y: dy}
}
