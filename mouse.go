package rebind

// MouseMode selects how cursor motion is interpreted.
type MouseMode uint8

const (
	// MouseAbsolute reports cursor events as window coordinates clamped to
	// the viewport.
	MouseAbsolute MouseMode = iota
	// MouseRelative reports cursor events as deltas from the previous
	// position.
	MouseRelative
)

// String returns a string representation of the mode.
func (m MouseMode) String() string {
	switch m {
	case MouseRelative:
		return "relative"
	default:
		return "absolute"
	}
}

// Size holds viewport dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// valid reports whether both dimensions are positive.
func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// mouseSettings is the immutable mouse configuration accumulated by the
// Builder and shared by Translator and Rebind.
type mouseSettings struct {
	mode            MouseMode
	viewport        Size
	xMotionInverted bool
	yMotionInverted bool
	xScrollInverted bool
	yScrollInverted bool
}

// mouseTranslator resolves raw cursor and scroll events according to the
// configured mode. It carries the only mouse-side mutable state: the last
// cursor position used for relative deltas.
type mouseTranslator struct {
	settings mouseSettings
	lastX    float64
	lastY    float64
}

func newMouseTranslator(settings mouseSettings) mouseTranslator {
	// The relative-mode reference position starts at the viewport center.
	return mouseTranslator{
		settings: settings,
		lastX:    float64(settings.viewport.Width) / 2,
		lastY:    float64(settings.viewport.Height) / 2,
	}
}

// move resolves a cursor event at window coordinates (x, y) into either a
// clamped absolute position or a delta, depending on the mode.
func (m *mouseTranslator) move(x, y float64) (float64, float64) {
	w := float64(m.settings.viewport.Width)
	h := float64(m.settings.viewport.Height)

	if m.settings.xMotionInverted {
		x = w - x
	}
	if m.settings.yMotionInverted {
		y = h - y
	}

	if m.settings.mode == MouseRelative {
		dx := x - m.lastX
		dy := y - m.lastY
		m.lastX = x
		m.lastY = y
		return dx, dy
	}

	return clamp(x, 0, w), clamp(y, 0, h)
}

// scroll applies the configured axis inversion to wheel deltas.
func (m *mouseTranslator) scroll(dx, dy float64) (float64, float64) {
	if m.settings.xScrollInverted {
		dx = -dx
	}
	if m.settings.yScrollInverted {
		dy = -dy
	}
	return dx, dy
}

// setSize replaces the viewport extents. Invalid sizes are ignored so that
// translation-time operations never fail.
func (m *mouseTranslator) setSize(s Size) {
	if !s.valid() {
		return
	}
	m.settings.viewport = s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
