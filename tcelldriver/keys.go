package tcelldriver

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind/button"
)

// keyTable maps tcell special keys to rebind keys. Keys a terminal cannot
// deliver distinctly (modifier keys, keypad keys) have no entry.
var keyTable = map[tcell.Key]button.Key{
	tcell.KeyEscape:     button.KeyEscape,
	tcell.KeyEnter:      button.KeyEnter,
	tcell.KeyTab:        button.KeyTab,
	tcell.KeyBackspace:  button.KeyBackspace,
	tcell.KeyBackspace2: button.KeyBackspace,
	tcell.KeyDelete:     button.KeyDelete,
	tcell.KeyInsert:     button.KeyInsert,
	tcell.KeyUp:         button.KeyUp,
	tcell.KeyDown:       button.KeyDown,
	tcell.KeyLeft:       button.KeyLeft,
	tcell.KeyRight:      button.KeyRight,
	tcell.KeyHome:       button.KeyHome,
	tcell.KeyEnd:        button.KeyEnd,
	tcell.KeyPgUp:       button.KeyPageUp,
	tcell.KeyPgDn:       button.KeyPageDown,
	tcell.KeyF1:         button.KeyF1,
	tcell.KeyF2:         button.KeyF2,
	tcell.KeyF3:         button.KeyF3,
	tcell.KeyF4:         button.KeyF4,
	tcell.KeyF5:         button.KeyF5,
	tcell.KeyF6:         button.KeyF6,
	tcell.KeyF7:         button.KeyF7,
	tcell.KeyF8:         button.KeyF8,
	tcell.KeyF9:         button.KeyF9,
	tcell.KeyF10:        button.KeyF10,
	tcell.KeyF11:        button.KeyF11,
	tcell.KeyF12:        button.KeyF12,
}

// keyOf resolves a tcell key event to a rebind key, or KeyNone when the
// event has no equivalent.
func keyOf(ev *tcell.EventKey) button.Key {
	if ev.Key() == tcell.KeyRune {
		return button.KeyFromRune(ev.Rune())
	}
	if k, ok := keyTable[ev.Key()]; ok {
		return k
	}
	return button.KeyNone
}
