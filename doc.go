// Package rebind maps physical input events to application-defined logical
// actions.
//
// The package decouples game or application logic from concrete hardware
// bindings: keys and mouse buttons are bound to actions at construction
// time, and raw input events are translated to action press/release edges
// and resolved mouse motion at runtime.
//
// # Architecture
//
// The engine consists of a few cooperating pieces:
//
//   - Builder: accumulates bindings and mouse settings, then produces a
//     Translator (or a Rebind)
//   - Translator: the runtime engine; consumes one raw Event at a time and
//     produces at most one Translated value per event
//   - Rebind: a stateless view of the current bindings, organized by action,
//     for introspection and reconfiguration
//   - package button: the physical input vocabulary (keys, mouse buttons)
//
// # Actions
//
// Applications supply their own action type, typically a small integer
// enumeration:
//
//	type GameAction int
//
//	const (
//		MoveUp GameAction = iota
//		MoveDown
//		Jump
//		Fire
//	)
//
// Any ordered, comparable type satisfies the Action constraint.
//
// # Usage
//
//	translator, err := rebind.NewBuilder[GameAction](800, 600).
//		WithActionMapping(button.Keyboard(button.KeyW), MoveUp).
//		WithActionMapping(button.Keyboard(button.KeyUp), MoveUp).
//		WithActionMapping(button.Keyboard(button.KeyS), MoveDown).
//		WithActionMapping(button.Mouse(button.MouseLeft), Fire).
//		WithMouseMode(rebind.MouseRelative).
//		BuildTranslator()
//	if err != nil {
//		// only possible failure is an invalid viewport size
//	}
//
//	for ev := range events {
//		if out, ok := translator.Translate(ev); ok {
//			switch out.Kind {
//			case rebind.TranslatedPress:
//				// out.Action went down
//			case rebind.TranslatedRelease:
//				// out.Action came up
//			case rebind.TranslatedMotion:
//				// out.X, out.Y hold coordinates or deltas
//			}
//		}
//	}
//
// # Press and Release Edges
//
// The Translator tracks a per-action up/down state and reports only the
// edges. A key held down by the OS auto-repeat produces a single Press; a
// release for an action that is already up produces nothing. When several
// buttons are bound to the same action, the action goes down on the first
// press and up on the first release.
//
// # Mouse Modes
//
// In MouseAbsolute mode, cursor events pass through as window coordinates
// clamped to the configured viewport. In MouseRelative mode, cursor events
// are reported as deltas from the previous position, which starts at the
// viewport center.
//
// # Concurrency
//
// A Translator holds hidden mutable state (the per-action press state and
// the last cursor position) and is not safe for concurrent use. Calls to
// Translate must be serialized by the caller; the expected usage is a
// single event loop feeding a single Translator.
package rebind
