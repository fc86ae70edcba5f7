// Package button defines the physical input identifiers used by the rebind
// engine.
//
// A physical input is either a keyboard key or a mouse button. The package
// provides:
//
//   - Key: identifies a keyboard key (printable keys share their ASCII code,
//     special keys occupy a separate range)
//   - MouseButton: identifies a mouse button
//   - Button: a comparable tagged union of the two, suitable for use as a
//     map key in a binding table
//
// # Key Names
//
// Keys can be resolved from human-readable names:
//
//	button.KeyFromName("escape") // KeyEscape
//	button.KeyFromName("a")      // KeyA
//	button.KeyFromRune('w')      // KeyW
//
// Name resolution is case-insensitive and accepts common aliases such as
// "esc" for Escape and "return" for Enter.
package button
