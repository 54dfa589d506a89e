// Package viz provides the terminal front-end for the rain engine.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [Model]: Bubble Tea model ticking the engine at the configured fps
//   - [Theme]: named shade ramps swapped at runtime
//
// Each engine cell maps to two terminal columns so the wide katakana
// glyphs stay aligned with the ASCII ones.
//
// # Key Bindings
//
//	Space - Pause/Resume the rain
//	T     - Cycle color themes
//	R     - Reseed all drops
//	Q     - Quit
package viz
