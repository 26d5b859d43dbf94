// Package viz provides the terminal rendering primitives for the orrery.
//
// The package contains no orbital logic of its own:
//
//   - [Vec3]: small 3-vector used for world positions
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Projector]: rotate-and-project camera mapping world space to canvas
//     pixels with painter's-algorithm depth ordering
//
// The GUI front end renders through raylib and borrows only [Vec3]; the TUI
// in internal/tui composes all three types every frame.
package viz
