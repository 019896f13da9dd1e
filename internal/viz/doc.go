// Package viz shows the animation in a terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Screen]: half-block truecolor surface, two pixels per cell
//   - [Model]: program that ticks the driver on a tea.Tick timer
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	G     - Toggle recording
//	R     - Restart the phase cycle
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// Frames captured while recording are written to the recording store as GIF,
// animated PNG and a last-frame PNG when recording is stopped.
package viz
