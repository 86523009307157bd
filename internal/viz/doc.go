// Package viz is the terminal front end for a live game.
//
// The lane is drawn on a Braille canvas by [Lane] and driven by a Bubble Tea
// [Model]. Mouse drags on the terminal feed an [input.Pointer], so the
// player's joystick works exactly as it would on a touch screen.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart the round
//	T     - Cycle color themes
//	?     - Show help overlay
//	[]/   - Time travel (rewind/forward)
//	Q     - Quit
package viz
