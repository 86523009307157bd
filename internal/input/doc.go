// Package input turns raw pointer and touch readings into drag gestures.
//
// A [Provider] is polled once per tick and yields a [Sample]. The [Machine]
// folds samples into three notifications on a [Listener]:
//
//   - TouchStarted: idle and the sample was just pressed
//   - TouchMoved: dragging and the pointer is held
//   - TouchEnded: dragging and the sample was just released
//
// The only state is the dragging flag, which the caller owns and threads
// through [Machine.Handle]. Providers for desktop pointers, touchscreens and
// scripted replays live alongside the machine; none of them perform platform
// I/O themselves.
package input
