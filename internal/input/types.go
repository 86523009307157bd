package input

import "github.com/go-gl/mathgl/mgl64"

// Sample is one poll of the pointer or primary touch.
type Sample struct {
	Position     mgl64.Vec2
	JustPressed  bool
	JustReleased bool
	Held         bool
}

// Provider yields the current input sample.
type Provider interface {
	Poll() Sample
}

// DragAware providers are told the machine's dragging flag before each poll.
type DragAware interface {
	SetDragging(dragging bool)
}

// Listener receives the gesture notifications.
type Listener interface {
	TouchStarted(pos mgl64.Vec2)
	TouchMoved(pos mgl64.Vec2)
	TouchEnded()
}
