package input

import "github.com/go-gl/mathgl/mgl64"

type Phase int

const (
	PhaseNone Phase = iota
	PhaseBegan
	PhaseMoved
	PhaseStationary
	PhaseEnded
	PhaseCanceled
)

// TouchPoint is one active contact reported by a touchscreen.
type TouchPoint struct {
	Position mgl64.Vec2
	Phase    Phase
}

// TouchSource reads the touches currently on screen.
type TouchSource interface {
	Touches() []TouchPoint
}

// Touch is the touchscreen provider. Only the first touch is tracked.
type Touch struct {
	src      TouchSource
	dragging bool
}

func NewTouch(src TouchSource) *Touch {
	return &Touch{src: src}
}

func (t *Touch) SetDragging(dragging bool) { t.dragging = dragging }

func (t *Touch) Poll() Sample {
	var s Sample
	if touches := t.src.Touches(); len(touches) > 0 {
		tp := touches[0]
		s.Position = tp.Position
		s.JustPressed = tp.Phase == PhaseBegan
		s.JustReleased = tp.Phase == PhaseEnded || tp.Phase == PhaseCanceled
		s.Held = tp.Phase == PhaseMoved || tp.Phase == PhaseStationary
	} else if t.dragging {
		// no contact while dragging: the finger left without an end phase
		s.JustReleased = true
	}
	return s
}

// TouchFrames is a TouchSource that advances one frame per Touches call.
type TouchFrames struct {
	frames [][]TouchPoint
	next   int
}

func NewTouchFrames(frames ...[]TouchPoint) *TouchFrames {
	return &TouchFrames{frames: frames}
}

func (f *TouchFrames) Touches() []TouchPoint {
	if f.next >= len(f.frames) {
		return nil
	}
	tp := f.frames[f.next]
	f.next++
	return tp
}
