package events

import "github.com/go-gl/mathgl/mgl64"

// Drag carries the joystick output while it is active.
type Drag struct {
	Direction mgl64.Vec2
	Magnitude float64
}

// Pressed is published when a drag begins.
type Pressed struct{}

// Released is published when a drag ends.
type Released struct{}

// Bus groups the joystick channels shared by the joystick and the player policy.
type Bus struct {
	Drag     *Broker[Drag]
	Pressed  *Broker[Pressed]
	Released *Broker[Released]
}

func NewBus() *Bus {
	return &Bus{
		Drag:     NewBroker[Drag](),
		Pressed:  NewBroker[Pressed](),
		Released: NewBroker[Released](),
	}
}
