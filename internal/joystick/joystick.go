package joystick

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/events"
	"github.com/san-kum/strikeball/internal/input"
)

// View is the presentation side of the stick. Optional.
type View interface {
	SetPosition(anchor mgl64.Vec2)
	SetHandlePosition(offset mgl64.Vec2)
}

// Joystick wires an input machine to the model and publishes on the bus.
type Joystick struct {
	model   *Model
	machine *input.Machine
	bus     *events.Bus
	view    View
}

func New(model *Model, machine *input.Machine, bus *events.Bus, view View) *Joystick {
	j := &Joystick{model: model, machine: machine, bus: bus, view: view}
	machine.AddListener(j)
	return j
}

func (j *Joystick) Model() *Model { return j.model }

// Tick polls input once and publishes a drag event while the stick is active.
func (j *Joystick) Tick() {
	j.model.Dragging = j.machine.Handle(j.model.Dragging)

	if !j.model.Active {
		return
	}
	j.bus.Drag.Publish(events.Drag{Direction: j.model.Direction, Magnitude: j.model.Magnitude})
}

func (j *Joystick) TouchStarted(pos mgl64.Vec2) {
	j.model.Anchor = pos
	if j.view != nil {
		j.view.SetPosition(pos)
		j.view.SetHandlePosition(mgl64.Vec2{})
	}
	j.bus.Pressed.Publish(events.Pressed{})
}

func (j *Joystick) TouchMoved(pos mgl64.Vec2) {
	handle := j.model.Locate(pos)
	j.model.UpdateInput(handle)
	if j.view != nil {
		j.view.SetPosition(j.model.Anchor)
		j.view.SetHandlePosition(handle)
	}
}

func (j *Joystick) TouchEnded() {
	j.model.Reset()
	if j.view != nil {
		j.view.SetHandlePosition(mgl64.Vec2{})
		j.view.SetPosition(j.model.Original)
	}
	j.bus.Released.Publish(events.Released{})
}
