package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/arena"
	"github.com/san-kum/strikeball/internal/events"
	"github.com/san-kum/strikeball/internal/intercept"
)

// StopDistance is how close (in x) the AI gets to its target before stopping.
const StopDistance = 0.1

// AIPolicy tracks the predicted ball crossing and kicks every tick.
type AIPolicy struct{}

func (AIPolicy) Attach(*Entity, arena.Body) {}
func (AIPolicy) Detach()                    {}

func (AIPolicy) Tick(e *Entity, ball arena.Body) {
	if e.Body == nil || ball == nil {
		return
	}
	pos := e.Body.Position()
	target := intercept.Target(pos, ball.Position(), ball.Velocity().X(), e.Motion.Config().MaxSpeed)
	dx := target.X() - pos.X()

	if math.Abs(dx) < StopDistance {
		e.Motion.SetMoving(false)
	} else {
		dir := mgl64.Vec2{1, 0}
		if dx < 0 {
			dir = mgl64.Vec2{-1, 0}
		}
		e.Motion.SetVelocity(dir, 1)
		e.Motion.SetMoving(true)
	}

	e.Kick(ball)
}

// PlayerPolicy follows joystick events from the bus.
type PlayerPolicy struct {
	bus  *events.Bus
	subs []*events.Subscription
}

func NewPlayerPolicy(bus *events.Bus) *PlayerPolicy {
	return &PlayerPolicy{bus: bus}
}

func (p *PlayerPolicy) Attach(e *Entity, ball arena.Body) {
	p.subs = append(p.subs,
		p.bus.Drag.Subscribe(func(d events.Drag) {
			e.Motion.SetVelocity(d.Direction, d.Magnitude)
		}),
		p.bus.Pressed.Subscribe(func(events.Pressed) {
			e.Motion.SetMoving(true)
		}),
		p.bus.Released.Subscribe(func(events.Released) {
			e.Motion.SetMoving(false)
			e.Kick(ball)
		}),
	)
}

func (p *PlayerPolicy) Tick(*Entity, arena.Body) {}

func (p *PlayerPolicy) Detach() {
	for _, s := range p.subs {
		s.Close()
	}
	p.subs = nil
}
