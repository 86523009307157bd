package sim

import (
	"github.com/san-kum/strikeball/internal/arena"
	"github.com/san-kum/strikeball/internal/motion"
	"github.com/san-kum/strikeball/internal/strike"
)

// Entity is a striker: a body driven by a motion model under a policy.
type Entity struct {
	Name   string
	Body   arena.Body
	Motion *motion.Model
	Strike *strike.Resolver
	Policy Policy

	hits  int
	kicks int
}

// NewEntity builds an entity whose resolver reports landed strikes to cue.
func NewEntity(name string, body arena.Body, cfg motion.Config, policy Policy, cue strike.Cue) *Entity {
	e := &Entity{
		Name:   name,
		Body:   body,
		Motion: motion.NewModel(cfg),
		Policy: policy,
	}
	e.Strike = strike.NewResolver(cfg.HitRadius, func(h strike.Hit) {
		if h.Kind == strike.Active {
			e.kicks++
		} else {
			e.hits++
		}
		if cue != nil {
			cue(h)
		}
	})
	return e
}

// Kick is an active strike with the configured kick force.
func (e *Entity) Kick(ball arena.Body) bool {
	_, ok := e.Strike.Attempt(e.Body, ball, strike.Active, e.Motion.Config().KickForce)
	return ok
}

// Hit is a passive strike raised by ball contact.
func (e *Entity) Hit(ball arena.Body) bool {
	_, ok := e.Strike.Attempt(e.Body, ball, strike.Passive, e.Motion.Config().HitForce)
	return ok
}

// Move applies one tick of movement and heading smoothing to the body.
func (e *Entity) Move(dt float64) {
	if e.Body == nil {
		return
	}
	e.Body.MovePosition(e.Motion.Step(dt))
	if heading, ok := e.Motion.Rotate(e.Body.Heading(), dt); ok {
		e.Body.MoveRotation(heading)
	}
}

func (e *Entity) Frame() EntityFrame {
	f := EntityFrame{
		Name:     e.Name,
		Velocity: e.Motion.State.Velocity,
		Moving:   e.Motion.State.Moving,
	}
	if e.Body != nil {
		f.Position = e.Body.Position()
		f.Heading = e.Body.Heading()
	}
	return f
}

// resetCounts clears the strike counters at the start of a run.
func (e *Entity) resetCounts() { e.hits, e.kicks = 0, 0 }

// Hits and Kicks count landed passive and active strikes in the current run.
func (e *Entity) Hits() int  { return e.hits }
func (e *Entity) Kicks() int { return e.kicks }
