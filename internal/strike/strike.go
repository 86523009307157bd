// Package strike decides whether an entity can hit the ball and applies the hit.
package strike

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/arena"
	"github.com/san-kum/strikeball/internal/motion"
)

type Kind int

const (
	Passive Kind = iota // contact with the ball
	Active              // kick
)

func (k Kind) String() string {
	if k == Active {
		return "kick"
	}
	return "hit"
}

// Hit describes a landed strike.
type Hit struct {
	Kind      Kind
	Direction mgl64.Vec3
	Impulse   mgl64.Vec3
	Heading   float64
	Distance  float64
}

// Cue is notified once per landed strike.
type Cue func(Hit)

type Resolver struct {
	radius float64
	cue    Cue
}

func NewResolver(radius float64, cue Cue) *Resolver {
	return &Resolver{radius: radius, cue: cue}
}

// Attempt strikes ball from entity with force. Out of range is a silent
// no-op and reports false. The entity is turned to face the ball before the
// impulse lands.
func (r *Resolver) Attempt(entity, ball arena.Body, kind Kind, force float64) (Hit, bool) {
	if entity == nil || ball == nil {
		return Hit{}, false
	}
	offset := ball.Position().Sub(entity.Position())
	dist := offset.Len()
	if dist > r.radius {
		return Hit{}, false
	}

	var dir mgl64.Vec3
	if dist > 0 {
		dir = offset.Mul(1 / dist)
	}
	h := Hit{
		Kind:      kind,
		Direction: dir,
		Impulse:   dir.Mul(force),
		Heading:   motion.HeadingOf(dir),
		Distance:  dist,
	}

	entity.MoveRotation(h.Heading)
	ball.ApplyImpulse(h.Impulse)
	if r.cue != nil {
		r.cue(h)
	}
	return h, true
}
