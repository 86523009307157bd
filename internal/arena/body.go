// Package arena is a minimal kinematic lane world standing in for a physics
// engine. Entities are kinematic bodies moved by the simulation; the ball is
// a free body that integrates its velocity, reflects off the lane walls and
// reports entity contacts. There is no collision response between bodies.
package arena

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/motion"
)

// Body is the physics proxy the simulation drives.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	Heading() float64
	MovePosition(delta mgl64.Vec3)
	MoveRotation(deg float64)
	ApplyImpulse(impulse mgl64.Vec3)
	SetSpeed(speed float64)
}

// Rigid is the Body implementation used by World. Y position is frozen.
type Rigid struct {
	pos       mgl64.Vec3
	vel       mgl64.Vec3
	heading   float64
	radius    float64
	mass      float64
	kinematic bool
	bounds    Bounds
}

func (r *Rigid) Position() mgl64.Vec3 { return r.pos }
func (r *Rigid) Velocity() mgl64.Vec3 { return r.vel }
func (r *Rigid) Heading() float64     { return r.heading }
func (r *Rigid) Radius() float64      { return r.radius }

func (r *Rigid) MovePosition(delta mgl64.Vec3) {
	r.pos = r.bounds.Confine(r.pos.Add(mgl64.Vec3{delta.X(), 0, delta.Z()}), r.radius)
}

func (r *Rigid) MoveRotation(deg float64) {
	r.heading = motion.NormalizeAngle(deg)
}

func (r *Rigid) ApplyImpulse(impulse mgl64.Vec3) {
	if r.kinematic || r.mass <= 0 {
		return
	}
	j := impulse.Mul(1 / r.mass)
	r.vel = r.vel.Add(mgl64.Vec3{j.X(), 0, j.Z()})
}

// SetSpeed rescales the velocity to speed keeping its direction.
func (r *Rigid) SetSpeed(speed float64) {
	l := r.vel.Len()
	if l == 0 {
		return
	}
	r.vel = r.vel.Mul(speed / l)
}

// Reset teleports the body and clears its motion.
func (r *Rigid) Reset(pos mgl64.Vec3) {
	r.pos = mgl64.Vec3{pos.X(), 0, pos.Z()}
	r.vel = mgl64.Vec3{}
}

// Bounds is the lane rectangle centred on the origin.
type Bounds struct {
	HalfWidth  float64
	HalfLength float64
}

// Confine clamps p so a body of the given radius stays inside.
func (b Bounds) Confine(p mgl64.Vec3, radius float64) mgl64.Vec3 {
	if b.HalfWidth <= 0 || b.HalfLength <= 0 {
		return p
	}
	return mgl64.Vec3{
		clampF(p.X(), -b.HalfWidth+radius, b.HalfWidth-radius),
		p.Y(),
		clampF(p.Z(), -b.HalfLength+radius, b.HalfLength-radius),
	}
}

func clampF(v, lo, hi float64) float64 {
	if lo > hi {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
