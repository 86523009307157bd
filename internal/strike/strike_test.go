package strike

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/arena"
)

type fakeBody struct {
	pos     mgl64.Vec3
	vel     mgl64.Vec3
	heading float64
	log     *[]string
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }
func (b *fakeBody) Velocity() mgl64.Vec3 { return b.vel }
func (b *fakeBody) Heading() float64     { return b.heading }
func (b *fakeBody) MovePosition(d mgl64.Vec3) {
	b.pos = b.pos.Add(d)
}
func (b *fakeBody) MoveRotation(deg float64) {
	b.heading = deg
	*b.log = append(*b.log, "rotate")
}
func (b *fakeBody) ApplyImpulse(j mgl64.Vec3) {
	b.vel = b.vel.Add(j)
	*b.log = append(*b.log, "impulse")
}
func (b *fakeBody) SetSpeed(float64) {}

var _ arena.Body = (*fakeBody)(nil)

func TestAttemptInRange(t *testing.T) {
	var log []string
	entity := &fakeBody{log: &log}
	ball := &fakeBody{pos: mgl64.Vec3{1.5, 0, 0}, log: &log}
	cues := 0
	r := NewResolver(2.0, func(Hit) { cues++ })

	h, ok := r.Attempt(entity, ball, Active, 20)

	if !ok {
		t.Fatal("expected strike to land")
	}
	if ball.vel != (mgl64.Vec3{20, 0, 0}) {
		t.Errorf("expected impulse (20,0,0), got %v", ball.vel)
	}
	if math.Abs(entity.heading-90) > 1e-9 || h.Heading != entity.heading {
		t.Errorf("expected heading 90, got %f", entity.heading)
	}
	if cues != 1 {
		t.Errorf("expected one cue, got %d", cues)
	}
	if len(log) != 2 || log[0] != "rotate" || log[1] != "impulse" {
		t.Errorf("expected rotate before impulse, got %v", log)
	}
}

func TestAttemptOutOfRange(t *testing.T) {
	var log []string
	entity := &fakeBody{log: &log}
	ball := &fakeBody{pos: mgl64.Vec3{0, 0, 2.5}, vel: mgl64.Vec3{1, 0, 1}, log: &log}
	cues := 0
	r := NewResolver(2.0, func(Hit) { cues++ })

	if _, ok := r.Attempt(entity, ball, Passive, 10); ok {
		t.Error("expected no strike")
	}
	if ball.vel != (mgl64.Vec3{1, 0, 1}) || len(log) != 0 || cues != 0 {
		t.Error("out of range attempt must not touch anything")
	}
}

func TestAttemptNilBody(t *testing.T) {
	r := NewResolver(2.0, nil)
	if _, ok := r.Attempt(nil, nil, Active, 1); ok {
		t.Error("expected no strike without bodies")
	}
}

func TestKindString(t *testing.T) {
	if Passive.String() != "hit" || Active.String() != "kick" {
		t.Errorf("unexpected names %s %s", Passive, Active)
	}
}
