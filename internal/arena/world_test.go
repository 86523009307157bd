package arena

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var lane = Bounds{HalfWidth: 5, HalfLength: 10}

func TestBallIntegrates(t *testing.T) {
	w := NewWorld(lane, 0.25)
	w.Ball().ApplyImpulse(mgl64.Vec3{1, 3, 2})

	w.Step(0.5)

	p := w.Ball().Position()
	if math.Abs(p.X()-0.5) > 1e-12 || p.Y() != 0 || math.Abs(p.Z()-1) > 1e-12 {
		t.Errorf("expected (0.5,0,1), got %v", p)
	}
}

func TestBallReflectsOffSideWall(t *testing.T) {
	w := NewWorld(lane, 0.5)
	w.Ball().ApplyImpulse(mgl64.Vec3{10, 0, 0})

	w.Step(1)

	if w.Ball().Velocity().X() >= 0 {
		t.Errorf("expected reflected x velocity, got %v", w.Ball().Velocity())
	}
	if w.Ball().Position().X() > lane.HalfWidth-0.5 {
		t.Errorf("ball left the lane: %v", w.Ball().Position())
	}
}

func TestBallEndHits(t *testing.T) {
	w := NewWorld(lane, 0.5)
	var sides []Side
	w.OnEnd(func(s Side) { sides = append(sides, s) })
	w.Ball().ApplyImpulse(mgl64.Vec3{0, 0, -20})

	w.Step(1)

	if w.EndHits()[SideNear] != 1 || len(sides) != 1 || sides[0] != SideNear {
		t.Errorf("expected one near end hit, got %v %v", w.EndHits(), sides)
	}
}

func TestContactFiresOnEnter(t *testing.T) {
	w := NewWorld(lane, 0.5)
	body := w.AddBody(mgl64.Vec3{0, 0, 2}, 0, 0.5)
	count := 0
	w.OnContact(body, func() { count++ })
	w.Ball().ApplyImpulse(mgl64.Vec3{0, 0, 1})

	for i := 0; i < 20; i++ {
		w.Step(0.1)
	}

	if count != 1 {
		t.Errorf("expected a single contact-enter, got %d", count)
	}
}

func TestContactHandlerRemoval(t *testing.T) {
	w := NewWorld(lane, 0.5)
	body := w.AddBody(mgl64.Vec3{0, 0, 0}, 0, 0.5)
	count := 0
	remove := w.OnContact(body, func() { count++ })
	remove()

	w.Step(0.1)

	if count != 0 {
		t.Errorf("expected no callbacks, got %d", count)
	}
}

func TestKinematicBodyConfinedAndImmovable(t *testing.T) {
	w := NewWorld(lane, 0.5)
	body := w.AddBody(mgl64.Vec3{0, 0, -8}, 0, 1)

	body.MovePosition(mgl64.Vec3{100, 5, 0})
	if body.Position().X() != lane.HalfWidth-1 || body.Position().Y() != 0 {
		t.Errorf("expected confined x and frozen y, got %v", body.Position())
	}

	body.ApplyImpulse(mgl64.Vec3{5, 0, 0})
	if body.Velocity() != (mgl64.Vec3{}) {
		t.Error("kinematic body must ignore impulses")
	}
}

func TestSetSpeed(t *testing.T) {
	w := NewWorld(lane, 0.5)
	w.Ball().ApplyImpulse(mgl64.Vec3{3, 0, 4})
	w.Ball().SetSpeed(10)

	v := w.Ball().Velocity()
	if math.Abs(v.Len()-10) > 1e-9 || math.Abs(v.X()-6) > 1e-9 {
		t.Errorf("expected (6,0,8), got %v", v)
	}
}

func TestMoveRotationNormalizes(t *testing.T) {
	w := NewWorld(lane, 0.5)
	body := w.AddBody(mgl64.Vec3{}, 0, 1)
	body.MoveRotation(-90)
	if body.Heading() != 270 {
		t.Errorf("expected 270, got %f", body.Heading())
	}
}
