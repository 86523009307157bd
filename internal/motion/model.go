package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Config holds per-entity tunables. Immutable once loaded.
type Config struct {
	MaxSpeed            float64
	RotationSmoothTime  float64
	MinAngleForRotation float64
	HitRadius           float64
	HitForce            float64
	KickForce           float64
}

// State is the mutable part of an entity, advanced once per tick.
type State struct {
	Velocity     mgl64.Vec3
	RotationRate float64
	Moving       bool
}

type Model struct {
	cfg   Config
	State State
}

func NewModel(cfg Config) *Model {
	return &Model{cfg: cfg}
}

func (m *Model) Config() Config { return m.cfg }

// SetVelocity maps dir onto the x/z plane scaled by magnitude and max speed.
func (m *Model) SetVelocity(dir mgl64.Vec2, magnitude float64) {
	in := dir.Mul(magnitude)
	m.State.Velocity = mgl64.Vec3{in.X(), 0, in.Y()}.Mul(m.cfg.MaxSpeed)
}

// SetMoving toggles movement. Stopping is immediate and also clears the
// rotation rate so the next episode starts from rest.
func (m *Model) SetMoving(moving bool) {
	m.State.Moving = moving
	if !moving {
		m.State.Velocity = mgl64.Vec3{}
		m.State.RotationRate = 0
	}
}

// Step returns the position delta for one tick.
func (m *Model) Step(dt float64) mgl64.Vec3 {
	return Integrate(m.State.Velocity, dt)
}

// Rotate advances heading toward the velocity direction. ok is false when no
// rotation should be applied this tick.
func (m *Model) Rotate(current, dt float64) (heading float64, ok bool) {
	heading, m.State.RotationRate, ok = RotationAngle(m.cfg, current, m.State.Velocity, m.State.RotationRate, dt)
	return heading, ok
}

// RotationAngle computes the next heading for an entity moving at vel.
// It skips when vel is zero or the remaining turn is within the configured
// minimum angle; rate is returned unchanged in both cases.
func RotationAngle(cfg Config, current float64, vel mgl64.Vec3, rate, dt float64) (float64, float64, bool) {
	if vel.LenSqr() <= 0 {
		return current, rate, false
	}
	target := HeadingOf(vel)
	if math.Abs(DeltaAngle(current, target)) <= cfg.MinAngleForRotation {
		return current, rate, false
	}
	angle, rate := SmoothDampAngle(current, target, rate, cfg.RotationSmoothTime, dt)
	return angle, rate, true
}

// HeadingOf returns atan2(v.x, v.z) in degrees.
func HeadingOf(v mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(v.X(), v.Z()))
}

// Integrate is the explicit Euler position delta vel*dt.
func Integrate(vel mgl64.Vec3, dt float64) mgl64.Vec3 {
	return vel.Mul(dt)
}

// ClampSpeed rescales v to max when its magnitude exceeds it.
func ClampSpeed(v mgl64.Vec3, max float64) (mgl64.Vec3, bool) {
	l := v.Len()
	if l <= max || l == 0 {
		return v, false
	}
	return v.Mul(max / l), true
}
