// Package ball holds the ball's tunables and serve logic.
package ball

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/motion"
)

type Config struct {
	Position mgl64.Vec3
	MaxSpeed float64
}

// State is the ball as seen by the simulation.
type State struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	MaxSpeed float64
}

// Speed returns the velocity magnitude.
func (s State) Speed() float64 { return s.Velocity.Len() }

type Model struct {
	cfg   Config
	rng   *rand.Rand
	serve mgl64.Vec3
}

func NewModel(cfg Config, seed int64) *Model {
	return &Model{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

func (m *Model) MaxSpeed() float64     { return m.cfg.MaxSpeed }
func (m *Model) Position() mgl64.Vec3 { return m.cfg.Position }

// ServeDirection picks a random x drift and alternates the z side on each call.
func (m *Model) ServeDirection() mgl64.Vec3 {
	z := 1.0
	if m.serve.Z() > 0 {
		z = -1
	}
	x := m.rng.Float64()*2 - 1
	m.serve = mgl64.Vec3{x, 0, z}.Normalize()
	return m.serve
}

// ServeImpulse is the kick-off impulse: half max speed along ServeDirection.
func (m *Model) ServeImpulse() mgl64.Vec3 {
	return m.ServeDirection().Mul(m.cfg.MaxSpeed / 2)
}

// Limit enforces the max-speed ceiling on v.
func (m *Model) Limit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	return motion.ClampSpeed(v, m.cfg.MaxSpeed)
}
