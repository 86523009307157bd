// Package joystick implements the dynamic on-screen stick that turns drag
// gestures into a normalized direction and magnitude.
package joystick

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Config struct {
	MaxDistance       float64
	RelocateThreshold float64
	InputDeadZone     float64
}

// Model is the drag input state. Direction and Magnitude are only meaningful
// while Active.
type Model struct {
	cfg Config

	Original  mgl64.Vec2
	Anchor    mgl64.Vec2
	Handle    mgl64.Vec2
	Direction mgl64.Vec2
	Magnitude float64
	Active    bool
	Dragging  bool
}

func NewModel(cfg Config) *Model {
	return &Model{cfg: cfg}
}

func (m *Model) Config() Config { return m.cfg }

// SetOriginal records the rest position the anchor returns to on release.
func (m *Model) SetOriginal(pos mgl64.Vec2) {
	m.Original = pos
	m.Anchor = pos
}

// Locate maps a pointer position to a clamped handle offset, dragging the
// anchor along once the pointer strays past the relocate threshold.
func (m *Model) Locate(pos mgl64.Vec2) mgl64.Vec2 {
	local := pos.Sub(m.Anchor)
	if d := local.Len(); d > m.cfg.RelocateThreshold {
		m.Anchor = m.Anchor.Add(local.Normalize().Mul(d - m.cfg.MaxDistance))
		local = pos.Sub(m.Anchor)
	}
	return clampMagnitude(local, m.cfg.MaxDistance)
}

// UpdateInput normalizes a clamped handle offset.
func (m *Model) UpdateInput(handle mgl64.Vec2) {
	m.Handle = handle
	in := handle.Mul(1 / m.cfg.MaxDistance)
	m.Direction = normalize(in)
	m.Magnitude = clamp01(in.Len())
	m.Active = m.Magnitude > m.cfg.InputDeadZone
}

func (m *Model) Reset() {
	m.Dragging = false
	m.Direction = mgl64.Vec2{}
	m.Magnitude = 0
	m.Active = false
	m.Handle = mgl64.Vec2{}
	m.Anchor = m.Original
}

func clampMagnitude(v mgl64.Vec2, max float64) mgl64.Vec2 {
	if l := v.Len(); l > max {
		return v.Mul(max / l)
	}
	return v
}

func normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
