package input

import "github.com/go-gl/mathgl/mgl64"

// Pointer is a desktop mouse provider. Platform code feeds it button and
// motion events; edges are latched until the next Poll so a press and
// release landing between two ticks still start and end a drag.
type Pointer struct {
	pos      mgl64.Vec2
	down     bool
	pressed  bool
	released bool
}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) Press(pos mgl64.Vec2) {
	p.pos = pos
	if !p.down {
		p.pressed = true
	}
	p.down = true
}

func (p *Pointer) Move(pos mgl64.Vec2) {
	p.pos = pos
}

func (p *Pointer) Release(pos mgl64.Vec2) {
	p.pos = pos
	if p.down {
		p.released = true
	}
	p.down = false
}

// Poll reports and clears the latched edges. A whole click since the last
// poll is split in two: the press is reported now with the pointer held and
// the release on the next poll.
func (p *Pointer) Poll() Sample {
	s := Sample{
		Position:     p.pos,
		JustPressed:  p.pressed,
		JustReleased: p.released,
		Held:         p.down,
	}
	switch {
	case p.pressed && p.released:
		s.JustReleased, s.Held = false, true
		p.pressed = false
	case p.released:
		s.Held = false
		p.released = false
		// pressed again after the carried release
		p.pressed = p.down
	default:
		p.pressed = false
	}
	return s
}
