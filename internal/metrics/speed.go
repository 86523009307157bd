package metrics

import (
	"math"

	"github.com/san-kum/strikeball/internal/sim"
)

// BallSpeed is the mean ball speed over a run.
type BallSpeed struct {
	name    string
	sum     float64
	samples int
}

func NewBallSpeed() *BallSpeed {
	return &BallSpeed{name: "ball_speed"}
}

func (b *BallSpeed) Name() string { return b.name }

func (b *BallSpeed) Observe(f sim.Frame) {
	b.sum += f.Ball.Speed()
	b.samples++
}

func (b *BallSpeed) Value() float64 {
	if b.samples == 0 {
		return 0
	}
	return b.sum / float64(b.samples)
}

func (b *BallSpeed) Reset() {
	b.sum = 0
	b.samples = 0
}

// PeakSpeed is the highest ball speed seen after clamping.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(f sim.Frame) {
	p.peak = math.Max(p.peak, f.Ball.Speed())
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }

// ClampRate is the fraction of ticks on which the speed ceiling engaged.
type ClampRate struct {
	name    string
	clamped int
	samples int
}

func NewClampRate() *ClampRate {
	return &ClampRate{name: "clamp_rate"}
}

func (c *ClampRate) Name() string { return c.name }

func (c *ClampRate) Observe(f sim.Frame) {
	c.samples++
	if f.Clamped {
		c.clamped++
	}
}

func (c *ClampRate) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.clamped) / float64(c.samples)
}

func (c *ClampRate) Reset() {
	c.clamped = 0
	c.samples = 0
}
