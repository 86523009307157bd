package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/sim"
)

// Lane maps the x/z plane onto canvas dots with the far end at the top.
type Lane struct {
	halfWidth, halfLength float64
	ballRadius            float64
	radii                 map[string]float64

	scale  float64
	cx, cy float64
}

func NewLane(cfg *config.Config, c *Canvas) Lane {
	w, h := c.Dots()
	l := Lane{
		halfWidth:  cfg.Lane.HalfWidth,
		halfLength: cfg.Lane.HalfLength,
		ballRadius: cfg.Ball.Radius,
		radii: map[string]float64{
			sim.PlayerName: cfg.Player.Radius,
			sim.EnemyName:  cfg.Enemy.Radius,
		},
		cx: float64(w-1) / 2,
		cy: float64(h-1) / 2,
	}
	l.scale = math.Min(float64(w-1)/(2*l.halfWidth), float64(h-1)/(2*l.halfLength))
	return l
}

// Project returns the canvas dot for a world position.
func (l Lane) Project(p mgl64.Vec3) (int, int) {
	x := l.cx + p.X()*l.scale
	y := l.cy - p.Z()*l.scale
	return int(math.Round(x)), int(math.Round(y))
}

func (l Lane) dots(r float64) int {
	return int(math.Round(r * l.scale))
}

// Draw renders walls, the centre line, every entity with a heading tick, and
// the ball.
func (l Lane) Draw(c *Canvas, f sim.Frame) {
	x0, y0 := l.Project(mgl64.Vec3{-l.halfWidth, 0, l.halfLength})
	x1, y1 := l.Project(mgl64.Vec3{l.halfWidth, 0, -l.halfLength})
	c.DrawRect(x0, y0, x1, y1)

	_, my := l.Project(mgl64.Vec3{})
	for x := x0; x <= x1; x += 4 {
		c.Set(x, my)
		c.Set(x+1, my)
	}

	for _, e := range f.Entities {
		ex, ey := l.Project(e.Position)
		r := l.dots(l.radii[e.Name])
		c.DrawCircle(ex, ey, r)

		h := mgl64.DegToRad(e.Heading)
		tip := e.Position.Add(mgl64.Vec3{math.Sin(h), 0, math.Cos(h)}.Mul(l.radii[e.Name] * 1.8))
		tx, ty := l.Project(tip)
		c.DrawLine(ex, ey, tx, ty)
	}

	bx, by := l.Project(f.Ball.Position)
	c.DrawCircle(bx, by, l.dots(l.ballRadius))
	c.Set(bx, by)
}
