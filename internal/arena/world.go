package arena

import "github.com/go-gl/mathgl/mgl64"

// Side identifies a lane end.
type Side int

const (
	SideNear Side = iota // -z
	SideFar              // +z
)

type contactHandler struct {
	id int
	fn func()
}

// World steps the ball and raises contact-enter callbacks.
type World struct {
	bounds   Bounds
	ball     *Rigid
	bodies   []*Rigid
	touching map[*Rigid]bool
	handlers map[*Rigid][]contactHandler
	nextID   int
	endHits  [2]int
	onEnd    []func(Side)
}

func NewWorld(bounds Bounds, ballRadius float64) *World {
	return &World{
		bounds:   bounds,
		ball:     &Rigid{radius: ballRadius, mass: 1, bounds: bounds},
		touching: make(map[*Rigid]bool),
		handlers: make(map[*Rigid][]contactHandler),
	}
}

func (w *World) Bounds() Bounds { return w.bounds }
func (w *World) Ball() *Rigid   { return w.ball }
func (w *World) Bodies() []*Rigid {
	return w.bodies
}

// AddBody creates a kinematic body at pos facing heading.
func (w *World) AddBody(pos mgl64.Vec3, heading, radius float64) *Rigid {
	r := &Rigid{radius: radius, kinematic: true, bounds: w.bounds}
	r.Reset(pos)
	r.MoveRotation(heading)
	w.bodies = append(w.bodies, r)
	return r
}

// OnContact calls fn whenever the ball starts touching b. The returned
// function removes the handler.
func (w *World) OnContact(b *Rigid, fn func()) func() {
	w.nextID++
	id := w.nextID
	w.handlers[b] = append(w.handlers[b], contactHandler{id: id, fn: fn})
	return func() {
		hs := w.handlers[b]
		for i, h := range hs {
			if h.id == id {
				w.handlers[b] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// OnEnd registers a callback for the ball reaching a lane end.
func (w *World) OnEnd(fn func(Side)) {
	w.onEnd = append(w.onEnd, fn)
}

// EndHits returns how many times the ball reached each lane end.
func (w *World) EndHits() [2]int { return w.endHits }

// Step advances the ball by dt and resolves walls and contacts.
func (w *World) Step(dt float64) {
	b := w.ball
	b.pos = b.pos.Add(b.vel.Mul(dt))
	b.pos[1] = 0

	hw, hl, r := w.bounds.HalfWidth, w.bounds.HalfLength, b.radius
	if hw > 0 {
		if b.pos.X() > hw-r && b.vel.X() > 0 || b.pos.X() < -hw+r && b.vel.X() < 0 {
			b.vel[0] = -b.vel.X()
		}
	}
	if hl > 0 {
		if b.pos.Z() > hl-r && b.vel.Z() > 0 {
			b.vel[2] = -b.vel.Z()
			w.hitEnd(SideFar)
		} else if b.pos.Z() < -hl+r && b.vel.Z() < 0 {
			b.vel[2] = -b.vel.Z()
			w.hitEnd(SideNear)
		}
	}
	b.pos = w.bounds.Confine(b.pos, r)

	for _, body := range w.bodies {
		touching := body.pos.Sub(b.pos).Len() <= body.radius+b.radius
		if touching && !w.touching[body] {
			// copy: handlers may unregister while running
			hs := append([]contactHandler(nil), w.handlers[body]...)
			for _, h := range hs {
				h.fn()
			}
		}
		w.touching[body] = touching
	}
}

func (w *World) hitEnd(s Side) {
	w.endHits[s]++
	for _, fn := range w.onEnd {
		fn(s)
	}
}
