package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/arena"
	"github.com/san-kum/strikeball/internal/ball"
	"github.com/san-kum/strikeball/internal/strike"
)

// Policy decides how an entity moves and when it kicks.
type Policy interface {
	Attach(e *Entity, ball arena.Body)
	Tick(e *Entity, ball arena.Body)
	Detach()
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(f Frame)
}

type Config struct {
	Dt       float64
	Duration float64
}

// EntityFrame is an entity snapshot taken at the end of a tick.
type EntityFrame struct {
	Name     string
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Heading  float64
	Moving   bool
}

// HitEvent is a strike that landed during a tick.
type HitEvent struct {
	Entity string
	Hit    strike.Hit
}

type Frame struct {
	Tick     int
	Time     float64
	Ball     ball.State
	Clamped  bool
	Entities []EntityFrame
	Hits     []HitEvent
}

// Entity returns the snapshot with the given name.
func (f Frame) Entity(name string) (EntityFrame, bool) {
	for _, e := range f.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return EntityFrame{}, false
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	Hits       map[string]int
	Kicks      map[string]int
	EndHits    [2]int
	StepsTaken int
}
