package metrics

import (
	"math"

	"github.com/san-kum/strikeball/internal/sim"
	"github.com/san-kum/strikeball/internal/strike"
)

// Strikes counts landed strikes of one kind for one entity.
type Strikes struct {
	name   string
	entity string
	kind   strike.Kind
	count  int
}

func NewStrikes(entity string, kind strike.Kind) *Strikes {
	return &Strikes{
		name:   entity + "_" + kind.String() + "s",
		entity: entity,
		kind:   kind,
	}
}

func (s *Strikes) Name() string { return s.name }

func (s *Strikes) Observe(f sim.Frame) {
	for _, h := range f.Hits {
		if h.Entity == s.entity && h.Hit.Kind == s.kind {
			s.count++
		}
	}
}

func (s *Strikes) Value() float64 { return float64(s.count) }
func (s *Strikes) Reset()         { s.count = 0 }

// Tracking is the mean lateral gap between an entity and the ball.
type Tracking struct {
	name    string
	entity  string
	sum     float64
	samples int
}

func NewTracking(entity string) *Tracking {
	return &Tracking{name: entity + "_tracking", entity: entity}
}

func (t *Tracking) Name() string { return t.name }

func (t *Tracking) Observe(f sim.Frame) {
	e, ok := f.Entity(t.entity)
	if !ok {
		return
	}
	t.sum += math.Abs(e.Position.X() - f.Ball.Position.X())
	t.samples++
}

func (t *Tracking) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.sum / float64(t.samples)
}

func (t *Tracking) Reset() {
	t.sum = 0
	t.samples = 0
}

// Default is the metric set attached to every game run.
func Default() []sim.Metric {
	return []sim.Metric{
		NewBallSpeed(),
		NewPeakSpeed(),
		NewClampRate(),
		NewStrikes(sim.PlayerName, strike.Active),
		NewStrikes(sim.PlayerName, strike.Passive),
		NewStrikes(sim.EnemyName, strike.Active),
		NewStrikes(sim.EnemyName, strike.Passive),
		NewTracking(sim.EnemyName),
	}
}
