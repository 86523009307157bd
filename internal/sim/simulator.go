package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/strikeball/internal/arena"
	"github.com/san-kum/strikeball/internal/ball"
	"github.com/san-kum/strikeball/internal/joystick"
	"github.com/san-kum/strikeball/internal/motion"
	"github.com/san-kum/strikeball/internal/strike"
)

type Simulator struct {
	world     *arena.World
	ball      *ball.Model
	stick     *joystick.Joystick
	entities  []*Entity
	removers  []func()
	metrics   []Metric
	observers []Observer

	tick    int
	time    float64
	served  bool
	pending []HitEvent
}

// New creates a simulator over world. stick may be nil when no entity is
// driven by input.
func New(world *arena.World, ballModel *ball.Model, stick *joystick.Joystick) *Simulator {
	return &Simulator{
		world:     world,
		ball:      ballModel,
		stick:     stick,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *arena.World         { return s.world }
func (s *Simulator) Joystick() *joystick.Joystick { return s.stick }
func (s *Simulator) Entities() []*Entity         { return s.entities }
func (s *Simulator) Time() float64               { return s.time }

// Entity looks up an entity by name.
func (s *Simulator) Entity(name string) *Entity {
	for _, e := range s.entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// AddEntity places a kinematic body driven by policy. Entities tick in the
// order they were added. Ball contact triggers a passive strike.
func (s *Simulator) AddEntity(name string, body *arena.Rigid, cfg motion.Config, policy Policy) *Entity {
	e := NewEntity(name, body, cfg, policy, func(h strike.Hit) {
		s.pending = append(s.pending, HitEvent{Entity: name, Hit: h})
	})
	ballBody := s.world.Ball()
	s.removers = append(s.removers, s.world.OnContact(body, func() {
		e.Hit(ballBody)
	}))
	policy.Attach(e, ballBody)
	s.entities = append(s.entities, e)
	return e
}

// Serve resets the ball to its spawn point and kicks it off.
func (s *Simulator) Serve() {
	b := s.world.Ball()
	b.Reset(s.ball.Position())
	b.ApplyImpulse(s.ball.ServeImpulse())
	s.served = true
}

// Step advances the game by one fixed tick.
func (s *Simulator) Step(dt float64) Frame {
	if !s.served {
		s.Serve()
	}
	ballBody := s.world.Ball()

	if s.stick != nil {
		s.stick.Tick()
	}
	for _, e := range s.entities {
		e.Policy.Tick(e, ballBody)
	}
	for _, e := range s.entities {
		e.Move(dt)
	}

	s.world.Step(dt)

	_, clamped := s.ball.Limit(ballBody.Velocity())
	if clamped {
		ballBody.SetSpeed(s.ball.MaxSpeed())
	}

	s.tick++
	s.time += dt

	f := s.snapshot()
	f.Clamped = clamped
	f.Hits = s.pending
	s.pending = nil

	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, obs := range s.observers {
		obs.OnStep(f)
	}
	return f
}

func (s *Simulator) snapshot() Frame {
	b := s.world.Ball()
	f := Frame{
		Tick: s.tick,
		Time: s.time,
		Ball: ball.State{
			Position: b.Position(),
			Velocity: b.Velocity(),
			MaxSpeed: s.ball.MaxSpeed(),
		},
		Entities: make([]EntityFrame, 0, len(s.entities)),
	}
	for _, e := range s.entities {
		f.Entities = append(f.Entities, e.Frame())
	}
	return f
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([]Frame, 0, steps+1),
		Metrics: make(map[string]float64),
		Hits:    make(map[string]int),
		Kicks:   make(map[string]int),
	}

	for _, m := range s.metrics {
		m.Reset()
	}
	for _, e := range s.entities {
		e.resetCounts()
	}

	if !s.served {
		s.Serve()
	}
	result.Frames = append(result.Frames, s.snapshot())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		result.Frames = append(result.Frames, s.Step(cfg.Dt))
		result.StepsTaken++
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	for _, e := range s.entities {
		result.Hits[e.Name] = e.Hits()
		result.Kicks[e.Name] = e.Kicks()
	}
	result.EndHits = s.world.EndHits()
}

// RunWithCallback steps until the duration elapses or callback returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	for elapsed := 0.0; elapsed < cfg.Duration; elapsed += cfg.Dt {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.Step(cfg.Dt)) {
			return nil
		}
	}

	return nil
}

// Close detaches every policy and contact listener.
func (s *Simulator) Close() {
	for _, e := range s.entities {
		e.Policy.Detach()
	}
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
