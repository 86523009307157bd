// Package experiment bundles a game config, its input and its metrics into
// one runnable unit.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/input"
	"github.com/san-kum/strikeball/internal/metrics"
	"github.com/san-kum/strikeball/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds the game. A nil metrics slice attaches metrics.Default.
func (e *Experiment) Setup(provider input.Provider, ms []sim.Metric) error {
	s, err := sim.NewGame(e.cfg, provider, nil)
	if err != nil {
		return err
	}
	if ms == nil {
		ms = metrics.Default()
	}
	for _, m := range ms {
		s.AddMetric(m)
	}
	e.simulator = s
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, sim.SimConfig(e.cfg))
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config { return e.cfg }

func (e *Experiment) Close() {
	if e.simulator != nil {
		e.simulator.Close()
	}
}
