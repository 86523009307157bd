package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/strikeball/internal/sim"
)

const scenarioYAML = `name: warmup
description: two short games
steps:
  - preset: rookie
    duration: 1
    seed: 7
    params:
      enemy.kick_force: 15
    gestures:
      - at: 0.1
        from: [0, 0]
        to: [150, 0]
        hold: 0.4
  - preset: pro
    duration: 0.5
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warmup.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "warmup" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	g := sc.Steps[0].Gestures[0]
	if g.To[0] != 150 || g.Hold != 0.4 {
		t.Errorf("unexpected gesture %+v", g)
	}

	cfg, err := sc.Steps[0].Config()
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if cfg.Enemy.KickForce != 15 || cfg.Seed != 7 || cfg.Duration != 1 {
		t.Errorf("overrides not applied: %+v", cfg.Enemy)
	}
}

func TestRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warmup.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}

	results, err := RunScenario(context.Background(), sc)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].StepsTaken != 50 || results[1].StepsTaken != 25 {
		t.Errorf("unexpected step counts %d, %d", results[0].StepsTaken, results[1].StepsTaken)
	}

	// the drag moves the player right of its spawn
	var moved bool
	for _, f := range results[0].Frames {
		if e, ok := f.Entity(sim.PlayerName); ok && e.Position.X() > 0 {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("expected the gesture to move the player")
	}
}

func TestRunScenarioUnknownParam(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Params: map[string]float64{"ball.spin": 1}}}}
	if _, err := RunScenario(context.Background(), sc); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestSamples(t *testing.T) {
	samples, err := Samples([]Gesture{{At: 0.1, From: [2]float64{0, 0}, To: [2]float64{100, 0}, Hold: 0.4}}, 0.1, 10)
	if err != nil {
		t.Fatal(err)
	}

	if !samples[1].JustPressed {
		t.Error("expected press at tick 1")
	}
	if !samples[3].Held || samples[3].Position.X() != 50 {
		t.Errorf("expected halfway hold at tick 3, got %+v", samples[3])
	}
	if !samples[5].JustReleased || samples[5].Position.X() != 100 {
		t.Errorf("expected release at tick 5, got %+v", samples[5])
	}
	if samples[6] != (samples[0]) {
		t.Error("expected idle samples outside the gesture")
	}
}

func TestSamplesOverlap(t *testing.T) {
	_, err := Samples([]Gesture{{At: 0, Hold: 0.5}, {At: 0.3, Hold: 0.1}}, 0.1, 10)
	if err == nil {
		t.Error("expected overlap error")
	}
}

func TestRunSweep(t *testing.T) {
	results, err := RunSweep(context.Background(), &ParameterSweep{
		Preset:    "classic",
		ParamName: "enemy.max_speed",
		ParamMin:  2,
		ParamMax:  8,
		NumSteps:  3,
		Duration:  0.5,
		Seed:      3,
	})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].ParamValue != 5 {
		t.Errorf("expected midpoint 5, got %f", results[1].ParamValue)
	}
	if _, ok := results[0].Metrics["enemy_tracking"]; !ok {
		t.Error("expected tracking metric in sweep result")
	}
}

func TestRunMonteCarlo(t *testing.T) {
	results, err := RunMonteCarlo(context.Background(), &MonteCarloConfig{
		Preset:    "classic",
		NumTrials: 3,
		Duration:  2,
		Seed:      11,
	})
	if err != nil {
		t.Fatalf("monte carlo failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(results))
	}
	near, far := MonteCarloStats(results)
	if near < 0 || far < 0 {
		t.Error("counts must not be negative")
	}
}
