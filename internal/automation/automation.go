package automation

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/experiment"
	"github.com/san-kum/strikeball/internal/input"
	"github.com/san-kum/strikeball/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of games
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one game: a preset, overrides and the player's gestures
type ScenarioStep struct {
	Preset   string             `yaml:"preset"`
	Duration float64            `yaml:"duration"`
	Dt       float64            `yaml:"dt"`
	Seed     int64              `yaml:"seed"`
	Params   map[string]float64 `yaml:"params"`
	Gestures []Gesture          `yaml:"gestures"`
	SaveAs   string             `yaml:"save_as"`
}

// Gesture is a single drag on the joystick canvas: press at From, slide to
// To over Hold seconds, release.
type Gesture struct {
	At   float64    `yaml:"at"`
	From [2]float64 `yaml:"from"`
	To   [2]float64 `yaml:"to"`
	Hold float64    `yaml:"hold"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &scenario, nil
}

// Config resolves the step's preset and overrides.
func (s ScenarioStep) Config() (*config.Config, error) {
	preset := s.Preset
	if preset == "" {
		preset = "classic"
	}
	cfg, err := config.GetPreset(preset)
	if err != nil {
		return nil, err
	}
	if s.Dt > 0 {
		cfg.Dt = s.Dt
	}
	if s.Duration > 0 {
		cfg.Duration = s.Duration
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}

	keys := make([]string, 0, len(s.Params))
	for k := range s.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := cfg.Set(k, s.Params[k]); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Samples expands gestures into one input sample per tick.
func Samples(gestures []Gesture, dt float64, ticks int) ([]input.Sample, error) {
	out := make([]input.Sample, ticks)
	busyUntil := -1

	for i, g := range gestures {
		start := int(math.Round(g.At / dt))
		length := int(math.Round(g.Hold / dt))
		if length < 1 {
			length = 1
		}
		end := start + length
		if start <= busyUntil {
			return nil, fmt.Errorf("gesture %d overlaps the previous one", i+1)
		}
		busyUntil = end

		from := mgl64.Vec2{g.From[0], g.From[1]}
		to := mgl64.Vec2{g.To[0], g.To[1]}
		for tick := start; tick <= end && tick < ticks; tick++ {
			switch tick {
			case start:
				out[tick] = input.Sample{Position: from, JustPressed: true}
			case end:
				out[tick] = input.Sample{Position: to, JustReleased: true}
			default:
				frac := float64(tick-start) / float64(length)
				pos := from.Add(to.Sub(from).Mul(frac))
				out[tick] = input.Sample{Position: pos, Held: true}
			}
		}
	}

	return out, nil
}

// Experiment builds the runnable game for the step.
func (s ScenarioStep) Experiment() (*experiment.Experiment, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	samples, err := Samples(s.Gestures, cfg.Dt, int(cfg.Duration/cfg.Dt))
	if err != nil {
		return nil, err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(input.NewScript(samples), nil); err != nil {
		return nil, err
	}
	return exp, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario) ([]sim.Result, error) {
	results := make([]sim.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Printf("[scenario] step %d/%d: %s", i+1, len(scenario.Steps), step.Preset)

		exp, err := step.Experiment()
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		exp.Close()
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, *result)
	}

	return results, nil
}

// ParameterSweep runs games across a range of one config value
type ParameterSweep struct {
	Preset    string
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Duration  float64
	Seed      int64
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Metrics    map[string]float64
	EndHits    [2]int
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}
	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		step := ScenarioStep{
			Preset:   sweep.Preset,
			Duration: sweep.Duration,
			Seed:     sweep.Seed,
			Params:   map[string]float64{sweep.ParamName: paramVal},
		}
		exp, err := step.Experiment()
		if err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		exp.Close()
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Metrics:    result.Metrics,
			EndHits:    result.EndHits,
		})

		log.Printf("[sweep] %d/%d: %s=%.4f", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}

// MonteCarloConfig runs the same preset under random seeds
type MonteCarloConfig struct {
	Preset    string
	NumTrials int
	Duration  float64
	Seed      int64
}

// MonteCarloResult is the outcome of one trial
type MonteCarloResult struct {
	TrialID int
	Seed    int64
	EndHits [2]int
	Kicks   map[string]int
}

// RunMonteCarlo executes trials with random serve seeds
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig) ([]MonteCarloResult, error) {
	results := make([]MonteCarloResult, 0, cfg.NumTrials)

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for trial := 0; trial < cfg.NumTrials; trial++ {
		seed := rng.Int63()
		if seed == 0 {
			seed = 1
		}
		step := ScenarioStep{Preset: cfg.Preset, Duration: cfg.Duration, Seed: seed}
		exp, err := step.Experiment()
		if err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		exp.Close()
		if err != nil {
			return nil, err
		}

		results = append(results, MonteCarloResult{
			TrialID: trial,
			Seed:    seed,
			EndHits: result.EndHits,
			Kicks:   result.Kicks,
		})

		if (trial+1)%10 == 0 {
			log.Printf("[montecarlo] %d/%d trials complete", trial+1, cfg.NumTrials)
		}
	}

	return results, nil
}

// MonteCarloStats totals how often the ball reached each lane end
func MonteCarloStats(results []MonteCarloResult) (near int, far int) {
	for _, r := range results {
		near += r.EndHits[0]
		far += r.EndHits[1]
	}
	return
}
