package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/strikeball/internal/automation"
	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/experiment"
	"github.com/san-kum/strikeball/internal/export"
	"github.com/san-kum/strikeball/internal/optim"
	"github.com/san-kum/strikeball/internal/sim"
	"github.com/san-kum/strikeball/internal/storage"
	"github.com/san-kum/strikeball/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	seed       int64
	preset     string
	configFile string
	overrides  []string
	frameRate  int
	outFile    string
	columns    []string
	// sweep and bench
	paramName string
	paramMin  float64
	paramMax  float64
	numSteps  int
	numRuns   int
	// tune
	tuneParams []string
	metricName string
	maximize   bool
	svgHeight  int
)

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:          "strikeball",
		Short:        "lane arcade game and headless match runner",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(frameRate)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".strikeball", "data directory")
	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless match and store it",
		RunE:  runMatch,
	}
	gameFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play a match in the terminal",
		RunE:  runLive,
	}
	gameFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot frame columns of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&columns, "columns", []string{"ball_x", "ball_z", "ball_speed", sim.PlayerName + "_x", sim.EnemyName + "_x"}, "frame columns to plot")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw top-down ball and player paths as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and tunable parameters",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a resolved config file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	gameFlags(configCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one config value across a range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&preset, "preset", "classic", "preset")
	sweepCmd.Flags().StringVar(&paramName, "param", "enemy.max_speed", "config key")
	sweepCmd.Flags().Float64Var(&paramMin, "min", 2, "range start")
	sweepCmd.Flags().Float64Var(&paramMax, "max", 10, "range end")
	sweepCmd.Flags().IntVar(&numSteps, "steps", 5, "number of values")
	sweepCmd.Flags().Float64Var(&duration, "time", 30, "duration")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "serve seed")

	montecarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "run a preset under random serve seeds",
		RunE:  runMonteCarlo,
	}
	montecarloCmd.Flags().StringVar(&preset, "preset", "classic", "preset")
	montecarloCmd.Flags().IntVar(&numRuns, "trials", 50, "number of trials")
	montecarloCmd.Flags().Float64Var(&duration, "time", 30, "duration")
	montecarloCmd.Flags().Int64Var(&seed, "seed", 0, "seed for the trial seeds (0 = clock)")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search config values for the best metric",
		RunE:  runTune,
	}
	tuneCmd.Flags().StringVar(&preset, "preset", "classic", "preset")
	tuneCmd.Flags().StringArrayVar(&tuneParams, "param", nil, "key=min:max:n, repeatable")
	tuneCmd.Flags().StringVar(&metricName, "metric", "enemy_tracking", "metric to optimise")
	tuneCmd.Flags().BoolVar(&maximize, "max", false, "maximise instead of minimise")
	tuneCmd.Flags().Float64Var(&duration, "time", 10, "duration")
	tuneCmd.Flags().Int64Var(&seed, "seed", 1, "serve seed")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark concurrent headless matches",
		RunE:  benchMatches,
	}
	gameFlags(benchCmd)
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "concurrent matches")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, configCmd, scenarioCmd, sweepCmd, montecarloCmd, tuneCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func gameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "classic", "preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", 1, "serve seed")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "override a config value, key=value")
}

// resolveConfig layers preset, config file, flags and --set overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.GetPreset(preset)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
	}

	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	for _, kv := range overrides {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("bad override %q, want key=value", kv)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad override %q: %w", kv, err)
		}
		if err := cfg.Set(key, val); err != nil {
			return nil, err
		}
	}

	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(nil, nil); err != nil {
		return err
	}
	defer exp.Close()

	fmt.Printf("running %s match...\n", cfg.Name)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Name, cfg.Dt, cfg.Duration, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("ends: near %d  far %d\n", result.EndHits[0], result.EndHits[1])
	printMetrics(result.Metrics)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunLive(cfg, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tSEED\tENDS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d:%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Seed,
			run.EndHits[0], run.EndHits[1],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	table, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(table.Rows))

	for _, name := range columns {
		data, ok := table.Column(name)
		if !ok {
			return fmt.Errorf("unknown column %q (have %v)", name, table.Columns)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	table, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.ExportJSONStdout(meta, table)
	}
	if err := storage.ExportJSON(outFile, meta, table); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	table, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return table.WriteCSV(os.Stdout)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	table, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.GetPreset(meta.Preset)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	traces, err := export.TracesFromTable(table, []string{"ball", sim.PlayerName, sim.EnemyName})
	if err != nil {
		return err
	}
	svg := export.LaneSVG(traces, cfg.Lane.HalfWidth, cfg.Lane.HalfLength, svgHeight)

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("presets:")
	for _, p := range config.ListPresets() {
		fmt.Printf("  %s\n", p)
	}

	cfg := config.DefaultConfig()
	fmt.Println("\nparameters (--set key=value):")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range cfg.Params() {
		v, _ := cfg.Get(key)
		fmt.Fprintf(w, "  %s\t%g\n", key, v)
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	log.Printf("[scenario] %s: %d steps", scenario.Name, len(scenario.Steps))

	results, err := automation.RunScenario(cmd.Context(), scenario)
	if err != nil {
		return err
	}

	var st *storage.Store
	for i := range results {
		step := scenario.Steps[i]
		res := &results[i]
		fmt.Printf("step %d (%s): ends %d:%d kicks %v\n", i+1, step.Preset, res.EndHits[0], res.EndHits[1], res.Kicks)

		if step.SaveAs == "" {
			continue
		}
		if st == nil {
			st = storage.New(dataDir)
			if err := st.Init(); err != nil {
				return err
			}
		}
		cfg, err := step.Config()
		if err != nil {
			return err
		}
		runID, err := st.Save(step.SaveAs, cfg.Dt, cfg.Duration, cfg.Seed, res)
		if err != nil {
			return err
		}
		log.Printf("[scenario] saved step %d as %s", i+1, runID)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		Preset:    preset,
		ParamName: paramName,
		ParamMin:  paramMin,
		ParamMax:  paramMax,
		NumSteps:  numSteps,
		Duration:  duration,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tNEAR\tFAR\tBALL_SPEED\tTRACKING\n", strings.ToUpper(paramName))
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%d\t%d\t%.3f\t%.3f\n", r.ParamValue, r.EndHits[0], r.EndHits[1], r.Metrics["ball_speed"], r.Metrics["enemy_tracking"])
	}
	return w.Flush()
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	results, err := automation.RunMonteCarlo(cmd.Context(), &automation.MonteCarloConfig{
		Preset:    preset,
		NumTrials: numRuns,
		Duration:  duration,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	near, far := automation.MonteCarloStats(results)
	fmt.Printf("trials: %d\n", len(results))
	fmt.Printf("near end reached: %d\n", near)
	fmt.Printf("far end reached:  %d\n", far)
	return nil
}

// parseGrid reads key=min:max:n.
func parseGrid(def string) (string, []float64, error) {
	key, rng, ok := strings.Cut(def, "=")
	if !ok {
		return "", nil, fmt.Errorf("bad param %q, want key=min:max:n", def)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("bad range %q, want min:max:n", rng)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, err
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, err
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", nil, err
	}
	return key, optim.Range(lo, hi, n), nil
}

func runTune(cmd *cobra.Command, args []string) error {
	if len(tuneParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}

	names := make([]string, 0, len(tuneParams))
	ranges := make([][]float64, 0, len(tuneParams))
	for _, def := range tuneParams {
		key, values, err := parseGrid(def)
		if err != nil {
			return err
		}
		names = append(names, key)
		ranges = append(ranges, values)
	}

	g := optim.NewGridSearch(names, ranges)
	if maximize {
		g.Maximize()
	}
	build := optim.StepBuilder(automation.ScenarioStep{Preset: preset, Duration: duration, Seed: seed})

	log.Printf("[tune] searching %v for %s", names, metricName)
	best, val, err := g.Search(cmd.Context(), build, metricName)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %.6f\n", metricName, val)
	for _, name := range names {
		fmt.Printf("  %s = %g\n", name, best[name])
	}
	return nil
}

func benchMatches(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	build := func(s int64) (*sim.Simulator, error) {
		c := *cfg
		c.Seed = s
		return sim.NewGame(&c, nil, nil)
	}
	ens := sim.NewEnsemble(build, numRuns, cfg.Seed)

	fmt.Printf("benchmarking %d %s matches...\n", numRuns, cfg.Name)
	start := time.Now()
	results, err := ens.Run(cmd.Context(), sim.SimConfig(cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	steps := 0
	for _, r := range results {
		steps += r.StepsTaken
	}
	fmt.Printf("time: %v\n", elapsed)
	fmt.Printf("steps: %d\n", steps)
	fmt.Printf("steps/sec: %.0f\n", float64(steps)/elapsed.Seconds())
	return nil
}
