package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/boxdiff/internal/analysis"
	"github.com/san-kum/boxdiff/internal/config"
	"github.com/san-kum/boxdiff/internal/experiment"
	"github.com/san-kum/boxdiff/internal/lattice"
	"github.com/san-kum/boxdiff/internal/scenario"
	"github.com/san-kum/boxdiff/internal/storage"
	"github.com/san-kum/boxdiff/internal/viz"
)

var (
	dataDir string
	boxes   int
	hopRate float64
	dt      float64
	steps   int
	gap     int
	slices  int
	height  int
	outDir  string
	// Config file
	configFile string
	// Preset name
	preset string
	// Live view speed
	stepsPerFrame int
	verbose       bool
)

// main registers the boxdiff commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "boxdiff",
		Short: "1-D lattice diffusion and FRAP simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".boxdiff", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run an integration and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "print progress while integrating")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot diagnostic curves for a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	slicesCmd := &cobra.Command{
		Use:   "slices [run_id]",
		Short: "print time slices as terminal bar charts",
		Args:  cobra.ExactArgs(1),
		RunE:  sliceRun,
	}
	slicesCmd.Flags().IntVar(&slices, "slices", config.DefaultSlices, "number of time slices")
	slicesCmd.Flags().IntVar(&height, "height", 8, "bar chart height in rows")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render time slices to PNG bar charts",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().IntVar(&slices, "slices", config.DefaultSlices, "number of time slices")
	renderCmd.Flags().StringVar(&outDir, "out", "charts", "output directory")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run with live terminal visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&stepsPerFrame, "speed", 5, "integration steps per frame")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [kdt1] [kdt2] ...",
		Short: "compare stability across k*dt values",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareStability,
	}
	compareCmd.Flags().IntVar(&boxes, "n", config.DefaultN, "box count")
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	compareCmd.Flags().IntVar(&gap, "gap", config.DefaultGap, "bleached gap width (frap)")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, slicesCmd, renderCmd, liveCmd,
		exportJSONCmd, exportCSVCmd, presetsCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&boxes, "n", config.DefaultN, "box count")
	cmd.Flags().Float64Var(&hopRate, "k", config.DefaultK, "hopping rate")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time increment")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	cmd.Flags().IntVar(&gap, "gap", config.DefaultGap, "bleached gap width (frap)")
}

// progressObserver prints a line every tenth of the run.
type progressObserver struct {
	every int
	total int
}

func (p *progressObserver) OnColumn(col lattice.Dist, step int, t float64) {
	if p.every > 0 && step > 0 && step%p.every == 0 {
		fmt.Printf("  step %d/%d (t=%.2f, mass=%.9f)\n", step, p.total, t, col.Sum())
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]

	if preset != "" {
		cfg := config.GetPreset(scenarioName, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenarioName))
		}
		boxes = cfg.N
		hopRate = cfg.K
		dt = cfg.Dt
		steps = cfg.Steps
		if cfg.Gap != 0 {
			gap = cfg.Gap
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override config values
		if !cmd.Flags().Changed("n") {
			boxes = cfg.N
		}
		if !cmd.Flags().Changed("k") {
			hopRate = cfg.K
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("gap") {
			gap = cfg.Gap
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	latCfg := lattice.DefaultConfig(boxes, steps)
	latCfg.K = hopRate
	latCfg.Dt = dt

	exp := experiment.New(experiment.Config{
		Scenario: scenarioName,
		Gap:      gap,
		Lattice:  latCfg,
	})
	if err := exp.Setup(scenario.NewRegistry(), nil); err != nil {
		return err
	}
	if verbose {
		exp.Integrator().AddObserver(&progressObserver{every: steps / 10, total: steps - 1})
	}

	fmt.Printf("running %s (n=%d, k=%g, dt=%g, steps=%d)...\n", scenarioName, boxes, hopRate, dt, steps)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(scenarioName, latCfg, gap, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tN\tK\tDT\tSTEPS\tSTABLE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3f\t%.4f\t%d\t%v\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.K,
			run.Dt,
			run.Steps,
			run.Stable,
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

	field, _, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	fmt.Println(viz.Curve(analysis.CenterCurve(field), "center box probability"))
	fmt.Println()
	fmt.Println(viz.Curve(analysis.UniformityCurve(field), "max deviation from uniform"))
	fmt.Println()

	if meta.Scenario == "frap" && meta.Gap > 0 {
		lo, hi := scenario.GapBounds(meta.N, meta.Gap)
		curve := analysis.RecoveryCurve(field, lo, hi)
		fmt.Println(viz.Curve(curve, "bleached window recovery"))

		if ht := analysis.HalfTime(curve, meta.Dt); ht >= 0 {
			fmt.Printf("\nrecovery half-time: %.2f\n", ht)
		} else {
			fmt.Println("\nrecovery half-time: not reached")
		}
	}

	return nil
}

func sliceRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	field, times, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s, n=%d, k=%g, dt=%g)\n\n", meta.ID, meta.Scenario, meta.N, meta.K, meta.Dt)
	viz.Slices(os.Stdout, field, times, slices, height)
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	field, times, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	paths, err := viz.RenderPNG(field, times, slices, outDir, runID)
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]

	build, err := scenario.NewRegistry().Get(scenarioName)
	if err != nil {
		return err
	}
	initial, err := build(boxes, gap)
	if err != nil {
		return err
	}

	m := viz.NewModel(scenarioName, initial, hopRate, dt, stepsPerFrame)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	field, times, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, field, times)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	field, times, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, field, times)
}

func compareStability(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]

	if _, err := scenario.NewRegistry().Get(scenarioName); err != nil {
		return err
	}

	fmt.Printf("comparing k*dt values for %s (n=%d, steps=%d)\n\n", scenarioName, boxes, steps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "K*DT\tSTABLE\tMASS_DRIFT\tMIN_ENTRY\tFLATNESS")

	for _, arg := range args[1:] {
		kdt, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad k*dt value %q: %w", arg, err)
		}

		cfg := lattice.DefaultConfig(boxes, steps)
		cfg.K = 1.0
		cfg.Dt = kdt
		cfg.WarnUnstable = false

		exp := experiment.New(experiment.Config{Scenario: scenarioName, Gap: gap, Lattice: cfg})
		if err := exp.Setup(scenario.NewRegistry(), nil); err != nil {
			return err
		}

		result, err := exp.Run(context.Background())
		if err != nil {
			fmt.Fprintf(w, "%.3f\terror: %v\n", kdt, err)
			continue
		}

		fmt.Fprintf(w, "%.3f\t%v\t%.3e\t%.6f\t%.6f\n",
			kdt,
			cfg.Stable(),
			result.Metrics["mass_drift"],
			result.Field.Last().Min(),
			result.Metrics["flatness"],
		)
	}

	return w.Flush()
}
