package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pixelviz/internal/anim"
	"github.com/san-kum/pixelviz/internal/config"
	"github.com/san-kum/pixelviz/internal/export"
	"github.com/san-kum/pixelviz/internal/render"
	"github.com/san-kum/pixelviz/internal/rule"
	"github.com/san-kum/pixelviz/internal/storage"
	"github.com/san-kum/pixelviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
	intervalMs int
	variations int
	width      int
	height     int
	radius     float64
	tolerance  float64
	selector   int
	seed       int64
	policy     string
	// headless render
	frames   int
	scale    int
	realtime bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pixelviz", ReportTimestamp: true})

// main registers the commands and runs the live view when no subcommand is
// given. It exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pixelviz",
		Short: "per-pixel animated color rules",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pixelviz", "recording directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addRuleFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [rule]",
		Short: "animate a rule in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRuleFlags(runCmd)

	renderCmd := &cobra.Command{
		Use:   "render [rule]",
		Short: "render frames headless and save a recording",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	addRuleFlags(renderCmd)
	renderCmd.Flags().IntVar(&frames, "frames", 0, "frames to render (default one full cycle)")
	renderCmd.Flags().IntVar(&scale, "scale", 4, "export upscale factor")
	renderCmd.Flags().BoolVar(&realtime, "realtime", false, "tick on the configured interval instead of as fast as possible")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRecordings,
	}

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "list available rules",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range rule.NewRegistry().List() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [rule]",
		Short: "list available presets for a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for rule: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, renderCmd, listCmd, rulesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRuleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "draw interval in milliseconds")
	f.IntVar(&variations, "variations", config.DefaultVariations, "phase steps per cycle")
	f.IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	f.IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels (even for the terminal view)")
	f.Float64Var(&radius, "radius", 0, "circular radius (0 = width/4)")
	f.Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "circular band tolerance")
	f.IntVar(&selector, "selector", config.DefaultSelector, "demo selector 0-6")
	f.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	f.StringVar(&policy, "policy", config.DefaultPolicy, "channel write policy (clamp|wrap)")
}

// loadConfig layers defaults, the config file, a preset, the rule argument
// and explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	ruleName := cfg.Rule
	if len(args) > 0 {
		ruleName = args[0]
	}
	if preset != "" {
		p := config.GetPreset(ruleName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(ruleName))
		}
		cfg = p
	}
	cfg.Rule = ruleName

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("variations") {
		cfg.Variations = variations
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("radius") {
		cfg.Params.Radius = radius
	}
	if flags.Changed("tolerance") {
		cfg.Params.Tolerance = tolerance
	}
	if flags.Changed("selector") {
		cfg.Params.Selector = selector
	}
	if flags.Changed("policy") {
		cfg.Policy = policy
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildRule(cfg *config.Config) (rule.Rule, error) {
	src := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15))
	return rule.NewRegistry().Get(cfg.Rule, cfg.RuleParams(), src)
}

func buildDriver(cfg *config.Config, surface anim.Surface) (*anim.Driver, error) {
	r, err := buildRule(cfg)
	if err != nil {
		return nil, err
	}
	p, err := cfg.ChannelPolicy()
	if err != nil {
		return nil, err
	}
	return anim.New(surface, r, render.NewRenderer(p),
		anim.Config{Interval: cfg.Interval(), Variations: cfg.Variations},
		anim.WithLogger(logger))
}

func recordingMeta(cfg *config.Config) storage.Recording {
	return storage.Recording{
		Rule:       cfg.Rule,
		Params:     cfg.RuleParams(),
		Seed:       cfg.Seed,
		Width:      cfg.Width,
		Height:     cfg.Height,
		IntervalMs: cfg.IntervalMs,
		Variations: cfg.Variations,
		Policy:     cfg.Policy,
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	// two pixels per terminal row
	rows := (cfg.Height + 1) / 2
	cfg.Height = rows * 2
	screen := viz.NewScreen(cfg.Width, rows)

	d, err := buildDriver(cfg, screen)
	if err != nil {
		return err
	}

	// the alt screen owns stdout; keep logs to errors only
	logger.SetLevel(log.ErrorLevel)
	return viz.Run(d, screen, viz.Options{
		RuleName: cfg.Rule,
		Store:    storage.New(dataDir),
		Meta:     recordingMeta(cfg),
		Logger:   logger,
	})
}

// statsSurface keeps the per-frame stats of a headless run.
type statsSurface struct {
	w, h  int
	stats []render.Stats
}

func (s *statsSurface) Size() (int, int) { return s.w, s.h }

func (s *statsSurface) Present(f *render.Frame) error {
	s.stats = append(s.stats, render.Measure(f))
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	n := frames
	if n <= 0 {
		n = cfg.Variations
	}

	rec := export.NewRecorder(cfg.Width, cfg.Height, 0)
	stats := &statsSurface{w: cfg.Width, h: cfg.Height}
	d, err := buildDriver(cfg, anim.Multi(rec, stats))
	if err != nil {
		return err
	}

	logger.Info("rendering", "rule", cfg.Rule, "frames", n, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	start := time.Now()
	if realtime {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		ctx, stop := context.WithTimeout(ctx, time.Duration(n)*cfg.Interval()+cfg.Interval()/2)
		err := d.Run(ctx)
		stop()
		cancel()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	} else {
		for i := 0; i < n; i++ {
			if err := d.Tick(); err != nil {
				return err
			}
		}
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(recordingMeta(cfg), rec.Frames(), scale)
	if err != nil {
		return err
	}

	lum := make([]float64, len(stats.stats))
	var coverage float64
	for i, s := range stats.stats {
		lum[i] = s.MeanLuminance
		coverage += s.Coverage
	}
	if len(stats.stats) > 0 {
		coverage /= float64(len(stats.stats))
		fmt.Println(asciigraph.Plot(lum, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("mean luminance per frame")))
		fmt.Println()
	}

	fmt.Printf("saved: %s\n", id)
	fmt.Printf("frames: %d  final phase: %.3f  elapsed: %s  mean lit: %.1f%%\n",
		d.Ticks(), d.Phase(), elapsed.Round(time.Millisecond), coverage*100)
	fmt.Printf("files: %s\n", st.Path(id, ""))
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recordings")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRULE\tSIZE\tFRAMES\tPOLICY\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\t%s\n",
			r.ID, r.Rule, r.Width, r.Height, r.Frames, r.Policy, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
