package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jasontate/emotrix/internal/config"
	"github.com/jasontate/emotrix/internal/glyphs"
	"github.com/jasontate/emotrix/internal/gui"
	"github.com/jasontate/emotrix/internal/rain"
	"github.com/jasontate/emotrix/internal/viz"
)

var (
	configFile string
	preset     string
	corpusPath string
	fontPath   string

	seed     int64
	fps      int
	fontSize float64
	theme    string

	speedMin    float64
	speedMax    float64
	activeCols  float64
	readablePct int
	depthLayers int
	trailLen    int

	// Bench options
	benchTicks  int
	benchWidth  float64
	benchHeight float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emotrix",
		Short: "digital rain renderer",
		RunE:  runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "text file feeding readable chunks")
	rootCmd.PersistentFlags().StringVar(&fontPath, "font", "", "ttf font path (gui)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "rain in the terminal",
		RunE:  runTUI,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark headless ticks",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 600, "ticks to run")
	benchCmd.Flags().Float64Var(&benchWidth, "width", 1280, "canvas width")
	benchCmd.Flags().Float64Var(&benchHeight, "height", 720, "canvas height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
			return nil
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, tuiCmd, benchCmd} {
		addKnobFlags(cmd)
	}

	rootCmd.AddCommand(tuiCmd, benchCmd, presetsCmd, themesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addKnobFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "tick cadence")
	cmd.Flags().Float64Var(&fontSize, "font-size", config.DefaultFontSize, "nominal font size")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().Float64Var(&speedMin, "speed-min", 4.0, "min fall speed (rows/sec)")
	cmd.Flags().Float64Var(&speedMax, "speed-max", 9.0, "max fall speed (rows/sec)")
	cmd.Flags().Float64Var(&activeCols, "active", 0.50, "active column chance")
	cmd.Flags().IntVar(&readablePct, "readable", 35, "readable chunk percent")
	cmd.Flags().IntVar(&depthLayers, "layers", 2, "depth layers (1 or 2)")
	cmd.Flags().IntVar(&trailLen, "trail", 20, "visible trail length")
}

// buildConfig resolves preset, config file and flags in that order;
// explicitly set flags win.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("font-size") {
		cfg.FontSize = fontSize
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("speed-min") {
		cfg.Rain.SpeedMin = speedMin
	}
	if flags.Changed("speed-max") {
		cfg.Rain.SpeedMax = speedMax
	}
	if flags.Changed("active") {
		cfg.Rain.ActiveColumnChance = activeCols
	}
	if flags.Changed("readable") {
		cfg.Rain.ReadablePercent = readablePct
	}
	if flags.Changed("layers") {
		cfg.Rain.DepthLayers = depthLayers
	}
	if flags.Changed("trail") {
		cfg.Rain.TrailLen = trailLen
	}
	if corpusPath != "" {
		cfg.Corpus = corpusPath
	}
	return cfg, nil
}

// loadCorpus reads the corpus file. A missing or unreadable file is
// not fatal; the engine falls back to its built-in line.
func loadCorpus(cfg *config.Config) string {
	if cfg.Corpus == "" {
		return ""
	}
	data, err := os.ReadFile(cfg.Corpus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: corpus unreadable (%v), using fallback text\n", err)
		return ""
	}
	return string(data)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	gui.Run(cfg, loadCorpus(cfg), fontPath)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunInteractive(cfg, loadCorpus(cfg))
}

// countSurface tallies draw calls without rendering anything.
type countSurface struct {
	n int
}

func (c *countSurface) Clear(rain.Color) { c.n = 0 }

func (c *countSurface) Glyph(rune, glyphs.Set, float64, float64, rain.Color) { c.n++ }

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	engine := rain.New(cfg.Engine(benchWidth, benchHeight), nil)
	engine.LoadCorpus(loadCorpus(cfg))

	fmt.Printf("benchmarking %d ticks on %d cols x %d rows (%.0fx%.0f)\n\n",
		benchTicks, engine.Cols(), engine.Rows(), benchWidth, benchHeight)

	s := &countSurface{}
	series := make([]float64, 0, benchTicks)

	start := time.Now()
	for i := 0; i < benchTicks; i++ {
		engine.Tick(s)
		series = append(series, float64(s.n))
	}
	elapsed := time.Since(start)

	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("glyphs per tick"),
	)
	fmt.Println(graph)
	fmt.Println()

	ticksPerSec := float64(benchTicks) / elapsed.Seconds()
	fmt.Printf("ticks: %d\n", benchTicks)
	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("ticks/sec: %.0f (need %d)\n", ticksPerSec, cfg.FPS)

	return nil
}
