package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lissa/internal/analysis"
	"github.com/san-kum/lissa/internal/anim"
	"github.com/san-kum/lissa/internal/audio"
	"github.com/san-kum/lissa/internal/config"
	"github.com/san-kum/lissa/internal/figure"
	"github.com/san-kum/lissa/internal/gui"
	"github.com/san-kum/lissa/internal/render"
	"github.com/san-kum/lissa/internal/tui"
)

var (
	configFile string
	preset     string
	// Figure parameters
	leftFreq  float64
	rightFreq float64
	phaseDeg  float64
	speed     float64
	trail     int
	theme     string
	// Audio output
	audioOn bool
	backend string
	gain    float64
	// One-shot render
	renderWidth  int
	renderHeight int
	atMs         int64
	// Analyze capture window
	window float64
	// Bench shape
	frames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lissa",
		Short: "lissajous figure lab with stereo sonification",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&leftFreq, "left", config.DefaultLeftFreq, "left channel frequency (hz)")
	rootCmd.PersistentFlags().Float64Var(&rightFreq, "right", config.DefaultRightFreq, "right channel frequency (hz)")
	rootCmd.PersistentFlags().Float64Var(&phaseDeg, "phase", config.DefaultPhase, "phase offset (degrees)")
	rootCmd.PersistentFlags().Float64Var(&speed, "speed", config.DefaultSpeed, "animation speed multiplier")
	rootCmd.PersistentFlags().IntVar(&trail, "trail", config.DefaultTrail, "trail length (points)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().BoolVar(&audioOn, "audio", false, "start with audio enabled")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", audio.BackendAuto, "audio backend (auto|portaudio|beep|off)")
	rootCmd.PersistentFlags().Float64Var(&gain, "gain", config.DefaultGain, "audio gain [0,1]")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "render the figure in a raylib window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print one frame as braille art",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&renderWidth, "width", 60, "canvas width (cells)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 30, "canvas height (cells)")
	renderCmd.Flags().Int64Var(&atMs, "at", 0, "animation time to render at (ms)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "spectrum analysis of the rendered tones",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().Float64Var(&window, "window", 0.25, "analysis window (seconds)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sampling and rendering",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 300, "frames per trail length")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  runPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "lissa.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, renderCmd, analyzeCmd, benchCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: defaults, then
// preset, then config file, then explicitly set CLI flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		tmp := *p
		cfg = &tmp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("left") {
		cfg.LeftFrequency = leftFreq
	}
	if flags.Changed("right") {
		cfg.RightFrequency = rightFreq
	}
	if flags.Changed("phase") {
		cfg.PhaseDegrees = phaseDeg
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("trail") {
		cfg.TrailLength = trail
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled = audioOn
	}
	if flags.Changed("backend") {
		cfg.Audio.Backend = backend
	}
	if flags.Changed("gain") {
		cfg.Audio.Gain = gain
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if renderWidth < 1 || renderHeight < 1 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", renderWidth, renderHeight)
	}
	p := cfg.Params()

	canvas := render.NewCanvas(renderWidth, renderHeight)
	origin := time.Unix(0, 0)
	at := origin.Add(time.Duration(atMs) * time.Millisecond)
	pts := figure.Sample(p, origin, at, p.Trail)
	render.NewRenderer().Render(canvas, pts, p)

	fmt.Print(canvas.String())

	r := figure.Reduce(p.LeftFreq, p.RightFreq)
	pat := figure.Classify(p)
	fmt.Printf("\n%s  %s  period %d cycles\n", pat.Name, r.String(), figure.PeriodCycles(r))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params()

	n := int(window * audio.SampleRate)
	if n < 2 {
		return fmt.Errorf("analysis window too short: %.3fs", window)
	}
	left, right := audio.RenderTones(p.LeftFreq, p.RightFreq, p.PhaseDeg*math.Pi/180, audio.SampleRate, n)

	fmt.Printf("tone analysis: left %.0f hz, right %.0f hz, phase %.0f deg\n\n", p.LeftFreq, p.RightFreq, p.PhaseDeg)

	channels := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"left", left, p.LeftFreq},
		{"right", right, p.RightFreq},
	}

	binWidth := float64(audio.SampleRate) / float64(n)
	for _, ch := range channels {
		ps := analysis.PowerSpectrum(ch.data)

		// plot up to just past the top of the tunable range
		maxBin := int(6000 / binWidth)
		if maxBin > len(ps) {
			maxBin = len(ps)
		}
		graph := asciigraph.Plot(ps[:maxBin],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s channel power spectrum (0-%.0f hz)", ch.name, float64(maxBin)*binWidth)),
		)
		fmt.Println(graph)

		dom := analysis.DominantFrequency(ch.data, audio.SampleRate)
		fmt.Printf("dominant: %.1f hz (expected %.0f, bin width %.1f hz)\n\n", dom, ch.expected, binWidth)
	}

	r := figure.Reduce(p.LeftFreq, p.RightFreq)
	fmt.Printf("ratio %s, pattern %s\n", r.String(), figure.Classify(p).Name)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	trails := []int{1000, 4000, 8000, 16384}

	fmt.Printf("benchmarking sampler and render passes (%d frames each)\n\n", frames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRAIL\tFRAMES\tTIME\tNS/FRAME\tFRAMES/SEC\tPOINTS/SEC")

	for _, n := range trails {
		p := figure.Defaults()
		p.Trail = n
		sched := anim.New(figure.NewStore(p), render.NewRenderer(), render.Discard)
		origin := time.Unix(0, 0)
		sched.Start(origin)

		start := time.Now()
		for i := 0; i < frames; i++ {
			sched.Tick(origin.Add(time.Duration(i) * 16 * time.Millisecond))
		}
		elapsed := time.Since(start)

		fps := float64(frames) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%d\t%.0f\t%.2e\n",
			n, frames, elapsed.Round(time.Microsecond), elapsed.Nanoseconds()/int64(frames), fps, fps*float64(n))
	}

	return w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEFT\tRIGHT\tRATIO\tPHASE\tPATTERN")

	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		p := c.Params()
		r := figure.Reduce(p.LeftFreq, p.RightFreq)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%s\t%.0f\t%s\n",
			name, p.LeftFreq, p.RightFreq, r.String(), p.PhaseDeg, figure.Classify(p).Name)
	}

	return w.Flush()
}
