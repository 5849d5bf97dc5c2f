package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nvfig/internal/analysis"
	"nvfig/internal/anim"
	"nvfig/internal/config"
	"nvfig/internal/dataset"
	"nvfig/internal/figure"
	"nvfig/internal/fit"
	"nvfig/internal/physics"
	"nvfig/internal/viz"
)

var (
	outPath    string
	configFile string
	preset     string

	// kernel
	qMin, qMax float64
	dMin, dMax float64
	gridN      int

	// delta
	center    float64
	width     float64
	amplitude float64

	// readout
	targetSNR    float64
	evolutionMax float64

	// decay
	timeScale float64

	// sombrero
	muStart float64
	muEnd   float64
	lambda  float64
	frames  int
	delayCS int

	// explore
	mu float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nvfig",
		Short: "publication figures for NV-center magnetometry",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	kernelCmd := &cobra.Command{
		Use:   "kernel",
		Short: "momentum filter function heat map with ridge line",
		RunE:  renderKernel,
	}
	kernelCmd.Flags().Float64Var(&qMin, "q-min", 0.5, "momentum range start")
	kernelCmd.Flags().Float64Var(&qMax, "q-max", 8.0, "momentum range end")
	kernelCmd.Flags().Float64Var(&dMin, "d-min", 0.5, "distance range start")
	kernelCmd.Flags().Float64Var(&dMax, "d-max", 1.5, "distance range end")
	kernelCmd.Flags().IntVar(&gridN, "grid", config.DefaultGridN, "grid resolution per axis")
	kernelCmd.Flags().StringVar(&outPath, "out", "kernel.png", "output path")

	deltaCmd := &cobra.Command{
		Use:   "delta",
		Short: "temporal-frequency filter (gaussian delta approximation)",
		RunE:  renderDelta,
	}
	deltaCmd.Flags().Float64Var(&center, "center", 1.0, "peak center")
	deltaCmd.Flags().Float64Var(&width, "width", 0.10, "full width at half maximum")
	deltaCmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "peak amplitude")
	deltaCmd.Flags().StringVar(&outPath, "out", "delta.png", "output path")

	readoutCmd := &cobra.Command{
		Use:   "readout",
		Short: "averaging time to target SNR vs evolution time",
		RunE:  renderReadout,
	}
	readoutCmd.Flags().Float64Var(&targetSNR, "target-snr", config.DefaultTargetSNR, "target signal-to-noise ratio")
	readoutCmd.Flags().Float64Var(&evolutionMax, "evolution-max", 0.1, "evolution time sweep end (s)")
	readoutCmd.Flags().StringVar(&outPath, "out", "readout.png", "output path")

	decayCmd := &cobra.Command{
		Use:   "decay [csv]",
		Short: "fit and plot stretched-exponential relaxation data",
		Args:  cobra.ExactArgs(1),
		RunE:  renderDecay,
	}
	decayCmd.Flags().Float64Var(&timeScale, "time-scale", 1000, "stored-to-plotted time unit factor")
	decayCmd.Flags().StringVar(&outPath, "out", "decay.png", "output path")

	sombreroCmd := &cobra.Command{
		Use:   "sombrero",
		Short: "symmetry-breaking animation of the sombrero potential",
		RunE:  renderSombrero,
	}
	sombreroCmd.Flags().Float64Var(&muStart, "mu-start", 2.0, "initial quadratic coefficient")
	sombreroCmd.Flags().Float64Var(&muEnd, "mu-end", -0.5, "final quadratic coefficient")
	sombreroCmd.Flags().Float64Var(&lambda, "lambda", 1.0, "quartic coefficient")
	sombreroCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	sombreroCmd.Flags().IntVar(&delayCS, "delay", config.DefaultFrameDelayCS, "frame delay (1/100 s)")
	sombreroCmd.Flags().StringVar(&outPath, "out", "sombrero_symmetry_breaking.gif", "output path")

	scalesCmd := &cobra.Command{
		Use:   "scales [out_dir]",
		Short: "phenomena vs measurable length scale charts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScales,
	}

	speedupCmd := &cobra.Command{
		Use:   "speedup [in.gif] [out.gif]",
		Short: "double the playback speed of a GIF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := anim.DoubleSpeed(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("saved doubled-speed gif: %s\n", args[1])
			return nil
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview [delta|readout|ridge]",
		Short: "terminal preview of a figure curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive sombrero potential explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplore(mu, lambda)
		},
	}
	exploreCmd.Flags().Float64Var(&mu, "mu", 2.0, "quadratic coefficient")
	exploreCmd.Flags().Float64Var(&lambda, "lambda", 1.0, "quartic coefficient")

	presetsCmd := &cobra.Command{
		Use:   "presets [figure]",
		Short: "list available presets for a figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for figure: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(kernelCmd, deltaCmd, readoutCmd, decayCmd, sombreroCmd,
		scalesCmd, speedupCmd, previewCmd, exploreCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, then config file; flags changed on the
// command line take precedence in the per-command handlers.
func loadConfig(figureName string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(figureName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(figureName))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	return cfg, nil
}

func renderKernel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("kernel")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("q-min") {
		qMin = cfg.Kernel.QMin
	}
	if !cmd.Flags().Changed("q-max") {
		qMax = cfg.Kernel.QMax
	}
	if !cmd.Flags().Changed("d-min") {
		dMin = cfg.Kernel.DMin
	}
	if !cmd.Flags().Changed("d-max") {
		dMax = cfg.Kernel.DMax
	}
	if !cmd.Flags().Changed("grid") {
		gridN = cfg.Kernel.GridN
	}

	if err := figure.Kernel(qMin, qMax, dMin, dMax, gridN, outPath); err != nil {
		return err
	}

	ridge, err := analysis.KernelRidge(physics.Linspace(dMin, dMax, gridN), qMin, qMax)
	if err != nil {
		return err
	}
	slope, err := analysis.RidgeSlope(ridge)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outPath)
	fmt.Printf("ridge slope in log-log space: %.4f\n", slope)
	return nil
}

func renderDelta(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("delta")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("center") {
		center = cfg.Delta.Center
	}
	if !cmd.Flags().Changed("width") {
		width = cfg.Delta.Width
	}
	if !cmd.Flags().Changed("amplitude") {
		amplitude = cfg.Delta.Amplitude
	}

	peak, err := physics.NewDeltaPeak(center, width, amplitude)
	if err != nil {
		return err
	}
	if err := figure.Delta(peak, cfg.Delta.XMin, cfg.Delta.XMax, outPath); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outPath)
	return nil
}

func renderReadout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("readout")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("target-snr") {
		targetSNR = cfg.Readout.TargetSNR
	}
	if !cmd.Flags().Changed("evolution-max") {
		evolutionMax = cfg.Readout.EvolutionMax
	}

	systems := make([]physics.AcquisitionParams, len(cfg.Readout.Systems))
	for i, s := range cfg.Readout.Systems {
		systems[i] = physics.AcquisitionParams{
			PhotonCountRate: s.PhotonCountRate,
			ReadoutTime:     s.ReadoutTime,
			Contrast:        s.Contrast,
		}
	}

	if err := figure.Readout(systems, targetSNR, 0, evolutionMax, outPath); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outPath)
	return nil
}

func renderDecay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("decay")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("time-scale") {
		timeScale = cfg.Decay.TimeScale
	}

	series, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	times := series.Times(timeScale)
	signals := series.Signals()
	sigmas := series.Errors()

	res, err := fit.StretchedExpFit(times, signals, sigmas, fit.DefaultGuess(times, signals))
	if err != nil {
		return err
	}

	fmt.Printf("fit: A = %.4g +/- %.2g\n", res.Amplitude.Value, res.Amplitude.Stderr)
	fmt.Printf("     T1 = %.4g +/- %.2g\n", res.DecayTime.Value, res.DecayTime.Stderr)
	fmt.Printf("     gamma = %.4g +/- %.2g\n", res.Stretch.Value, res.Stretch.Stderr)

	if err := figure.Decay(series, timeScale, res, outPath); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outPath)
	return nil
}

func renderSombrero(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("sombrero")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("mu-start") {
		muStart = cfg.Sombrero.MuStart
	}
	if !cmd.Flags().Changed("mu-end") {
		muEnd = cfg.Sombrero.MuEnd
	}
	if !cmd.Flags().Changed("lambda") {
		lambda = cfg.Sombrero.Lambda
	}
	if !cmd.Flags().Changed("frames") {
		frames = cfg.Sombrero.Frames
	}
	if !cmd.Flags().Changed("delay") {
		delayCS = cfg.Sombrero.FrameDelayCS
	}

	fmt.Printf("rendering %d frames...\n", frames)
	imgs, err := figure.SombreroFrames(muStart, muEnd, lambda, frames,
		cfg.Sombrero.Extent, cfg.Sombrero.GridN, cfg.Sombrero.ZMin, cfg.Sombrero.ZMax)
	if err != nil {
		return err
	}

	if err := anim.Encode(imgs, delayCS, outPath); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", outPath)
	return nil
}

func renderScales(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	phenomena := filepath.Join(dir, "phenomena_scales.png")
	if err := figure.Scales("Phenomena Length Scales", figure.PhenomenaScales(), phenomena); err != nil {
		return err
	}
	measurable := filepath.Join(dir, "measurable_scales.png")
	if err := figure.Scales("Measurable Length Scales", figure.MeasurableScales(), measurable); err != nil {
		return err
	}

	fmt.Printf("saved %s\n", phenomena)
	fmt.Printf("saved %s\n", measurable)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	switch args[0] {
	case "delta":
		peak, err := physics.NewDeltaPeak(cfg.Delta.Center, cfg.Delta.Width, cfg.Delta.Amplitude)
		if err != nil {
			return err
		}
		fmt.Println(viz.DeltaPreview(peak, cfg.Delta.XMin, cfg.Delta.XMax))
	case "readout":
		if len(cfg.Readout.Systems) == 0 {
			return fmt.Errorf("no acquisition systems configured")
		}
		s := cfg.Readout.Systems[0]
		params := physics.AcquisitionParams{
			PhotonCountRate: s.PhotonCountRate,
			ReadoutTime:     s.ReadoutTime,
			Contrast:        s.Contrast,
		}
		out, err := viz.ReadoutPreview(params, cfg.Readout.TargetSNR, 0, cfg.Readout.EvolutionMax)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "ridge":
		out, err := viz.RidgePreview(cfg.Kernel.DMin, cfg.Kernel.DMax, 80)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		return fmt.Errorf("unknown preview: %s (want delta, readout or ridge)", args[0])
	}
	return nil
}
