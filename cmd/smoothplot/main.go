// Command smoothplot drives a synthetic pointer path through the smoother,
// writes the SVG figures and prints how closely each trace follows the
// clean path.
//
// Usage:
//
//	smoothplot [flags]
//
// Examples:
//
//	smoothplot -tremor 6 -open
//	smoothplot -drift 15 -drift-dir 90 -window 6 -alpha 0.3
//	smoothplot -config smooth.toml -out plots
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"github.com/cwbudde/algo-smooth/dsp/smoother"
	"github.com/cwbudde/algo-smooth/internal/config"
	"github.com/cwbudde/algo-smooth/internal/log"
	"github.com/cwbudde/algo-smooth/measure/jitter"
	"github.com/cwbudde/algo-smooth/measure/response"
	"github.com/cwbudde/algo-smooth/plot"
)

// path describes the synthetic pointer motion.
type path struct {
	frames int
	fps    float64
	radius float64
	freqHz float64
}

func main() {
	configPath := flag.String("config", "", "optional TOML config supplying smoother and plot settings")
	logPath := flag.String("log", "", "write a JSON log to this file")
	out := flag.String("out", "", "output directory (default from config: output)")
	frames := flag.Int("frames", 300, "number of samples to generate")
	fps := flag.Float64("fps", 60, "sample rate in Hz")
	radius := flag.Float64("radius", 150, "circle radius in pixels")
	freq := flag.Float64("freq", 0.5, "circle revolutions per second")
	window := flag.Int("window", 0, "moving average window (default from config)")
	alpha := flag.Float64("alpha", 0, "exponential smoothing factor (default from config)")
	tremor := flag.Float64("tremor", 5, "tremor intensity in pixels, 0 disables")
	tremorFreq := flag.Float64("tremor-freq", 10, "tremor frequency in Hz")
	drift := flag.Float64("drift", 0, "drift speed in px/s, 0 disables")
	driftDir := flag.Float64("drift-dir", 0, "drift direction in degrees")
	seed := flag.Int64("seed", 1, "tremor noise seed")
	open := flag.Bool("open", false, "open the figures in the default viewer")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smoothplot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Smooths a synthetic circle with tremor and drift, writes SVG plots\n")
		fmt.Fprintf(os.Stderr, "and prints deviation metrics per trace.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fail(err)
		}
	}
	cfg.Tremor.Enabled = *tremor > 0
	cfg.Tremor.Intensity = *tremor
	cfg.Tremor.Frequency = *tremorFreq
	cfg.Tremor.Seed = *seed
	cfg.Drift.Enabled = *drift > 0
	cfg.Drift.Speed = *drift
	cfg.Drift.Direction = *driftDir
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "window":
			cfg.Smoother.WindowSize = *window
		case "alpha":
			cfg.Smoother.Alpha = *alpha
		case "out":
			cfg.Plot.OutputDir = *out
		}
	})
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	var logger *zap.Logger
	if *logPath != "" {
		l, err := log.NewFileLogger(*logPath, "info")
		if err != nil {
			fail(err)
		}
		defer l.Sync()
		logger = l
	}
	logger = log.Adjust(logger)

	p := path{frames: *frames, fps: *fps, radius: *radius, freqHz: *freq}
	s, clean, err := simulate(cfg, p)
	if err != nil {
		fail(err)
	}

	opts := plot.DefaultOptions()
	opts.GridSize = cfg.Plot.GridSize
	files, err := plot.WriteFiles(cfg.Plot.OutputDir, s, time.Now(), opts)
	if err != nil {
		fail(err)
	}
	logger.Info("plot written", log.PathField(files.Trace3D), zap.String("density", files.Density))
	fmt.Printf("wrote %s\n", files.Trace3D)
	if files.Density != "" {
		fmt.Printf("wrote %s\n", files.Density)
	}
	fmt.Println()

	if err := report(os.Stdout, s, clean, p.fps); err != nil {
		fail(err)
	}

	if *open {
		for _, f := range []string{files.Trace3D, files.Density} {
			if f == "" {
				continue
			}
			if err := browser.OpenFile(f); err != nil {
				logger.Warn("open failed", log.PathField(f), zap.Error(err))
				fmt.Fprintf(os.Stderr, "warning: open %s: %v\n", f, err)
			}
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// simulate feeds the disturbed circle through a fresh smoother and returns
// it with the undisturbed path.
func simulate(cfg *config.Config, p path) (*smoother.Smoother, []geom.Point, error) {
	gen := signal.NewGenerator(core.WithFrameRate(p.fps))
	center := geom.Pt(p.radius*1.5, p.radius*1.5)
	clean, err := gen.Circle(center, p.radius, p.freqHz, p.frames)
	if err != nil {
		return nil, nil, err
	}

	s, err := smoother.New(cfg.SmootherConfig())
	if err != nil {
		return nil, nil, err
	}
	tr := signal.NewTremor(cfg.Tremor.Seed)
	tr.SetIntensity(cfg.Tremor.Intensity)
	tr.SetFrequency(cfg.Tremor.Frequency)
	tr.SetEnabled(cfg.Tremor.Enabled)
	dr := signal.NewDrift()
	dr.SetSpeed(cfg.Drift.Speed)
	dr.SetDirection(cfg.Drift.Direction)
	dr.SetEnabled(cfg.Drift.Enabled)

	dt := gen.Config().FrameInterval()
	for _, pt := range clean {
		in := dr.Apply(tr.Apply(pt, dt), dt)
		s.AddSample(in.X, in.Y, true, dr.Offset())
	}
	return s, clean, nil
}

// report prints per-variant deviation from the clean path and the dominant
// frequency of the disturbance.
func report(w io.Writer, s *smoother.Smoother, clean []geom.Point, fps float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Trace\tMean [px]\tRMS [px]\tP95 [px]\tMax [px]\tPath Ratio\tLag [frames]\n")
	fmt.Fprintf(tw, "-----\t---------\t--------\t--------\t--------\t----------\t------------\n")
	for _, v := range smoother.Variants() {
		pts := s.Trace(v).Points()
		if len(pts) == 0 {
			continue
		}
		r, err := jitter.Compare(clean, pts, jitter.Options{MaxLag: 30})
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%d\n",
			plot.DefaultStyle(v).Name, r.MeanDeviation, r.RMSDeviation, r.P95Deviation, r.MaxDeviation, r.PathRatio, r.Lag)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	f, err := dominantFrequency(s, clean, fps)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\ndominant disturbance frequency: %.2f Hz\n", f)
	return err
}

// dominantFrequency locates the strongest periodic component of the x
// displacement between the drift-free input and the clean path.
func dominantFrequency(s *smoother.Smoother, clean []geom.Point, fps float64) (float64, error) {
	residual := s.DriftCorrectedTrace().Points()
	if len(residual) == 0 {
		residual = s.RawTrace().Points()
	}
	n := min(len(residual), len(clean))
	xs := make([]float64, n)
	for i := range n {
		xs[i] = residual[len(residual)-n+i].X - clean[len(clean)-n+i].X
	}
	return response.DominantFrequency(xs, fps)
}
