package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

// MinDensityPoints is the raw sample count below which no density figure
// is written.
const MinDensityPoints = 10

// Files lists the figures written by WriteFiles. Density is empty when
// there was too little data for it.
type Files struct {
	Trace3D string
	Density string
}

// SeriesFromSmoother collects every variant's recorded trace in display
// order, styled by style (DefaultStyle when nil).
func SeriesFromSmoother(s *smoother.Smoother, style func(smoother.Variant) Style) []Series {
	if style == nil {
		style = DefaultStyle
	}
	out := make([]Series, 0, len(smoother.Variants()))
	for _, v := range smoother.Variants() {
		out = append(out, Series{Style: style(v), Points: s.Trace(v).Points()})
	}
	return out
}

// WriteFiles renders the smoother's traces into dir as
// plot_3d_<unix>.svg and map_3d_<unix>.svg, creating dir if needed.
func WriteFiles(dir string, s *smoother.Smoother, now time.Time, opts Options) (Files, error) {
	if s.RawTrace().Len() == 0 {
		return Files{}, ErrNoData
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("plot: %w", err)
	}
	opts = opts.withDefaults()
	opts.WindowSize = s.WindowSize()
	opts.Alpha = s.Alpha()
	series := SeriesFromSmoother(s, nil)

	var files Files
	stamp := now.Unix()
	files.Trace3D = filepath.Join(dir, fmt.Sprintf("plot_3d_%d.svg", stamp))
	if err := writeFile(files.Trace3D, func(f *os.File) error { return Trace3D(f, series, opts) }); err != nil {
		return Files{}, err
	}

	if s.RawTrace().Len() < MinDensityPoints {
		return files, nil
	}
	panels := make([]Panel, len(series))
	for i, se := range series {
		panels[i].Style = se.Style
		if len(se.Points) == 0 {
			continue
		}
		g, err := DensityMap(se.Points, opts.GridSize)
		if err != nil {
			return files, err
		}
		panels[i].Grid = g
	}
	files.Density = filepath.Join(dir, fmt.Sprintf("map_3d_%d.svg", stamp))
	if err := writeFile(files.Density, func(f *os.File) error { return DensitySVG(f, panels, opts) }); err != nil {
		return files, err
	}
	return files, nil
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
