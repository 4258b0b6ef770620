package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("plot: no data")

// Series is one styled trace.
type Series struct {
	Style  Style
	Points []geom.Point
}

// Options configures figure rendering.
type Options struct {
	Width, Height int
	// Elevation and Azimuth set the 3D view angle in degrees.
	Elevation, Azimuth float64
	// WindowSize and Alpha are shown in the title.
	WindowSize int
	Alpha      float64
	// GridSize is the density map resolution per axis.
	GridSize int
}

// DefaultOptions returns the standard figure layout.
func DefaultOptions() Options {
	return Options{
		Width:     1200,
		Height:    1000,
		Elevation: 20,
		Azimuth:   45,
		GridSize:  30,
	}
}

// withDefaults fills zero dimensions from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.GridSize == 0 {
		o.GridSize = d.GridSize
	}
	return o
}

// projector maps (x, y, sample index) into figure coordinates.
type projector struct {
	min, span  geom.Point
	depth      float64
	cx, cy     float64
	scale      float64
	sinA, cosA float64
	sinE, cosE float64
}

func newProjector(series []Series, opts Options) (projector, bool) {
	lo := geom.Pt(math.Inf(1), math.Inf(1))
	hi := geom.Pt(math.Inf(-1), math.Inf(-1))
	longest := 0
	for _, s := range series {
		longest = max(longest, len(s.Points))
		for _, p := range s.Points {
			lo = geom.Pt(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
			hi = geom.Pt(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
		}
	}
	if longest == 0 {
		return projector{}, false
	}

	span := hi.Sub(lo)
	if span.X == 0 {
		span.X = 1
	}
	if span.Y == 0 {
		span.Y = 1
	}
	az := opts.Azimuth * math.Pi / 180
	el := opts.Elevation * math.Pi / 180
	return projector{
		min:   lo,
		span:  span,
		depth: float64(max(longest-1, 1)),
		cx:    float64(opts.Width) / 2,
		cy:    float64(opts.Height)/2 + 30,
		scale: 0.55 * float64(min(opts.Width, opts.Height)),
		sinA:  math.Sin(az),
		cosA:  math.Cos(az),
		sinE:  math.Sin(el),
		cosE:  math.Cos(el),
	}, true
}

// unit projects normalized coordinates in [-0.5, 0.5].
func (p projector) unit(x, y, z float64) (float64, float64) {
	a := x*p.cosA - y*p.sinA
	b := x*p.sinA + y*p.cosA
	return p.cx + p.scale*a, p.cy + p.scale*(b*p.sinE-z*p.cosE)
}

func (p projector) project(pt geom.Point, index int) (float64, float64) {
	return p.unit(
		(pt.X-p.min.X)/p.span.X-0.5,
		(pt.Y-p.min.Y)/p.span.Y-0.5,
		float64(index)/p.depth-0.5,
	)
}

// Trace3D writes an SVG showing every series in 3D, with the sample index
// as the vertical axis. Empty series are skipped.
func Trace3D(w io.Writer, series []Series, opts Options) error {
	opts = opts.withDefaults()
	proj, ok := newProjector(series, opts)
	if !ok {
		return ErrNoData
	}

	s := newSVGWriter(w, opts.Width, opts.Height)
	s.text(float64(opts.Width)/2, 32, 20, "middle", "bold", "3D Visualization of Input Smoothing")
	s.text(float64(opts.Width)/2, 56, 16, "middle", "bold",
		fmt.Sprintf("Window Size: %d, Alpha: %.2f", opts.WindowSize, opts.Alpha))

	drawAxes(s, proj)

	var sb strings.Builder
	legend := 0
	for _, se := range series {
		if len(se.Points) == 0 {
			continue
		}
		sb.Reset()
		for i, pt := range se.Points {
			x, y := proj.project(pt, i)
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		}
		s.printf(`<polyline fill="none" stroke="%s" stroke-width="%.1f" stroke-opacity="0.8" points="%s"/>`+"\n",
			se.Style.Color, se.Style.Width, sb.String())

		y := 90 + 22*float64(legend)
		s.line(24, y-5, 54, y-5, se.Style.Color, 3)
		s.text(62, y, 14, "start", "normal", se.Style.Name)
		legend++
	}
	return s.close()
}

func drawAxes(s *svgWriter, p projector) {
	const grey = "#999999"
	ox, oy := p.unit(-0.5, -0.5, -0.5)
	axes := []struct {
		x, y, z float64
		label   string
	}{
		{0.5, -0.5, -0.5, "X Position"},
		{-0.5, 0.5, -0.5, "Y Position"},
		{-0.5, -0.5, 0.5, "Time (samples)"},
	}
	for _, a := range axes {
		ex, ey := p.unit(a.x, a.y, a.z)
		s.line(ox, oy, ex, ey, grey, 1)
		s.text(ex, ey-6, 12, "middle", "normal", a.label)
	}
}
