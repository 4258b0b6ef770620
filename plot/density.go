package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// ErrInvalidGrid is returned for a density grid smaller than 2x2.
var ErrInvalidGrid = errors.New("plot: grid size must be at least 2")

// Grid is a square kernel density estimate normalized to a peak of 1.
type Grid struct {
	Size int
	// Min and Max are the padded bounds the grid spans.
	Min, Max geom.Point
	// Values is row-major: Values[iy*Size+ix].
	Values []float64
}

// At returns the density at column ix, row iy.
func (g *Grid) At(ix, iy int) float64 {
	return g.Values[iy*g.Size+ix]
}

// Coord returns the position of grid node (ix, iy).
func (g *Grid) Coord(ix, iy int) geom.Point {
	return geom.Pt(linspace(g.Min.X, g.Max.X, g.Size, ix), linspace(g.Min.Y, g.Max.Y, g.Size, iy))
}

func linspace(lo, hi float64, n, i int) float64 {
	return lo + (hi-lo)*float64(i)/float64(n-1)
}

// DensityMap accumulates a gaussian kernel per point on a gridSize x
// gridSize lattice. Bounds are padded by 10% of the range on every side and
// the kernel width is a tenth of the smaller range.
func DensityMap(points []geom.Point, gridSize int) (*Grid, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	if gridSize < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrid, gridSize)
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = geom.Pt(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = geom.Pt(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	span := hi.Sub(lo)
	pad := span.Scale(0.1)
	g := &Grid{
		Size:   gridSize,
		Min:    lo.Sub(pad),
		Max:    hi.Add(pad),
		Values: make([]float64, gridSize*gridSize),
	}

	sigma := math.Min(span.X, span.Y) / 10
	if sigma == 0 {
		// Degenerate along one axis; fall back to the other, then to a pixel.
		sigma = math.Max(span.X, span.Y) / 10
	}
	if sigma == 0 {
		sigma = 1
	}
	inv := 1 / (2 * sigma * sigma)

	xs := make([]float64, gridSize)
	for i := range xs {
		xs[i] = linspace(g.Min.X, g.Max.X, gridSize, i)
	}
	row := make([]float64, gridSize)
	for _, p := range points {
		for iy := range gridSize {
			dy := linspace(g.Min.Y, g.Max.Y, gridSize, iy) - p.Y
			for ix, x := range xs {
				dx := x - p.X
				row[ix] = math.Exp(-(dx*dx + dy*dy) * inv)
			}
			vecmath.AddBlockInPlace(g.Values[iy*gridSize:(iy+1)*gridSize], row)
		}
	}

	var peak float64
	for _, v := range g.Values {
		peak = math.Max(peak, v)
	}
	if peak > 0 {
		vecmath.ScaleBlock(g.Values, g.Values, 1/peak)
	}
	return g, nil
}

// Panel is one heatmap of a density figure. A nil Grid draws an empty panel.
type Panel struct {
	Style Style
	Grid  *Grid
}

// DensitySVG writes the panels as a two-column grid of heatmaps.
func DensitySVG(w io.Writer, panels []Panel, opts Options) error {
	if len(panels) == 0 {
		return ErrNoData
	}
	opts = opts.withDefaults()
	const (
		cols   = 2
		margin = 40.0
		header = 40.0
	)
	rows := (len(panels) + cols - 1) / cols
	cellW := (float64(opts.Width) - margin*(cols+1)) / cols
	cellH := (float64(opts.Height) - margin*float64(rows+1)) / float64(rows)

	s := newSVGWriter(w, opts.Width, opts.Height)
	for i, p := range panels {
		x0 := margin + float64(i%cols)*(cellW+margin)
		y0 := margin + float64(i/cols)*(cellH+margin)
		s.text(x0+cellW/2, y0+18, 16, "middle", "bold", p.Style.Name+" Density Map")
		if err := heatmap(s, p, x0, y0+header, cellW, cellH-header); err != nil {
			return err
		}
	}
	return s.close()
}

func heatmap(s *svgWriter, p Panel, x0, y0, w, h float64) error {
	s.printf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#cccccc"/>`+"\n", x0, y0, w, h)
	if p.Grid == nil {
		s.text(x0+w/2, y0+h/2, 14, "middle", "normal", "no data")
		return nil
	}
	base, err := parseHex(p.Style.Color)
	if err != nil {
		return err
	}
	n := p.Grid.Size
	cw, ch := w/float64(n), h/float64(n)
	for iy := range n {
		for ix := range n {
			s.printf(`<rect x="%.1f" y="%.1f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
				x0+float64(ix)*cw, y0+float64(iy)*ch, cw+0.5, ch+0.5, shade(base, p.Grid.At(ix, iy)))
		}
	}
	return nil
}
