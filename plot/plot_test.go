package plot

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/smoother"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestDensityMapPeakAndBounds(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 10), geom.Pt(10, 10)}
	g, err := DensityMap(pts, 30)
	if err != nil {
		t.Fatalf("DensityMap() error = %v", err)
	}
	if g.Size != 30 || len(g.Values) != 900 {
		t.Fatalf("unexpected grid shape: size=%d len=%d", g.Size, len(g.Values))
	}
	testutil.RequirePointNearlyEqual(t, g.Min, geom.Pt(-1, -1), 1e-12)
	testutil.RequirePointNearlyEqual(t, g.Max, geom.Pt(11, 11), 1e-12)
	testutil.RequirePointNearlyEqual(t, g.Coord(0, 29), geom.Pt(-1, 11), 1e-12)

	var peak float64
	for _, v := range g.Values {
		if v < 0 || v > 1 {
			t.Fatalf("value %v outside [0, 1]", v)
		}
		peak = math.Max(peak, v)
	}
	if !core.NearlyEqual(peak, 1, 1e-12) {
		t.Fatalf("peak = %v, want 1", peak)
	}
	// The grid center is far from every point, the corners near two of them.
	if g.At(15, 15) >= g.At(3, 3) {
		t.Fatalf("center %v should be below corner %v", g.At(15, 15), g.At(3, 3))
	}
}

func TestDensityMapSymmetric(t *testing.T) {
	pts := []geom.Point{geom.Pt(-5, 2), geom.Pt(5, 2), geom.Pt(0, 8)}
	g, err := DensityMap(pts, 21)
	if err != nil {
		t.Fatalf("DensityMap() error = %v", err)
	}
	for iy := range g.Size {
		for ix := range g.Size {
			a, b := g.At(ix, iy), g.At(g.Size-1-ix, iy)
			if !core.NearlyEqual(a, b, 1e-9) {
				t.Fatalf("asymmetric at (%d,%d): %v vs %v", ix, iy, a, b)
			}
		}
	}
}

func TestDensityMapDegenerate(t *testing.T) {
	g, err := DensityMap([]geom.Point{geom.Pt(3, 3), geom.Pt(3, 3)}, 5)
	if err != nil {
		t.Fatalf("DensityMap() error = %v", err)
	}
	for _, v := range g.Values {
		if v != 1 {
			t.Fatalf("single-location density should be flat 1, got %v", v)
		}
	}
	testutil.RequireFinite(t, g.Values)
}

func TestDensityMapErrors(t *testing.T) {
	if _, err := DensityMap(nil, 30); !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
	if _, err := DensityMap([]geom.Point{{}}, 1); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("error = %v, want ErrInvalidGrid", err)
	}
}

func TestTrace3D(t *testing.T) {
	series := []Series{
		{Style: DefaultStyle(smoother.VariantRaw), Points: testutil.Ramp(geom.Pt(0, 0), geom.Pt(1, 2), 5)},
		{Style: DefaultStyle(smoother.VariantExponential)},
	}
	opts := DefaultOptions()
	opts.WindowSize, opts.Alpha = 7, 0.35

	var buf bytes.Buffer
	if err := Trace3D(&buf, series, opts); err != nil {
		t.Fatalf("Trace3D() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "</svg>", "Window Size: 7, Alpha: 0.35", "<polyline", "Raw", "Time (samples)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
	if strings.Count(out, "<polyline") != 1 {
		t.Fatalf("empty series should not be drawn")
	}
	if strings.Contains(out, "NaN") || strings.Contains(out, "Inf") {
		t.Fatalf("output contains non-finite coordinates")
	}
}

func TestTrace3DNoData(t *testing.T) {
	if err := Trace3D(&bytes.Buffer{}, []Series{{}}, DefaultOptions()); !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
}

func TestDensitySVG(t *testing.T) {
	g, err := DensityMap(testutil.NoisyCircle(geom.Pt(0, 0), 5, 0.5, 1, 20), 4)
	if err != nil {
		t.Fatalf("DensityMap() error = %v", err)
	}
	var buf bytes.Buffer
	err = DensitySVG(&buf, []Panel{
		{Style: DefaultStyle(smoother.VariantMovingAverage), Grid: g},
		{Style: DefaultStyle(smoother.VariantDriftCorrected)},
	}, DefaultOptions())
	if err != nil {
		t.Fatalf("DensitySVG() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "MA Density Map") || !strings.Contains(out, "no data") {
		t.Fatalf("missing panel titles or empty marker")
	}
	// Peak cells are drawn in the full style color.
	if !strings.Contains(out, `fill="#32b432"`) {
		t.Fatalf("expected a full-intensity cell")
	}
}

func TestDensitySVGBadColor(t *testing.T) {
	g, _ := DensityMap([]geom.Point{{}}, 2)
	err := DensitySVG(&bytes.Buffer{}, []Panel{{Style: Style{Name: "x", Color: "red"}, Grid: g}}, DefaultOptions())
	if err == nil {
		t.Fatal("expected color error")
	}
}

func TestShade(t *testing.T) {
	c, err := parseHex("#204060")
	if err != nil {
		t.Fatalf("parseHex() error = %v", err)
	}
	if got := shade(c, 0); got != "#ffffff" {
		t.Fatalf("shade(0) = %s", got)
	}
	if got := shade(c, 1); got != "#204060" {
		t.Fatalf("shade(1) = %s", got)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	s, err := smoother.New(smoother.DefaultConfig())
	if err != nil {
		t.Fatalf("smoother.New() error = %v", err)
	}
	if _, err := WriteFiles(dir, s, time.Unix(1700000000, 0), DefaultOptions()); !errors.Is(err, ErrNoData) {
		t.Fatalf("empty smoother: error = %v, want ErrNoData", err)
	}

	for _, p := range testutil.NoisyCircle(geom.Pt(100, 100), 40, 2, 3, 5) {
		s.AddSample(p.X, p.Y, true, core.None[geom.Point]())
	}
	files, err := WriteFiles(dir, s, time.Unix(1700000000, 0), DefaultOptions())
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if files.Trace3D != filepath.Join(dir, "plot_3d_1700000000.svg") || files.Density != "" {
		t.Fatalf("unexpected files with few samples: %+v", files)
	}

	for _, p := range testutil.NoisyCircle(geom.Pt(100, 100), 40, 2, 4, 20) {
		s.AddSample(p.X, p.Y, true, core.Some(geom.Pt(1, 1)))
	}
	files, err = WriteFiles(dir, s, time.Unix(1700000001, 0), DefaultOptions())
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if files.Density != filepath.Join(dir, "map_3d_1700000001.svg") {
		t.Fatalf("Density = %q", files.Density)
	}
	data, err := os.ReadFile(files.Density)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Drift corr. Density Map") {
		t.Fatalf("density figure missing drift panel")
	}
}
