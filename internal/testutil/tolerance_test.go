package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestXS(t *testing.T) {
	xs := XS([]geom.Point{geom.Pt(1, 9), geom.Pt(2, 8)})
	RequireSliceNearlyEqual(t, xs, []float64{1, 2}, 0)
}

func TestRequirePointNearlyEqualPasses(t *testing.T) {
	RequirePointNearlyEqual(t, geom.Pt(1, 1), geom.Pt(1+1e-12, 1-1e-12), 1e-9)
	RequirePointsEqual(t, []geom.Point{geom.Pt(1, 2)}, []geom.Point{geom.Pt(1, 2)})
	RequireFinite(t, []float64{0, 1, -1})
}
