package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if math.Abs(a[i]) > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(geom.Pt(0, 0), geom.Pt(10, 0), 4)
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0), geom.Pt(30, 0)}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Ramp[%d] = %v, want %v", i, r[i], want[i])
		}
	}
}

func TestNoisyCircleBounded(t *testing.T) {
	c := geom.Pt(100, 100)
	pts := NoisyCircle(c, 50, 2, 9, 128)
	if len(pts) != 128 {
		t.Fatalf("len = %d, want 128", len(pts))
	}
	for i, p := range pts {
		d := p.Dist(c)
		if d < 50-2*math.Sqrt2 || d > 50+2*math.Sqrt2 {
			t.Fatalf("point %d at distance %v outside jitter band", i, d)
		}
	}
}
