package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns length points starting at from and advancing by step.
func Ramp(from, step geom.Point, length int) []geom.Point {
	out := make([]geom.Point, length)
	for i := range out {
		out[i] = from.Add(step.Scale(float64(i)))
	}
	return out
}

// NoisyCircle returns length points on a circle around center with
// deterministic per-axis jitter added.
func NoisyCircle(center geom.Point, radius, jitter float64, seed int64, length int) []geom.Point {
	nx := DeterministicNoise(seed, jitter, length)
	ny := DeterministicNoise(seed+1, jitter, length)
	out := make([]geom.Point, length)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / float64(length)
		out[i] = geom.Pt(
			center.X+radius*math.Cos(phase)+nx[i],
			center.Y+radius*math.Sin(phase)+ny[i],
		)
	}
	return out
}
