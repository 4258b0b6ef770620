package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var errTooShort = errors.New("response: need at least 4 samples")

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// component of samples taken at frameRate. The mean is removed and a Hann
// window applied before the transform; the input is zero-padded to a power
// of two.
func DominantFrequency(samples []float64, frameRate float64) (float64, error) {
	if len(samples) < 4 {
		return 0, errTooShort
	}
	if !(frameRate > 0) {
		return 0, fmt.Errorf("response: frame rate must be > 0: %f", frameRate)
	}

	n := len(samples)
	var mean float64
	for _, x := range samples {
		mean += x
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, x := range samples {
		centered[i] = x - mean
	}
	windowed := make([]float64, n)
	vecmath.MulBlock(windowed, centered, hann(n))

	fftSize := nextPowerOf2(n)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}
	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	peak := 1
	for k := 2; k < bins; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	return float64(peak) * frameRate / float64(fftSize), nil
}

// hann returns a symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}
