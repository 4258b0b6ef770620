package response

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
)

// Response is a sampled magnitude response over [0, 0.5] cycles/sample.
type Response struct {
	// Magnitude holds FFTSize/2+1 linear magnitudes, normalized to 1 at DC.
	Magnitude []float64
	FFTSize   int
}

// MovingAverage returns the magnitude response of a window-sample moving average.
func MovingAverage(window, fftSize int) (Response, error) {
	if window <= 0 {
		return Response{}, fmt.Errorf("response: %w: %d", smooth.ErrInvalidWindow, window)
	}
	if err := validateFFTSize(fftSize); err != nil {
		return Response{}, err
	}
	if window > fftSize {
		return Response{}, fmt.Errorf("response: window %d exceeds fft size %d", window, fftSize)
	}

	h := make([]float64, window)
	for i := range h {
		h[i] = 1 / float64(window)
	}
	return fromImpulse(h, fftSize)
}

// Exponential returns the magnitude response of exponential smoothing with
// factor alpha. The impulse response is truncated at fftSize samples.
func Exponential(alpha float64, fftSize int) (Response, error) {
	if err := smooth.ValidateAlpha(alpha); err != nil {
		return Response{}, fmt.Errorf("response: %w", err)
	}
	if err := validateFFTSize(fftSize); err != nil {
		return Response{}, err
	}

	h := make([]float64, fftSize)
	g := alpha
	for i := range h {
		h[i] = g
		g *= 1 - alpha
	}
	return fromImpulse(h, fftSize)
}

func fromImpulse(h []float64, fftSize int) (Response, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Response{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	mag := make([]float64, bins)
	for i := range mag {
		mag[i] = cmplx.Abs(out[i])
	}
	if mag[0] > 0 {
		vecmath.ScaleBlock(mag, mag, 1/mag[0])
	}

	return Response{Magnitude: mag, FFTSize: fftSize}, nil
}

// Frequency returns the normalized frequency of bin k.
func (r Response) Frequency(k int) float64 {
	return float64(k) / float64(r.FFTSize)
}

// Cutoff3dB returns the lowest normalized frequency at which the magnitude
// falls to -3 dB, interpolating linearly between bins. It returns 0.5 when
// the magnitude never drops that far.
func (r Response) Cutoff3dB() float64 {
	threshold := core.DBToLinear(-3)
	for k := 1; k < len(r.Magnitude); k++ {
		if r.Magnitude[k] > threshold {
			continue
		}
		prev := r.Magnitude[k-1]
		frac := (prev - threshold) / (prev - r.Magnitude[k])
		return r.Frequency(k-1) + frac/float64(r.FFTSize)
	}
	return 0.5
}

// AttenuationDB returns the magnitude in dB at the bin nearest to the
// normalized frequency f.
func (r Response) AttenuationDB(f float64) float64 {
	f = core.Clamp(f, 0, 0.5)
	k := int(math.Round(f * float64(r.FFTSize)))
	if k >= len(r.Magnitude) {
		k = len(r.Magnitude) - 1
	}
	return core.LinearToDB(r.Magnitude[k])
}

// MovingAverageGroupDelay returns the constant group delay, in samples, of a
// window-sample moving average.
func MovingAverageGroupDelay(window int) float64 {
	if window <= 0 {
		return 0
	}
	return float64(window-1) / 2
}

// ExponentialGroupDelay returns the low-frequency group delay, in samples,
// of exponential smoothing with factor alpha.
func ExponentialGroupDelay(alpha float64) float64 {
	if smooth.ValidateAlpha(alpha) != nil {
		return 0
	}
	return (1 - alpha) / alpha
}

// MovingAverageNoiseGain returns the output/input variance ratio for white
// noise passed through a window-sample moving average.
func MovingAverageNoiseGain(window int) float64 {
	if window <= 0 {
		return 0
	}
	return 1 / float64(window)
}

// ExponentialNoiseGain returns the output/input variance ratio for white
// noise passed through exponential smoothing with factor alpha.
func ExponentialNoiseGain(alpha float64) float64 {
	if smooth.ValidateAlpha(alpha) != nil {
		return 0
	}
	return alpha / (2 - alpha)
}

func validateFFTSize(n int) error {
	if n < 2 || n&(n-1) != 0 {
		return fmt.Errorf("response: fft size must be a power of two >= 2: %d", n)
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
