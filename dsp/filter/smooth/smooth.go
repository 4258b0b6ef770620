package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

var (
	// ErrInvalidWindow is returned for a moving-average window size <= 0.
	ErrInvalidWindow = errors.New("smooth: window size must be > 0")
	// ErrInvalidAlpha is returned for a smoothing factor outside (0, 1].
	ErrInvalidAlpha = errors.New("smooth: alpha must be in (0, 1]")
)

// MovingAverage returns the arithmetic mean of the last windowSize samples
// of buf (most recent last). When buf holds fewer samples the window is
// clamped to what is available, so output starts with the first sample.
//
// ok is false when buf is empty.
func MovingAverage(buf []float64, windowSize int) (mean float64, ok bool, err error) {
	if windowSize <= 0 {
		return 0, false, fmt.Errorf("%w: %d", ErrInvalidWindow, windowSize)
	}
	if len(buf) == 0 {
		return 0, false, nil
	}

	window := core.Tail(buf, windowSize)

	var sum float64
	for _, x := range window {
		sum += x
	}

	return sum / float64(len(window)), true, nil
}

// ExpSmoothing applies one step of y[n] = alpha*x[n] + (1-alpha)*y[n-1].
// An absent prev seeds the filter with x.
func ExpSmoothing(x float64, prev core.Optional[float64], alpha float64) (float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return 0, err
	}

	y, ok := prev.Get()
	if !ok {
		return x, nil
	}

	return alpha*x + (1-alpha)*y, nil
}

// ValidateAlpha reports whether alpha is a usable smoothing factor.
func ValidateAlpha(alpha float64) error {
	if !(alpha > 0 && alpha <= 1) {
		return fmt.Errorf("%w: %f", ErrInvalidAlpha, alpha)
	}
	return nil
}
