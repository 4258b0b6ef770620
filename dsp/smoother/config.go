package smoother

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Config holds construction parameters for a Smoother.
type Config struct {
	// Capacity bounds every trace and the raw-sample window.
	Capacity int
	// WindowSize is the initial moving-average length in samples.
	WindowSize int
	// Alpha is the initial exponential smoothing factor.
	Alpha float64
	// MinWindow is the floor for WindowSize.
	MinWindow int
	// MinAlpha and MaxAlpha bound Alpha. Both must lie in (0, 1].
	MinAlpha float64
	MaxAlpha float64
	// DriftWindow is not used by the filters. It is carried for drift
	// estimators driving the same session.
	DriftWindow int
}

// DefaultConfig returns the parameters of the interactive demo.
func DefaultConfig() Config {
	return Config{
		Capacity:    500,
		WindowSize:  10,
		Alpha:       0.2,
		MinWindow:   1,
		MinAlpha:    0.01,
		MaxAlpha:    1.0,
		DriftWindow: 60,
	}
}

// Validate reports configurations that cannot hold the engine invariants.
// Out-of-range WindowSize and Alpha are not errors; they are clamped.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("smoother: capacity must be >= 1: %d", c.Capacity)
	}
	if c.MinWindow < 1 {
		return fmt.Errorf("smoother: min window must be >= 1: %d", c.MinWindow)
	}
	if !core.IsFinite(c.Alpha) {
		return fmt.Errorf("smoother: alpha must be finite: %f", c.Alpha)
	}
	if !(c.MinAlpha > 0 && c.MinAlpha <= 1) {
		return fmt.Errorf("smoother: min alpha must be in (0, 1]: %f", c.MinAlpha)
	}
	if !(c.MaxAlpha > 0 && c.MaxAlpha <= 1) {
		return fmt.Errorf("smoother: max alpha must be in (0, 1]: %f", c.MaxAlpha)
	}
	if c.MinAlpha > c.MaxAlpha {
		return fmt.Errorf("smoother: min alpha %f exceeds max alpha %f", c.MinAlpha, c.MaxAlpha)
	}
	if c.DriftWindow < 0 {
		return fmt.Errorf("smoother: drift window must be >= 0: %d", c.DriftWindow)
	}
	return nil
}
