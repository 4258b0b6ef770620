// Package config loads the demo settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the complete demo configuration.
type Config struct {
	Smoother SmootherConfig `toml:"smoother"`
	Display  DisplayConfig  `toml:"display"`
	Tremor   TremorConfig   `toml:"tremor"`
	Drift    DriftConfig    `toml:"drift"`
	Plot     PlotConfig     `toml:"plot"`
}

// SmootherConfig holds the filter parameters and their bounds.
type SmootherConfig struct {
	Capacity    int     `toml:"capacity"`
	WindowSize  int     `toml:"window_size"`
	Alpha       float64 `toml:"alpha"`
	MinWindow   int     `toml:"min_window"`
	MinAlpha    float64 `toml:"min_alpha"`
	MaxAlpha    float64 `toml:"max_alpha"`
	AlphaStep   float64 `toml:"alpha_step"`
	DriftWindow int     `toml:"drift_window"`
}

// DisplayConfig controls the terminal front-end.
type DisplayConfig struct {
	FrameRate         int           `toml:"frame_rate"`
	History           bool          `toml:"history"`
	IndicatorDuration time.Duration `toml:"indicator_duration"`
	MetricsHistory    int           `toml:"metrics_history"`
	Visible           VisibleConfig `toml:"visible"`
}

// VisibleConfig is the initial visibility of each trace.
type VisibleConfig struct {
	Raw            bool `toml:"raw"`
	MovingAverage  bool `toml:"moving_average"`
	Exponential    bool `toml:"exponential"`
	DriftCorrected bool `toml:"drift_corrected"`
}

// TremorConfig is the initial simulated tremor.
type TremorConfig struct {
	Enabled   bool    `toml:"enabled"`
	Intensity float64 `toml:"intensity"`
	Frequency float64 `toml:"frequency"`
	Seed      int64   `toml:"seed"`
}

// DriftConfig is the initial simulated drift.
type DriftConfig struct {
	Enabled   bool    `toml:"enabled"`
	Speed     float64 `toml:"speed"`
	Direction float64 `toml:"direction"`
}

// PlotConfig controls SVG export.
type PlotConfig struct {
	OutputDir string `toml:"output_dir"`
	GridSize  int    `toml:"grid_size"`
	Open      bool   `toml:"open"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() *Config {
	sc := smoother.DefaultConfig()
	return &Config{
		Smoother: SmootherConfig{
			Capacity:    sc.Capacity,
			WindowSize:  sc.WindowSize,
			Alpha:       sc.Alpha,
			MinWindow:   sc.MinWindow,
			MinAlpha:    sc.MinAlpha,
			MaxAlpha:    sc.MaxAlpha,
			AlphaStep:   0.01,
			DriftWindow: sc.DriftWindow,
		},
		Display: DisplayConfig{
			FrameRate:         60,
			History:           true,
			IndicatorDuration: 500 * time.Millisecond,
			MetricsHistory:    60,
			Visible: VisibleConfig{
				Raw:            true,
				MovingAverage:  true,
				Exponential:    true,
				DriftCorrected: true,
			},
		},
		Tremor: TremorConfig{
			Intensity: 5,
			Frequency: 10,
			Seed:      1,
		},
		Drift: DriftConfig{
			Speed: 20,
		},
		Plot: PlotConfig{
			OutputDir: "output",
			GridSize:  30,
		},
	}
}

// SmootherConfig converts the smoother section for smoother.New.
func (c *Config) SmootherConfig() smoother.Config {
	s := c.Smoother
	return smoother.Config{
		Capacity:    s.Capacity,
		WindowSize:  s.WindowSize,
		Alpha:       s.Alpha,
		MinWindow:   s.MinWindow,
		MinAlpha:    s.MinAlpha,
		MaxAlpha:    s.MaxAlpha,
		DriftWindow: s.DriftWindow,
	}
}

// Visible reports the configured initial visibility of v.
func (c *Config) Visible(v smoother.Variant) bool {
	switch v {
	case smoother.VariantRaw:
		return c.Display.Visible.Raw
	case smoother.VariantMovingAverage:
		return c.Display.Visible.MovingAverage
	case smoother.VariantExponential:
		return c.Display.Visible.Exponential
	case smoother.VariantDriftCorrected:
		return c.Display.Visible.DriftCorrected
	default:
		return false
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.SmootherConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Smoother.AlphaStep <= 0:
		return fmt.Errorf("%w: alpha_step must be positive, got %g", ErrInvalidConfig, c.Smoother.AlphaStep)
	case c.Display.FrameRate < 1:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, c.Display.FrameRate)
	case c.Display.MetricsHistory < 1:
		return fmt.Errorf("%w: metrics_history must be positive, got %d", ErrInvalidConfig, c.Display.MetricsHistory)
	case c.Display.IndicatorDuration < 0:
		return fmt.Errorf("%w: indicator_duration must not be negative", ErrInvalidConfig)
	case c.Tremor.Intensity < 0:
		return fmt.Errorf("%w: tremor intensity must not be negative, got %g", ErrInvalidConfig, c.Tremor.Intensity)
	case c.Tremor.Frequency < 0.1:
		return fmt.Errorf("%w: tremor frequency must be at least 0.1 Hz, got %g", ErrInvalidConfig, c.Tremor.Frequency)
	case c.Drift.Speed < 0:
		return fmt.Errorf("%w: drift speed must not be negative, got %g", ErrInvalidConfig, c.Drift.Speed)
	case c.Plot.GridSize < 2:
		return fmt.Errorf("%w: plot grid_size must be at least 2, got %d", ErrInvalidConfig, c.Plot.GridSize)
	case c.Plot.OutputDir == "":
		return fmt.Errorf("%w: plot output_dir is empty", ErrInvalidConfig)
	}
	return nil
}

// Load reads path over the defaults. A missing file is created with the
// defaults. The result is validated.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return read(path)
}

// read decodes an existing file over the defaults and validates it.
func read(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
