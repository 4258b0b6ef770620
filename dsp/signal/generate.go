package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// Generator creates deterministic synthetic pointer input from a shared
// stream configuration.
type Generator struct {
	cfg  core.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.StreamOption) *Generator {
	return &Generator{
		cfg:  core.ApplyStreamOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(streamOpts []core.StreamOption, opts ...Option) *Generator {
	g := NewGenerator(streamOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator stream configuration.
func (g *Generator) Config() core.StreamConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Sine generates frames samples of a sine wave at freqHz.
func (g *Generator) Sine(freqHz, amplitude float64, frames int) ([]float64, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("sine frames must be > 0: %d", frames)
	}
	out := make([]float64, frames)
	step := 2 * math.Pi * freqHz / g.cfg.FrameRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, frames int) ([]float64, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("noise frames must be > 0: %d", frames)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, frames)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Circle generates a pointer path orbiting center at freqHz revolutions per
// second, starting at angle zero.
func (g *Generator) Circle(center geom.Point, radius, freqHz float64, frames int) ([]geom.Point, error) {
	return g.Lissajous(center, geom.Pt(radius, radius), freqHz, freqHz, math.Pi/2, frames)
}

// Lissajous generates the path
//
//	x = cx + ax*sin(2*pi*fx*t + phase)
//	y = cy + ay*sin(2*pi*fy*t)
//
// sampled at the configured frame rate.
func (g *Generator) Lissajous(center, amplitude geom.Point, fx, fy, phase float64, frames int) ([]geom.Point, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("path frames must be > 0: %d", frames)
	}
	if amplitude.X < 0 || amplitude.Y < 0 {
		return nil, fmt.Errorf("path amplitude must be >= 0: %v", amplitude)
	}
	out := make([]geom.Point, frames)
	dt := g.cfg.FrameInterval()
	for i := range out {
		t := dt * float64(i)
		out[i] = geom.Pt(
			center.X+amplitude.X*math.Sin(2*math.Pi*fx*t+phase),
			center.Y+amplitude.Y*math.Sin(2*math.Pi*fy*t),
		)
	}
	return out, nil
}
