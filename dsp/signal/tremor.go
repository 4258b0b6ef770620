package signal

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

const (
	defaultTremorIntensity = 5.0
	defaultTremorFrequency = 10.0
	minTremorFrequency     = 0.1

	tremorSineShare  = 0.3
	tremorNoiseShare = 0.7
	tremorNoiseAlpha = 0.3
	tremorYFreqRatio = 1.1
)

// Tremor simulates physiological hand tremor: a periodic component plus
// low-passed gaussian noise, added on top of pointer coordinates. It is
// frame-clocked so that runs with the same seed and frame timing repeat.
type Tremor struct {
	enabled   bool
	intensity float64
	frequency float64

	t     float64
	noise geom.Point
	seed  int64
	rng   *rand.Rand
}

// NewTremor returns a disabled tremor with the default intensity (5) and
// frequency (10 Hz).
func NewTremor(seed int64) *Tremor {
	return &Tremor{
		intensity: defaultTremorIntensity,
		frequency: defaultTremorFrequency,
		seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Enabled reports whether the tremor is applied.
func (tr *Tremor) Enabled() bool { return tr.enabled }

// Intensity returns the tremor amplitude scale in pixels.
func (tr *Tremor) Intensity() float64 { return tr.intensity }

// Frequency returns the periodic component frequency in Hz.
func (tr *Tremor) Frequency() float64 { return tr.frequency }

// SetEnabled switches the tremor on or off. Enabling restarts its phase.
func (tr *Tremor) SetEnabled(enabled bool) {
	tr.enabled = enabled
	if enabled {
		tr.t = 0
	}
}

// SetIntensity sets the amplitude scale, floored at zero.
func (tr *Tremor) SetIntensity(intensity float64) {
	tr.intensity = math.Max(0, intensity)
}

// SetFrequency sets the periodic frequency, floored at 0.1 Hz.
func (tr *Tremor) SetFrequency(frequency float64) {
	tr.frequency = math.Max(minTremorFrequency, frequency)
}

// Advance moves the tremor clock by dt seconds and returns the offset for
// that instant. A disabled tremor returns the zero offset.
func (tr *Tremor) Advance(dt float64) geom.Point {
	if !tr.enabled {
		return geom.Point{}
	}
	tr.t += dt

	w := 2 * math.Pi * tr.frequency * tr.t
	periodic := geom.Pt(
		math.Sin(w)*tr.intensity*tremorSineShare,
		math.Cos(w*tremorYFreqRatio)*tr.intensity*tremorSineShare,
	)

	sigma := tr.intensity * tremorNoiseShare
	fresh := geom.Pt(tr.rng.NormFloat64()*sigma, tr.rng.NormFloat64()*sigma)
	tr.noise = fresh.Scale(tremorNoiseAlpha).Add(tr.noise.Scale(1 - tremorNoiseAlpha))

	return periodic.Add(tr.noise)
}

// Apply returns p displaced by the tremor offset after advancing dt seconds.
func (tr *Tremor) Apply(p geom.Point, dt float64) geom.Point {
	return p.Add(tr.Advance(dt))
}

// Reset disables the tremor and restores defaults and the initial seed.
func (tr *Tremor) Reset() {
	*tr = *NewTremor(tr.seed)
}
