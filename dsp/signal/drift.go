package signal

import (
	"math"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
)

const (
	defaultDriftSpeed     = 20.0
	defaultDriftDirection = 0.0
)

// Drift simulates a slow, constant-velocity sensor drift. Its accumulated
// offset is what a drift-corrected trace subtracts from the raw input.
type Drift struct {
	enabled      bool
	speed        float64 // pixels per second
	directionDeg float64
	offset       geom.Point
}

// NewDrift returns a disabled drift moving at 20 px/s along +x.
func NewDrift() *Drift {
	return &Drift{
		speed:        defaultDriftSpeed,
		directionDeg: defaultDriftDirection,
	}
}

// Enabled reports whether drift accumulates.
func (d *Drift) Enabled() bool { return d.enabled }

// Speed returns the drift speed in pixels per second.
func (d *Drift) Speed() float64 { return d.speed }

// Direction returns the drift heading in degrees (0 = +x, 90 = +y).
func (d *Drift) Direction() float64 { return d.directionDeg }

// SetEnabled switches the drift on or off. Disabling drops the accumulated
// offset.
func (d *Drift) SetEnabled(enabled bool) {
	d.enabled = enabled
	if !enabled {
		d.offset = geom.Point{}
	}
}

// SetSpeed sets the speed, floored at zero.
func (d *Drift) SetSpeed(pixelsPerSecond float64) {
	d.speed = math.Max(0, pixelsPerSecond)
}

// SetDirection sets the heading, normalized to [0, 360).
func (d *Drift) SetDirection(deg float64) {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	d.directionDeg = deg
}

// Advance accumulates dt seconds of drift and returns the total offset.
func (d *Drift) Advance(dt float64) geom.Point {
	if !d.enabled || dt <= 0 {
		return d.offset
	}
	rad := d.directionDeg * math.Pi / 180
	step := geom.Pt(math.Cos(rad), math.Sin(rad)).Scale(d.speed * dt)
	d.offset = d.offset.Add(step)
	return d.offset
}

// Apply returns p displaced by the offset after advancing dt seconds.
func (d *Drift) Apply(p geom.Point, dt float64) geom.Point {
	return p.Add(d.Advance(dt))
}

// Offset returns the accumulated offset, or absent while disabled.
func (d *Drift) Offset() core.Optional[geom.Point] {
	if !d.enabled {
		return core.None[geom.Point]()
	}
	return core.Some(d.offset)
}

// Reset disables the drift and restores defaults.
func (d *Drift) Reset() {
	*d = *NewDrift()
}
