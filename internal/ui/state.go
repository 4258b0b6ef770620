package ui

import (
	"math"
	"time"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

const (
	zoomDefault = 1.0
	zoomMin     = 0.25
	zoomMax     = 4.0
	zoomFactor  = 1.1
	zoomEase    = 0.2
	zoomSnap    = 0.001
)

// ViewTransform maps smoother coordinates to screen coordinates. Zoom eases
// toward its target each frame.
type ViewTransform struct {
	Zoom       float64
	TargetZoom float64
	Pan        geom.Point
}

// NewViewTransform returns the identity view.
func NewViewTransform() ViewTransform {
	return ViewTransform{Zoom: zoomDefault, TargetZoom: zoomDefault}
}

// Apply maps p into screen space.
func (v ViewTransform) Apply(p geom.Point) geom.Point {
	return p.Scale(v.Zoom).Add(v.Pan)
}

// Reset restores the identity view.
func (v *ViewTransform) Reset() {
	*v = NewViewTransform()
}

// ZoomBy multiplies the target zoom by factor, within [0.25, 4].
func (v *ViewTransform) ZoomBy(factor float64) {
	v.TargetZoom = core.Clamp(v.TargetZoom*factor, zoomMin, zoomMax)
}

// PanBy shifts the view by delta screen units.
func (v *ViewTransform) PanBy(delta geom.Point) {
	v.Pan = v.Pan.Add(delta)
}

// Ease moves Zoom a fraction of the way toward TargetZoom, snapping once
// the remaining difference is below 0.001.
func (v *ViewTransform) Ease(fraction float64) {
	diff := v.TargetZoom - v.Zoom
	v.Zoom += diff * fraction
	if math.Abs(diff) < zoomSnap {
		v.Zoom = v.TargetZoom
	}
}

// Visibility holds which variants are drawn.
type Visibility [len(descriptors)]bool

// Visible reports whether v is drawn. Unknown variants are hidden.
func (vis Visibility) Visible(v smoother.Variant) bool {
	return v.Valid() && vis[v]
}

// Set changes the visibility of v.
func (vis *Visibility) Set(v smoother.Variant, visible bool) {
	if v.Valid() {
		vis[v] = visible
	}
}

// Toggle flips the visibility of v.
func (vis *Visibility) Toggle(v smoother.Variant) {
	vis.Set(v, !vis.Visible(v))
}

// ParamIndicator briefly highlights a parameter change.
type ParamIndicator struct {
	duration  time.Duration
	remaining time.Duration
}

// Trigger starts (or restarts) the highlight for d.
func (p *ParamIndicator) Trigger(d time.Duration) {
	p.duration = d
	p.remaining = d
}

// Update counts down by dt.
func (p *ParamIndicator) Update(dt time.Duration) {
	if p.remaining <= 0 {
		return
	}
	p.remaining = max(p.remaining-dt, 0)
}

// Active reports whether the highlight is showing.
func (p ParamIndicator) Active() bool {
	return p.remaining > 0
}

// Strength is the remaining fraction of the highlight in [0, 1].
func (p ParamIndicator) Strength() float64 {
	if p.duration <= 0 {
		return 0
	}
	return float64(p.remaining) / float64(p.duration)
}
