package ui

import (
	"testing"
	"time"

	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/smoother"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestViewTransformApply(t *testing.T) {
	v := NewViewTransform()
	testutil.RequirePointNearlyEqual(t, v.Apply(geom.Pt(3, 4)), geom.Pt(3, 4), 0)

	v.Zoom = 2
	v.PanBy(geom.Pt(10, -5))
	testutil.RequirePointNearlyEqual(t, v.Apply(geom.Pt(3, 4)), geom.Pt(16, 3), 1e-12)

	v.Reset()
	if v != NewViewTransform() {
		t.Fatalf("Reset() = %+v", v)
	}
}

func TestViewTransformZoomClampAndEase(t *testing.T) {
	v := NewViewTransform()
	for range 50 {
		v.ZoomBy(zoomFactor)
	}
	if v.TargetZoom != zoomMax {
		t.Fatalf("TargetZoom = %v, want %v", v.TargetZoom, zoomMax)
	}
	for range 50 {
		v.ZoomBy(1 / zoomFactor)
	}
	if v.TargetZoom != zoomMin {
		t.Fatalf("TargetZoom = %v, want %v", v.TargetZoom, zoomMin)
	}

	v.Ease(0.5)
	if want := zoomDefault + (zoomMin-zoomDefault)*0.5; v.Zoom != want {
		t.Fatalf("Zoom after one step = %v, want %v", v.Zoom, want)
	}
	for range 100 {
		v.Ease(zoomEase)
	}
	if v.Zoom != v.TargetZoom {
		t.Fatalf("Zoom did not snap: %v vs %v", v.Zoom, v.TargetZoom)
	}
}

func TestVisibility(t *testing.T) {
	var vis Visibility
	vis.Set(smoother.VariantExponential, true)
	if !vis.Visible(smoother.VariantExponential) || vis.Visible(smoother.VariantRaw) {
		t.Fatalf("unexpected visibility %v", vis)
	}
	vis.Toggle(smoother.VariantExponential)
	if vis.Visible(smoother.VariantExponential) {
		t.Fatal("Toggle() did not hide")
	}
	vis.Set(smoother.Variant(42), true)
	if vis.Visible(smoother.Variant(42)) {
		t.Fatal("unknown variant reported visible")
	}
}

func TestParamIndicator(t *testing.T) {
	var p ParamIndicator
	if p.Active() || p.Strength() != 0 {
		t.Fatal("zero indicator should be idle")
	}
	p.Trigger(100 * time.Millisecond)
	p.Update(25 * time.Millisecond)
	if !p.Active() || p.Strength() != 0.75 {
		t.Fatalf("Active=%v Strength=%v", p.Active(), p.Strength())
	}
	p.Update(time.Second)
	if p.Active() || p.Strength() != 0 {
		t.Fatalf("indicator should have expired")
	}
}

func TestVariantForKey(t *testing.T) {
	for i, v := range smoother.Variants() {
		got, ok := variantForKey(string(rune('1' + i)))
		if !ok || got != v {
			t.Fatalf("key %d -> (%v, %v), want %v", i+1, got, ok, v)
		}
	}
	if _, ok := variantForKey("5"); ok {
		t.Fatal("key 5 should not map to a variant")
	}
}
