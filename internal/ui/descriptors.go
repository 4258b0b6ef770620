package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-smooth/dsp/smoother"
	"github.com/cwbudde/algo-smooth/plot"
)

// descriptor is the presentation metadata of one variant.
type descriptor struct {
	variant smoother.Variant
	name    string
	key     string
	glyph   rune
	trace   lipgloss.Style
	cursor  lipgloss.Style
}

func newDescriptor(v smoother.Variant, key string, glyph rune, cursorColor string) descriptor {
	ps := plot.DefaultStyle(v)
	return descriptor{
		variant: v,
		name:    ps.Name,
		key:     key,
		glyph:   glyph,
		trace:   lipgloss.NewStyle().Foreground(lipgloss.Color(ps.Color)),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color(cursorColor)).Bold(true),
	}
}

// descriptors is indexed by smoother.Variant and drawn in this order.
var descriptors = [...]descriptor{
	smoother.VariantRaw:            newDescriptor(smoother.VariantRaw, "1", '·', "#ff7878"),
	smoother.VariantMovingAverage:  newDescriptor(smoother.VariantMovingAverage, "2", '•', "#78ff78"),
	smoother.VariantExponential:    newDescriptor(smoother.VariantExponential, "3", '+', "#78a0ff"),
	smoother.VariantDriftCorrected: newDescriptor(smoother.VariantDriftCorrected, "4", 'x', "#ffdc50"),
}

const cursorGlyph = '●'

// variantForKey maps a visibility toggle key to its variant.
func variantForKey(key string) (smoother.Variant, bool) {
	for _, d := range descriptors {
		if d.key == key {
			return d.variant, true
		}
	}
	return 0, false
}
