package plot

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

// Style controls how one variant is drawn.
type Style struct {
	Name  string
	Color string // #rrggbb
	Width float64
}

var defaultStyles = [...]Style{
	smoother.VariantRaw:            {Name: "Raw", Color: "#dc3232", Width: 1},
	smoother.VariantMovingAverage:  {Name: "MA", Color: "#32b432", Width: 2},
	smoother.VariantExponential:    {Name: "Exp", Color: "#3264dc", Width: 2},
	smoother.VariantDriftCorrected: {Name: "Drift corr.", Color: "#e6b414", Width: 2},
}

// DefaultStyle returns the standard style for v.
func DefaultStyle(v smoother.Variant) Style {
	if !v.Valid() {
		return Style{Name: v.String(), Color: "#808080", Width: 1}
	}
	return defaultStyles[v]
}

type rgb struct{ r, g, b uint8 }

func parseHex(s string) (rgb, error) {
	if len(s) != 7 || s[0] != '#' {
		return rgb{}, fmt.Errorf("plot: invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("plot: invalid color %q: %w", s, err)
	}
	return rgb{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// shade blends white toward c by t in [0, 1].
func shade(c rgb, t float64) string {
	mix := func(ch uint8) uint8 {
		return uint8(255 - t*(255-float64(ch)) + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(c.r), mix(c.g), mix(c.b))
}
