package log

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

// VariantField returns the variant name field.
func VariantField(v smoother.Variant) zap.Field {
	return zap.Stringer("variant", v)
}

// WindowField returns the moving average window field.
func WindowField(size int) zap.Field {
	return zap.Int("window", size)
}

// AlphaField returns the exponential smoothing factor field.
func AlphaField(alpha float64) zap.Field {
	return zap.Float64("alpha", alpha)
}

// PathField returns a file path field.
func PathField(path string) zap.Field {
	return zap.String("path", path)
}

// SmootherFields describes the live smoother parameters.
func SmootherFields(s *smoother.Smoother) []zap.Field {
	return []zap.Field{
		WindowField(s.WindowSize()),
		AlphaField(s.Alpha()),
		zap.Int("drift-window", s.DriftWindow()),
		zap.Int("samples", s.RawTrace().Len()),
	}
}
