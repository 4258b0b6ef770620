package smoother

// Variant identifies one derived trace of a Smoother.
type Variant int

const (
	// VariantRaw is the unfiltered input.
	VariantRaw Variant = iota
	// VariantMovingAverage is the bounded moving average of the input.
	VariantMovingAverage
	// VariantExponential is the exponentially smoothed input.
	VariantExponential
	// VariantDriftCorrected is the input minus the supplied drift offset.
	VariantDriftCorrected

	numVariants
)

func (v Variant) String() string {
	switch v {
	case VariantRaw:
		return "raw"
	case VariantMovingAverage:
		return "moving_average"
	case VariantExponential:
		return "exponential"
	case VariantDriftCorrected:
		return "drift_corrected"
	default:
		return "unknown"
	}
}

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v >= VariantRaw && v < numVariants
}

// Variants returns all variants in display order.
func Variants() []Variant {
	return []Variant{VariantRaw, VariantMovingAverage, VariantExponential, VariantDriftCorrected}
}
