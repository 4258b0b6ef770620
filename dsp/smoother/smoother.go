package smoother

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/trace"
)

// Sample is the result of ingesting one input point.
type Sample struct {
	Raw            geom.Point
	MovingAverage  core.Optional[geom.Point]
	Exponential    geom.Point
	DriftCorrected core.Optional[geom.Point]
}

// Point returns the sample's point for v, if present.
func (s Sample) Point(v Variant) core.Optional[geom.Point] {
	switch v {
	case VariantRaw:
		return core.Some(s.Raw)
	case VariantMovingAverage:
		return s.MovingAverage
	case VariantExponential:
		return core.Some(s.Exponential)
	case VariantDriftCorrected:
		return s.DriftCorrected
	default:
		return core.None[geom.Point]()
	}
}

// Smoother derives moving-average, exponential and drift-corrected traces
// from a stream of pointer samples.
type Smoother struct {
	cfg Config

	windowSize int
	alpha      float64

	defaultWindow int
	defaultAlpha  float64

	window *trace.Buffer
	traces [numVariants]*trace.Buffer

	exp core.Optional[geom.Point]

	xs, ys []float64
}

// New constructs a Smoother. The initial window size and alpha are clamped
// to their configured bounds and recorded as the defaults used by Reset.
func New(cfg Config) (*Smoother, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Smoother{
		cfg:    cfg,
		window: trace.New(cfg.Capacity),
	}
	for v := range s.traces {
		s.traces[v] = trace.New(cfg.Capacity)
	}

	s.windowSize = core.ClampInt(cfg.WindowSize, cfg.MinWindow)
	s.alpha = core.Clamp(cfg.Alpha, cfg.MinAlpha, cfg.MaxAlpha)
	s.defaultWindow = s.windowSize
	s.defaultAlpha = s.alpha

	return s, nil
}

// AddSample ingests the point (x, y).
//
// The raw-sample window and the exponential state are always updated.
// storeHistory only controls whether the results are appended to the
// traces. A drift-corrected point is produced only when drift is set.
func (s *Smoother) AddSample(x, y float64, storeHistory bool, drift core.Optional[geom.Point]) Sample {
	raw := geom.Pt(x, y)
	s.window.Append(raw)

	out := Sample{
		Raw:           raw,
		MovingAverage: s.movingAverage(),
		Exponential:   s.exponential(raw),
	}
	if offset, ok := drift.Get(); ok {
		out.DriftCorrected = core.Some(raw.Sub(offset))
	}

	if storeHistory {
		for _, v := range Variants() {
			if p, ok := out.Point(v).Get(); ok {
				s.traces[v].Append(p)
			}
		}
	}

	return out
}

func (s *Smoother) movingAverage() core.Optional[geom.Point] {
	n := min(s.window.Len(), s.windowSize)
	s.xs = core.EnsureLen(s.xs, n)
	s.ys = core.EnsureLen(s.ys, n)
	first := s.window.Len() - n
	for i := 0; i < n; i++ {
		p := s.window.At(first + i)
		s.xs[i] = p.X
		s.ys[i] = p.Y
	}

	mx, okX, err := smooth.MovingAverage(s.xs, s.windowSize)
	mustFilter(err)
	my, okY, err := smooth.MovingAverage(s.ys, s.windowSize)
	mustFilter(err)

	if !okX || !okY {
		return core.None[geom.Point]()
	}
	return core.Some(geom.Pt(mx, my))
}

func (s *Smoother) exponential(raw geom.Point) geom.Point {
	prevX, prevY := core.None[float64](), core.None[float64]()
	if prev, ok := s.exp.Get(); ok {
		prevX, prevY = core.Some(prev.X), core.Some(prev.Y)
	}

	ex, err := smooth.ExpSmoothing(raw.X, prevX, s.alpha)
	mustFilter(err)
	ey, err := smooth.ExpSmoothing(raw.Y, prevY, s.alpha)
	mustFilter(err)

	p := geom.Pt(ex, ey)
	s.exp = core.Some(p)
	return p
}

// mustFilter panics on a filter error. The Smoother clamps its parameters
// before use, so an error here means its invariants are broken.
func mustFilter(err error) {
	if err != nil {
		panic(fmt.Sprintf("smoother: invariant violated: %v", err))
	}
}

// ChangeWindow adds delta to the moving-average window size, saturating at
// the configured minimum.
func (s *Smoother) ChangeWindow(delta int) {
	s.windowSize = core.ClampInt(s.windowSize+delta, s.cfg.MinWindow)
}

// ChangeAlpha adds delta to the smoothing factor, clamped to
// [MinAlpha, MaxAlpha].
func (s *Smoother) ChangeAlpha(delta float64) {
	next := s.alpha + delta
	if !core.IsFinite(next) {
		return
	}
	s.alpha = core.Clamp(next, s.cfg.MinAlpha, s.cfg.MaxAlpha)
}

// ClearHistory empties all traces and the raw-sample window and forgets the
// exponential state. Parameters are kept.
func (s *Smoother) ClearHistory() {
	for _, t := range s.traces {
		t.Clear()
	}
	s.window.Clear()
	s.exp = core.None[geom.Point]()
}

// Reset restores the construction-time window size and alpha, then clears
// all history.
func (s *Smoother) Reset() {
	s.windowSize = s.defaultWindow
	s.alpha = s.defaultAlpha
	s.ClearHistory()
}

// WindowSize returns the current moving-average window size.
func (s *Smoother) WindowSize() int { return s.windowSize }

// Alpha returns the current exponential smoothing factor.
func (s *Smoother) Alpha() float64 { return s.alpha }

// DriftWindow returns the configured drift window.
func (s *Smoother) DriftWindow() int { return s.cfg.DriftWindow }

// Config returns the construction parameters.
func (s *Smoother) Config() Config { return s.cfg }

// Trace returns the buffer for v. Callers must treat it as read-only.
func (s *Smoother) Trace(v Variant) *trace.Buffer {
	if !v.Valid() {
		panic(fmt.Sprintf("smoother: unknown variant %d", v))
	}
	return s.traces[v]
}

// RawTrace returns the displayed raw trace.
func (s *Smoother) RawTrace() *trace.Buffer { return s.traces[VariantRaw] }

// MovingAverageTrace returns the moving-average trace.
func (s *Smoother) MovingAverageTrace() *trace.Buffer { return s.traces[VariantMovingAverage] }

// ExponentialTrace returns the exponential trace.
func (s *Smoother) ExponentialTrace() *trace.Buffer { return s.traces[VariantExponential] }

// DriftCorrectedTrace returns the drift-corrected trace.
func (s *Smoother) DriftCorrectedTrace() *trace.Buffer { return s.traces[VariantDriftCorrected] }
