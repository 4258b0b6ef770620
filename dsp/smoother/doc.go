// Package smoother implements the streaming pointer-smoothing engine.
//
// A [Smoother] ingests one (x, y) sample per frame and derives four
// synchronized traces from it: the raw input, a moving average, an
// exponentially smoothed (one-pole IIR) signal and an optional
// drift-corrected signal. Each trace is kept in a bounded [trace.Buffer].
//
// Moving-average input is taken from a raw-sample window that is separate
// from the displayed raw trace. Suspending history therefore freezes the
// traces while the filters keep running.
//
// A Smoother is not safe for concurrent use. Hosts driving it from several
// goroutines must serialize calls.
package smoother
