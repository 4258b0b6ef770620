// Package smooth provides the scalar filter primitives used by the pointer
// smoothing engine: a bounded moving average and first-order exponential
// smoothing (a one-pole IIR low-pass).
//
// Both functions are pure. Filter state, such as the previous exponential
// output, is owned by the caller.
package smooth
