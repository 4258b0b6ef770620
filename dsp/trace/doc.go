// Package trace provides a fixed-capacity, time-ordered history of points.
//
// A [Buffer] keeps the most recent points appended to it. Once full, each
// append evicts the oldest point. Iteration always runs oldest to newest.
package trace
