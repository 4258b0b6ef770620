// Package jitter compares a smoothed pointer trace with its reference and
// reports how far, how smoothly and how late it follows.
package jitter

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// ErrEmpty is returned when either trace has no points to compare.
var ErrEmpty = errors.New("jitter: empty trace")

// Report summarizes the deviation of a candidate trace from a reference.
type Report struct {
	Samples int
	// Point-wise euclidean deviation statistics, in pixels.
	MeanDeviation float64
	RMSDeviation  float64
	P95Deviation  float64
	MaxDeviation  float64
	// PathRatio is candidate path length over reference path length. Values
	// below 1 mean the candidate travels less, i.e. is smoother.
	PathRatio float64
	// Lag is the shift in samples, up to MaxLag, at which the candidate best
	// matches the reference.
	Lag int
}

// Options tunes Compare.
type Options struct {
	// MaxLag bounds the lag search. Zero disables it.
	MaxLag int
}

// Compare aligns the newest points of reference and candidate and measures
// their deviation. Traces of different length are compared over their
// common tail.
func Compare(reference, candidate []geom.Point, opts Options) (Report, error) {
	n := min(len(reference), len(candidate))
	if n == 0 {
		return Report{}, ErrEmpty
	}
	ref := reference[len(reference)-n:]
	cand := candidate[len(candidate)-n:]

	dev := deviations(ref, cand, 0)
	mean, err := stats.Mean(dev)
	if err != nil {
		return Report{}, fmt.Errorf("jitter: mean: %w", err)
	}
	maxDev, err := stats.Max(dev)
	if err != nil {
		return Report{}, fmt.Errorf("jitter: max: %w", err)
	}
	// Percentile rejects inputs too short to rank.
	p95 := maxDev
	if n > 1 {
		if p95, err = stats.Percentile(dev, 95); err != nil {
			return Report{}, fmt.Errorf("jitter: percentile: %w", err)
		}
	}
	squares := make([]float64, len(dev))
	for i, d := range dev {
		squares[i] = d * d
	}
	meanSq, err := stats.Mean(squares)
	if err != nil {
		return Report{}, fmt.Errorf("jitter: mean square: %w", err)
	}

	return Report{
		Samples:       n,
		MeanDeviation: mean,
		RMSDeviation:  math.Sqrt(meanSq),
		P95Deviation:  p95,
		MaxDeviation:  maxDev,
		PathRatio:     pathRatio(ref, cand),
		Lag:           bestLag(ref, cand, opts.MaxLag),
	}, nil
}

// deviations returns |ref[i-lag] - cand[i]| for every i >= lag.
func deviations(ref, cand []geom.Point, lag int) []float64 {
	out := make([]float64, 0, len(cand)-lag)
	for i := lag; i < len(cand); i++ {
		out = append(out, ref[i-lag].Dist(cand[i]))
	}
	return out
}

func bestLag(ref, cand []geom.Point, maxLag int) int {
	best, bestErr := 0, math.Inf(1)
	for lag := 0; lag <= maxLag && lag < len(cand); lag++ {
		m, err := stats.Mean(deviations(ref, cand, lag))
		if err != nil {
			break
		}
		if m < bestErr {
			best, bestErr = lag, m
		}
	}
	return best
}

// PathLength returns the summed segment length of pts.
func PathLength(pts []geom.Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Dist(pts[i-1])
	}
	return total
}

func pathRatio(ref, cand []geom.Point) float64 {
	r := PathLength(ref)
	if r == 0 {
		return 1
	}
	return PathLength(cand) / r
}

// Spread returns the population standard deviation of each coordinate
// channel of pts.
func Spread(pts []geom.Point) (sx, sy float64, err error) {
	if len(pts) == 0 {
		return 0, 0, ErrEmpty
	}
	xs, ys := geom.Channels(pts, nil, nil)
	if sx, err = stats.StandardDeviationPopulation(xs); err != nil {
		return 0, 0, fmt.Errorf("jitter: x spread: %w", err)
	}
	if sy, err = stats.StandardDeviationPopulation(ys); err != nil {
		return 0, 0, fmt.Errorf("jitter: y spread: %w", err)
	}
	return sx, sy, nil
}
