package ui

import (
	"github.com/montanaflynn/stats"
)

// history is a fixed-size ring of float64 samples, oldest first.
type history struct {
	data  []float64
	head  int
	count int
}

func newHistory(size int) *history {
	return &history{data: make([]float64, max(size, 1))}
}

func (h *history) push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

func (h *history) samples() []float64 {
	out := make([]float64, h.count)
	start := (h.head - h.count + len(h.data)) % len(h.data)
	for i := range out {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// Metrics tracks recent frame rate and per-frame processing latency.
type Metrics struct {
	fps     *history
	latency *history
}

// NewMetrics keeps the last size samples of each series.
func NewMetrics(size int) *Metrics {
	return &Metrics{fps: newHistory(size), latency: newHistory(size)}
}

// AddFPS records an instantaneous frame rate.
func (m *Metrics) AddFPS(fps float64) { m.fps.push(fps) }

// AddLatency records a frame processing time in milliseconds.
func (m *Metrics) AddLatency(ms float64) { m.latency.push(ms) }

// AverageFPS returns the mean recorded frame rate, 0 when empty.
func (m *Metrics) AverageFPS() float64 { return mean(m.fps.samples()) }

// AverageLatency returns the mean recorded latency, 0 when empty.
func (m *Metrics) AverageLatency() float64 { return mean(m.latency.samples()) }

// LatencyP95 returns the 95th percentile latency, 0 with fewer than two
// samples.
func (m *Metrics) LatencyP95() float64 {
	s := m.latency.samples()
	if len(s) < 2 {
		return 0
	}
	p, err := stats.Percentile(s, 95)
	if err != nil {
		return 0
	}
	return p
}

func mean(s []float64) float64 {
	v, err := stats.Mean(s)
	if err != nil {
		return 0
	}
	return v
}
