package trace

import (
	"iter"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// Buffer is a circular FIFO of points with fixed capacity.
type Buffer struct {
	points []geom.Point
	head   int // next write position
	count  int
}

// New returns an empty Buffer holding at most capacity points.
// capacity must be >= 1; smaller values are a caller error.
func New(capacity int) *Buffer {
	return &Buffer{points: make([]geom.Point, capacity)}
}

// Append adds p as the newest point, evicting the oldest when full.
func (b *Buffer) Append(p geom.Point) {
	b.points[b.head] = p
	b.head++
	if b.head == len(b.points) {
		b.head = 0
	}
	if b.count < len(b.points) {
		b.count++
	}
}

// Latest returns the newest point. ok is false when the buffer is empty.
func (b *Buffer) Latest() (p geom.Point, ok bool) {
	if b.count == 0 {
		return geom.Point{}, false
	}
	i := b.head - 1
	if i < 0 {
		i = len(b.points) - 1
	}
	return b.points[i], true
}

// At returns the i-th point counted from the oldest.
func (b *Buffer) At(i int) geom.Point {
	if i < 0 || i >= b.count {
		panic("trace: index out of range")
	}
	return b.points[b.index(i)]
}

// Len returns the number of stored points.
func (b *Buffer) Len() int {
	return b.count
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.points)
}

// Clear empties the buffer. Capacity is unchanged.
func (b *Buffer) Clear() {
	b.head = 0
	b.count = 0
}

// All iterates the stored points from oldest to newest.
func (b *Buffer) All() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for i := 0; i < b.count; i++ {
			if !yield(b.points[b.index(i)]) {
				return
			}
		}
	}
}

// Points returns a copy of the stored points, oldest first.
func (b *Buffer) Points() []geom.Point {
	out := make([]geom.Point, b.count)
	for i := range out {
		out[i] = b.points[b.index(i)]
	}
	return out
}

// OrderedPairs returns the stored points as integer pairs, oldest first,
// with coordinates truncated toward zero.
func (b *Buffer) OrderedPairs() [][2]int {
	out := make([][2]int, b.count)
	for i := range out {
		out[i] = b.points[b.index(i)].Pair()
	}
	return out
}

func (b *Buffer) index(i int) int {
	start := b.head - b.count
	if start < 0 {
		start += len(b.points)
	}
	j := start + i
	if j >= len(b.points) {
		j -= len(b.points)
	}
	return j
}
