// Package geom provides the 2D point value shared by the smoothing engine,
// its trace buffers and their consumers.
package geom

// Point is an immutable 2D coordinate. Points compare by value.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return mathSqrt(dx*dx + dy*dy)
}

// Pair returns p as integer coordinates, truncating toward zero.
func (p Point) Pair() [2]int {
	return [2]int{int(p.X), int(p.Y)}
}

// Channels splits pts into separate x and y sample slices, reusing xs and ys.
func Channels(pts []Point, xs, ys []float64) ([]float64, []float64) {
	xs = xs[:0]
	ys = ys[:0]
	for _, p := range pts {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}
