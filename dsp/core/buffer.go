package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Tail returns the last n elements of buf, or all of buf when it is shorter.
// The result aliases buf.
func Tail(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if n >= len(buf) {
		return buf
	}
	return buf[len(buf)-n:]
}
