package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

// A terminal cell is treated as cellWidth x cellHeight pointer units so that
// tremor and drift magnitudes keep their pixel meaning.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cellToPoint returns the pointer position at the center of a cell.
func cellToPoint(x, y int) geom.Point {
	return geom.Pt((float64(x)+0.5)*cellWidth, (float64(y)+0.5)*cellHeight)
}

// pointToCell returns the cell containing a screen-space point.
func pointToCell(p geom.Point) (int, int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

type cell struct {
	r     rune
	style int // 0 = blank, otherwise an index into canvas.styles plus one
}

// canvas is a grid of styled runes, clipped to its bounds.
type canvas struct {
	w, h   int
	cells  []cell
	styles []lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 0), max(h, 0)
	return &canvas{w: w, h: h, cells: make([]cell, w*h)}
}

// addStyle registers s and returns its handle for set and line.
func (c *canvas) addStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles)
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: style}
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// line draws a Bresenham segment including both endpoints.
func (c *canvas) line(x0, y0, x1, y1 int, r rune, style int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (c *canvas) String() string {
	var sb, run strings.Builder
	for y := range c.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current > 0 {
				sb.WriteString(c.styles[current-1].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := range c.w {
			cl := c.cells[y*c.w+x]
			if cl.style != current {
				flush()
				current = cl.style
			}
			if cl.r == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(cl.r)
			}
		}
		flush()
	}
	return sb.String()
}
