package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

func TestCellMapping(t *testing.T) {
	p := cellToPoint(3, 2)
	if x, y := pointToCell(p); x != 3 || y != 2 {
		t.Fatalf("round trip cell = (%d, %d), want (3, 2)", x, y)
	}
	if x, y := pointToCell(geom.Pt(-1, -1)); x != -1 || y != -1 {
		t.Fatalf("negative point cell = (%d, %d), want (-1, -1)", x, y)
	}
}

func TestCanvasLine(t *testing.T) {
	c := newCanvas(5, 3)
	s := c.addStyle(lipgloss.NewStyle())
	c.line(0, 0, 4, 2, '#', s)

	for _, xy := range [][2]int{{0, 0}, {4, 2}, {2, 1}} {
		if c.at(xy[0], xy[1]) != '#' {
			t.Fatalf("cell %v not drawn", xy)
		}
	}
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d rows, want 3", len(lines))
	}
}

func TestCanvasClips(t *testing.T) {
	c := newCanvas(3, 3)
	c.line(-10, 1, 10, 1, '-', 0)
	for x := range 3 {
		if c.at(x, 1) != '-' {
			t.Fatalf("cell (%d, 1) not drawn", x)
		}
	}
	if c.at(-1, 1) != 0 || c.at(3, 1) != 0 {
		t.Fatal("out-of-bounds access should read as blank")
	}
}

func TestCanvasBlankString(t *testing.T) {
	c := newCanvas(4, 2)
	if got := c.String(); got != "    \n    " {
		t.Fatalf("String() = %q", got)
	}
}
