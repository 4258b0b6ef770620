package plot

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

// svgWriter keeps the first write error so drawing code can stay linear.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func newSVGWriter(w io.Writer, width, height int) *svgWriter {
	s := &svgWriter{w: bufio.NewWriter(w)}
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`+"\n",
		width, height, width, height)
	s.printf(`<rect width="100%%" height="100%%" fill="#ffffff"/>` + "\n")
	return s
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *svgWriter) text(x, y float64, size int, anchor, weight, body string) {
	s.printf(`<text x="%.1f" y="%.1f" font-size="%d" text-anchor="%s" font-weight="%s">%s</text>`+"\n",
		x, y, size, anchor, weight, html.EscapeString(body))
}

func (s *svgWriter) line(x1, y1, x2, y2 float64, stroke string, width float64) {
	s.printf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x1, y1, x2, y2, stroke, width)
}

func (s *svgWriter) close() error {
	s.printf("</svg>\n")
	if s.err != nil {
		return fmt.Errorf("plot: write svg: %w", s.err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("plot: write svg: %w", err)
	}
	return nil
}
