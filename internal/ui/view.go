package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-smooth/dsp/geom"
)

const (
	headerHeight = 1
	footerHeight = 1
	hudWidth     = 38
	minCanvas    = 20
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.modal.active {
		return m.modal.render(m.width, m.height)
	}

	cw, ch, showHUD := m.layout()
	body := m.renderCanvas(cw, ch)
	if showHUD {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderHUD(ch))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// layout returns the canvas size and whether the HUD column fits.
func (m Model) layout() (w, h int, showHUD bool) {
	h = max(m.height-headerHeight-footerHeight, 1)
	if m.width-hudWidth >= minCanvas {
		return m.width - hudWidth, h, true
	}
	return max(m.width, 1), h, false
}

func (m Model) renderCanvas(w, h int) string {
	c := newCanvas(w, h)

	if m.history {
		for _, d := range descriptors {
			if !m.visibility.Visible(d.variant) {
				continue
			}
			pairs := m.smoother.Trace(d.variant).OrderedPairs()
			if len(pairs) <= 1 {
				continue
			}
			style := c.addStyle(d.trace)
			px, py := m.screenCell(pairs[0])
			for _, p := range pairs[1:] {
				x, y := m.screenCell(p)
				c.line(px, py, x, y, d.glyph, style)
				px, py = x, y
			}
		}
	}

	if m.hasSample {
		for _, d := range descriptors {
			if !m.visibility.Visible(d.variant) {
				continue
			}
			if p, ok := m.sample.Point(d.variant).Get(); ok {
				x, y := pointToCell(m.view.Apply(p))
				c.set(x, y, cursorGlyph, c.addStyle(d.cursor))
			}
		}
	}
	return c.String()
}

func (m Model) screenCell(p [2]int) (int, int) {
	return pointToCell(m.view.Apply(geom.Pt(float64(p[0]), float64(p[1]))))
}

func (m Model) renderHeader() string {
	title := styleHUDValue.Render("algo-smooth")
	params := styleHUDLabel.Render(fmt.Sprintf("  N=%d  alpha=%.2f  zoom=%.2fx",
		m.smoother.WindowSize(), m.smoother.Alpha(), m.view.Zoom))
	line := title + params
	if m.indicator.Active() {
		line += "  " + styleIndicator.Render("PARAMETER CHANGED")
	}
	return line
}

func (m Model) renderHUD(height int) string {
	label := styleHUDLabel.Render
	value := styleHUDValue.Render

	lines := []string{
		label("Window N     ") + value(fmt.Sprintf("%d", m.smoother.WindowSize())),
		label("Alpha        ") + value(fmt.Sprintf("%.2f", m.smoother.Alpha())),
		label("History (h)  ") + onOff(m.history),
		label("Samples      ") + value(fmt.Sprintf("%d/%d", m.smoother.RawTrace().Len(), m.smoother.RawTrace().Cap())),
		"",
		label("Tremor (t)   ") + onOff(m.tremor.Enabled()),
		label(fmt.Sprintf("  %.1f px @ %.1f Hz", m.tremor.Intensity(), m.tremor.Frequency())),
		label("Drift (d)    ") + onOff(m.drift.Enabled()),
		label(fmt.Sprintf("  %.1f px/s @ %.0f°", m.drift.Speed(), m.drift.Direction())),
		"",
		label("Visibility"),
	}
	for _, d := range descriptors {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			d.cursor.Render(string(cursorGlyph)),
			label(fmt.Sprintf("%-12s(%s)", d.name, d.key)),
			onOff(m.visibility.Visible(d.variant))))
	}
	lines = append(lines,
		"",
		label("FPS          ")+value(fmt.Sprintf("%.1f", m.metrics.AverageFPS())),
		label("Latency      ")+value(fmt.Sprintf("%.3f ms", m.metrics.AverageLatency())),
		label("Latency p95  ")+value(fmt.Sprintf("%.3f ms", m.metrics.LatencyP95())),
	)

	if len(lines) > height {
		lines = lines[:height]
	}
	return styleHUD.Width(hudWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"↑/↓", "N"},
		{"←/→", "alpha"},
		{"h", "history"},
		{"1-4", "toggle"},
		{"r", "reset"},
		{"g", "plot"},
		{"t/d", "tremor/drift"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, styleFooterKey.Render(k.key)+styleFooter.Render(" "+k.desc))
	}
	if m.status != "" {
		st := styleStatus
		if m.statusErr {
			st = styleStatusErr
		}
		parts = append(parts, st.Render(m.status))
	}
	return " " + strings.Join(parts, "  ")
}
