package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/signal"
)

// modalField is one editable row. Toggle fields read and write 0 or 1.
type modalField struct {
	label          string
	toggle         bool
	min, max, step float64
	get            func() float64
	set            func(float64)
}

func (f modalField) clamp(v float64) float64 {
	if f.toggle {
		if v != 0 {
			return 1
		}
		return 0
	}
	return core.Clamp(v, f.min, f.max)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// settingsModal edits a simulator in place; every change applies
// immediately.
type settingsModal struct {
	active   bool
	title    string
	fields   []modalField
	selected int
	editing  bool
	input    textinput.Model
}

func newModalInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 12
	return ti
}

func tremorFields(tr *signal.Tremor) []modalField {
	return []modalField{
		{
			label:  "Enabled",
			toggle: true,
			get:    func() float64 { return boolValue(tr.Enabled()) },
			set:    func(v float64) { tr.SetEnabled(v != 0) },
		},
		{
			label: "Intensity", min: 0, max: 50, step: 0.5,
			get: tr.Intensity,
			set: tr.SetIntensity,
		},
		{
			label: "Frequency (Hz)", min: 0.1, max: 50, step: 0.5,
			get: tr.Frequency,
			set: tr.SetFrequency,
		},
	}
}

func driftFields(d *signal.Drift) []modalField {
	return []modalField{
		{
			label:  "Enabled",
			toggle: true,
			get:    func() float64 { return boolValue(d.Enabled()) },
			set:    func(v float64) { d.SetEnabled(v != 0) },
		},
		{
			label: "Speed (px/s)", min: 0, max: 200, step: 5,
			get: d.Speed,
			set: d.SetSpeed,
		},
		{
			label: "Direction (deg)", min: 0, max: 359, step: 15,
			get: d.Direction,
			set: d.SetDirection,
		},
	}
}

func (m *settingsModal) open(title string, fields []modalField) {
	m.active = true
	m.title = title
	m.fields = fields
	m.selected = 0
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *settingsModal) close() {
	m.active = false
	m.editing = false
	m.input.Blur()
}

func (m *settingsModal) move(delta int) {
	n := len(m.fields)
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *settingsModal) adjust(direction float64) {
	f := m.fields[m.selected]
	if f.toggle {
		f.set(1 - f.get())
		return
	}
	f.set(f.clamp(f.get() + direction*f.step))
}

// toggleOrEdit flips a toggle field or starts typed entry on a numeric one.
func (m *settingsModal) toggleOrEdit() tea.Cmd {
	f := m.fields[m.selected]
	if f.toggle {
		f.set(1 - f.get())
		return nil
	}
	m.editing = true
	m.input.SetValue(strconv.FormatFloat(f.get(), 'f', 2, 64))
	m.input.CursorEnd()
	return m.input.Focus()
}

// commit applies the typed value. Unparsable input is discarded.
func (m *settingsModal) commit() {
	f := m.fields[m.selected]
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64); err == nil && core.IsFinite(v) {
		f.set(f.clamp(v))
	}
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

// handleKey consumes every key while the modal is open.
func (m *settingsModal) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.commit()
		case "esc":
			m.editing = false
			m.input.Blur()
			m.input.SetValue("")
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return cmd
		}
		return nil
	}

	switch msg.String() {
	case "esc", "enter", "q":
		m.close()
	case "up", "k", "shift+tab":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case " ", "space":
		return m.toggleOrEdit()
	}
	return nil
}

func (m *settingsModal) render(width, height int) string {
	var rows []string
	for i, f := range m.fields {
		var value string
		switch {
		case i == m.selected && m.editing:
			value = m.input.View()
		case f.toggle:
			value = onOff(f.get() != 0)
		default:
			value = fmt.Sprintf("%.2f", f.get())
		}
		line := fmt.Sprintf("%-18s %s", f.label, value)
		if i == m.selected {
			rows = append(rows, styleModalSelected.Render(" ▸ "+line+" "))
		} else {
			rows = append(rows, styleModalField.Render("   "+line))
		}
	}

	hint := styleHUDLabel.Render("←/→ adjust  ↑/↓ navigate  space toggle/type  enter/esc close")
	content := styleModalTitle.Render(m.title) + "\n\n" + strings.Join(rows, "\n") + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styleModalBorder.Render(content))
}
