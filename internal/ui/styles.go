package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorBg        = lipgloss.Color("#1e1e1e")
	colorFg        = lipgloss.Color("#dcdcdc")
	colorFgDim     = lipgloss.Color("#8a8a8a")
	colorAccent    = lipgloss.Color("#6496ff")
	colorYellow    = lipgloss.Color("#ffd75f")
	colorGreen     = lipgloss.Color("#5fd75f")
	colorRed       = lipgloss.Color("#ff5f5f")
	colorSelection = lipgloss.Color("#2d3741")
)

var (
	styleHUD = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)

	styleHUDLabel = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleHUDValue = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	styleOn = lipgloss.NewStyle().
		Foreground(colorGreen).
		Bold(true)

	styleOff = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorFgDim)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleIndicator = lipgloss.NewStyle().
			Foreground(colorBg).
			Background(colorYellow).
			Bold(true).
			Padding(0, 1)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleStatusErr = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	styleModalBorder = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Background(colorBg).
				Padding(1, 2)

	styleModalTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleModalField = lipgloss.NewStyle().
			Foreground(colorFg)

	styleModalSelected = lipgloss.NewStyle().
				Background(colorSelection).
				Foreground(colorFg).
				Bold(true)
)

func onOff(on bool) string {
	if on {
		return styleOn.Render("ON")
	}
	return styleOff.Render("OFF")
}
