package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - ambiguous
	colorRed    = lipgloss.Color("167") // Soft red - failure
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	styleAmbiguous = lipgloss.NewStyle().Foreground(colorYellow)
	styleFailure   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader    = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)
