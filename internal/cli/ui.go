package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("35")  // success
	colorBlue  = lipgloss.Color("75")  // file paths
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	// styleSuccess for the confirmation line after a successful run.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// stylePath for output file paths.
	stylePath = lipgloss.NewStyle().Foreground(colorBlue)

	// styleDim for secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)
)
