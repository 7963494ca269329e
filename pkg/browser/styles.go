package browser

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	salmonPink  = lipgloss.Color("#FFB3BA")
	coralPink   = lipgloss.Color("#FFCCCB")
	mintGreen   = lipgloss.Color("#A8E6CF")
	mutedGray   = lipgloss.Color("#6B7280")
	brightWhite = lipgloss.Color("#F9FAFB")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	wordStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(coralPink)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)

	definitionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(mutedGray)
)
