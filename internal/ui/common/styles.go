// Package common provides shared styles for the console output.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	MusicIcon   = "🎵"
	StopIcon    = "⏹️"
	ChairIcon   = "🪑"
	OutIcon     = "❌"
	WinnerIcon  = "🏆"
	WarningIcon = "⚠️"

	Divider = "-----------------------------------------------"
)

// Lipgloss Styles
var (
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	SeatStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	OutStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	WinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
