package maptui

import (
	"github.com/charmbracelet/lipgloss"

	"pasture/pkg/mapeditor"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)

	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	paddockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28")).Bold(true)
	liftedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true)
	pulseStyle    = lipgloss.NewStyle().Background(lipgloss.Color("220"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

var featureStyles = map[mapeditor.FeatureType]lipgloss.Style{
	mapeditor.WaterTrough: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	mapeditor.Fence:       lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	mapeditor.River:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	mapeditor.Road:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	mapeditor.Tree:        lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	mapeditor.House:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
}

func levelStyle(l mapeditor.Level) lipgloss.Style {
	switch l {
	case mapeditor.LevelSuccess:
		return successStyle
	case mapeditor.LevelWarning:
		return warningStyle
	case mapeditor.LevelDanger:
		return errorStyle
	}
	return accentStyle
}
