package tui

import "github.com/charmbracelet/lipgloss"

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)

	headerStyle      lipgloss.Style
	labelStyle       lipgloss.Style
	valueStyle       lipgloss.Style
	activeParamStyle lipgloss.Style
	graphStyle       lipgloss.Style
	errorStyle       lipgloss.Style
	helpStyle        lipgloss.Style
)

func applyTheme(t Theme) {
	headerStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(t.Muted).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(t.Text)
	activeParamStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	graphStyle = lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error)
	helpStyle = lipgloss.NewStyle().Foreground(t.Muted).MarginTop(2)
}

func init() { applyTheme(CurrentTheme) }
