package tui

import "github.com/charmbracelet/lipgloss"

const sidebarWidth = 28

var (
	accent = lipgloss.Color("#22D3EE")
	muted  = lipgloss.Color("#9CA3AF")
	border = lipgloss.Color("#374151")

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(muted)

	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(border)

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border)

	sidebarHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true).
				MarginBottom(1)

	activeItemStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	contentStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)
)
