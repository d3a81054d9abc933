package ui

import "github.com/charmbracelet/lipgloss"

// --- UI Styles ---
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#8942E1"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AC4BA")).Italic(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lineStyle     = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2A2B3D")).Bold(true)
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	scrollbarBg   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	scrollbarFg   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8942E1"))
)
