package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#f4a261")
	mutedColor     = lipgloss.Color("244")
	errorColor     = lipgloss.Color("9")
	panelTextColor = lipgloss.Color("#e0def4")
)

var (
	titleStyle          = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	taglineStyle        = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	sectionHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle         = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle          = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	answerBoxStyle      = lipgloss.NewStyle().Foreground(panelTextColor).Background(lipgloss.Color("#2a2733")).Padding(1, 2)
	filenameStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ecae6"))
	spanStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd166"))
	inputBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	buttonStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(accentColor).Padding(0, 2)
	buttonDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e6a86")).Background(lipgloss.Color("#26233a")).Padding(0, 2)
	statusBarStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	healthOKStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
)
