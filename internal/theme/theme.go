package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Error       *lipgloss.Style
	Prompt      *lipgloss.Style
	Query       *lipgloss.Style
	Cursor      *lipgloss.Style
	Placeholder *lipgloss.Style
	Match       *lipgloss.Style
	Selected    *lipgloss.Style
	Header      *lipgloss.Style
	Item        *lipgloss.Style
	Overflow    *lipgloss.Style
	Key         *lipgloss.Style
	Footer      *lipgloss.Style
	Debug       *lipgloss.Style
	DebugLabel  *lipgloss.Style
}

var defaultStyles = Styles{
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Faint(true).Italic(true),
	),
	Match: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Selected: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Item: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Overflow: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Key: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Debug: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DebugLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
