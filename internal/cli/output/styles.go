package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Known   lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles builds styles bound to a lipgloss renderer, so color support is
// detected for the writer the renderer targets.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Known:   lr.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Header:  lr.NewStyle().Bold(true),
	}
}
