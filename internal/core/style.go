package core

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleConfig defines visual styles for the interactive session
type StyleConfig struct {
	PromptColor  lipgloss.Color
	SubtleColor  lipgloss.Color
	ErrorColor   lipgloss.Color
	WarningColor lipgloss.Color
}

// DefaultStyleConfig returns the default style configuration
func DefaultStyleConfig() *StyleConfig {
	return &StyleConfig{
		PromptColor:  lipgloss.Color("10"),  // Green
		SubtleColor:  lipgloss.Color("241"), // Grey
		ErrorColor:   lipgloss.Color("9"),   // Red
		WarningColor: lipgloss.Color("11"),  // Yellow
	}
}

// Marker renders a prompt marker such as "gpt>"
func (s *StyleConfig) Marker(text string) string {
	return lipgloss.NewStyle().Foreground(s.PromptColor).Bold(true).Render(text)
}

// Error renders an error line
func (s *StyleConfig) Error(text string) string {
	return lipgloss.NewStyle().Foreground(s.ErrorColor).Render(text)
}

// Warning renders a risk hint
func (s *StyleConfig) Warning(text string) string {
	return lipgloss.NewStyle().Foreground(s.WarningColor).Bold(true).Render(text)
}

// Subtle renders secondary text
func (s *StyleConfig) Subtle(text string) string {
	return lipgloss.NewStyle().Foreground(s.SubtleColor).Render(text)
}
