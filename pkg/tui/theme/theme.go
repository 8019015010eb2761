// Package theme centralizes Lip Gloss styles for the calendar UI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used by the terminal UI.
type Theme struct {
	Header HeaderTheme
	Footer FooterTheme
	Detail DetailTheme
	Modal  ModalTheme
}

// HeaderTheme styles the month title and navigation hints.
type HeaderTheme struct {
	Title lipgloss.Style
	Nav   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// DetailTheme styles the line describing the cursor's day.
type DetailTheme struct {
	Date  lipgloss.Style
	Note  lipgloss.Style
	Empty lipgloss.Style
}

// ModalTheme styles the editor popup.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
			Nav:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("#374151")).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
		},
		Detail: DetailTheme{
			Date:  lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")).Bold(true),
			Note:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#60a5fa")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
			Body:  lipgloss.NewStyle(),
			Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
