package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	SearchBox     lipgloss.Style
	SearchEditing lipgloss.Style
	SearchLabel   lipgloss.Style
	ListBox       lipgloss.Style
	ListHeader    lipgloss.Style
	Row           lipgloss.Style
	Selected      lipgloss.Style
	Empty         lipgloss.Style
	Scroll        lipgloss.Style
	ModeBadge     lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchEditing: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1),
		SearchLabel: lipgloss.NewStyle().Bold(true),
		ListBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ListHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Row:        lipgloss.NewStyle(),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Empty:      lipgloss.NewStyle().Faint(true).Italic(true),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		ModeBadge:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		Help:       lipgloss.NewStyle().Faint(true),
	}
}
