package views

import "github.com/charmbracelet/bubbles/key"

// Frame describes one screen: search box, list box and help line. It carries
// no terminal state and can be built and inspected without rendering.
type Frame struct {
	Search SearchBox
	List   ListBox
	Help   HelpLine
}

// SearchBox is the single-line query field
type SearchBox struct {
	Query   string
	Editing bool
}

// ListBox is the visible window of the filtered items
type ListBox struct {
	Rows   []Row
	Offset int // index in the filtered view of Rows[0]
	Total  int // number of filtered items
	All    int // number of discovered items
}

// Row is one visible item
type Row struct {
	Name     string
	Selected bool
}

// HelpLine is the mode-dependent key hint line
type HelpLine struct {
	Mode     string
	Bindings []key.Binding
}

// Layout sizes shared by the view model and the renderer
const (
	SearchBoxHeight = 3 // border, query, border
	HelpLineHeight  = 1
	ListChrome      = 3 // list box border and header line
)

// ListRows returns how many item rows fit in a terminal of the given height
func ListRows(height int) int {
	rows := height - SearchBoxHeight - HelpLineHeight - ListChrome
	if rows < 1 {
		return 1
	}
	return rows
}
