package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Renderer turns a Frame into terminal output
type Renderer struct {
	styles *Styles
	help   help.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		help:   help.New(),
	}
}

// Render produces the complete view for a terminal of the given size
func (r *Renderer) Render(frame Frame, width, height int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.renderSearch(frame.Search, width),
		r.renderList(frame.List, width, ListRows(height)),
		r.renderHelp(frame.Help, width),
	)
}

func (r *Renderer) renderSearch(box SearchBox, width int) string {
	style := r.styles.SearchBox
	if box.Editing {
		style = r.styles.SearchEditing
	}
	inner := innerWidth(style, width)

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.PromptStyle = r.styles.SearchLabel
	ti.CharLimit = 0
	ti.Width = max(inner-lipgloss.Width(ti.Prompt)-1, 1)
	ti.SetValue(box.Query)
	if box.Editing {
		ti.Focus()
	} else {
		ti.Blur()
	}

	field := lipgloss.NewStyle().MaxWidth(inner).Render(ti.View())
	return style.Width(inner + style.GetHorizontalPadding()).Render(field)
}

func (r *Renderer) renderList(list ListBox, width, rows int) string {
	style := r.styles.ListBox
	inner := innerWidth(style, width)

	header := fmt.Sprintf("Repos %d/%d", list.Total, list.All)
	if list.Total > len(list.Rows) && len(list.Rows) > 0 {
		last := list.Offset + len(list.Rows)
		header += r.styles.Scroll.Render(fmt.Sprintf("  (%d-%d)", list.Offset+1, last))
	}

	lines := []string{r.styles.ListHeader.Render(header)}
	switch {
	case list.All == 0:
		lines = append(lines, r.styles.Empty.Render("no repositories found"))
	case len(list.Rows) == 0:
		lines = append(lines, r.styles.Empty.Render("no matches"))
	}
	for _, row := range list.Rows {
		if row.Selected {
			lines = append(lines, r.styles.Selected.Render("> "+row.Name))
		} else {
			lines = append(lines, r.styles.Row.Render("  "+row.Name))
		}
	}

	content := lipgloss.NewStyle().MaxWidth(inner).Render(strings.Join(lines, "\n"))
	return style.
		Width(inner + style.GetHorizontalPadding()).
		Height(rows + 1).
		Render(content)
}

func (r *Renderer) renderHelp(line HelpLine, width int) string {
	badge := r.styles.ModeBadge.Render(strings.ToUpper(line.Mode))
	r.help.Width = max(width-lipgloss.Width(badge)-1, 0)
	return badge + " " + r.styles.Help.Render(r.help.ShortHelpView(line.Bindings))
}

// innerWidth returns the content width left inside style's border and padding
func innerWidth(style lipgloss.Style, width int) int {
	w := width - style.GetHorizontalBorderSize() - style.GetHorizontalPadding()
	if w < 1 {
		return 1
	}
	return w
}
