package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func sampleFrame() Frame {
	return Frame{
		Search: SearchBox{Query: "ga"},
		List: ListBox{
			Rows:  []Row{{Name: "gamma", Selected: true}, {Name: "galaxy"}},
			Total: 2,
			All:   5,
		},
		Help: HelpLine{
			Mode: "navigation",
			Bindings: []key.Binding{
				key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit search")),
				key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			},
		},
	}
}

func TestRenderShowsAllRegions(t *testing.T) {
	out := NewRenderer().Render(sampleFrame(), 60, 20)

	assert.Contains(t, out, "Search: ga")
	assert.Contains(t, out, "Repos 2/5")
	assert.Contains(t, out, "> gamma")
	assert.Contains(t, out, "  galaxy")
	assert.Contains(t, out, "NAVIGATION")
	assert.Contains(t, out, "edit search")
	assert.Contains(t, out, "quit")
}

func TestRenderFitsTerminal(t *testing.T) {
	width, height := 60, 20
	out := NewRenderer().Render(sampleFrame(), width, height)

	assert.Equal(t, height, lipgloss.Height(out))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), width)
	}
}

func TestRenderEmptyList(t *testing.T) {
	frame := sampleFrame()
	frame.List = ListBox{Total: 0, All: 5}

	out := NewRenderer().Render(frame, 60, 20)

	assert.Contains(t, out, "no matches")
	assert.NotContains(t, out, ">")
}

func TestRenderNoRepositories(t *testing.T) {
	frame := sampleFrame()
	frame.List = ListBox{}

	out := NewRenderer().Render(frame, 60, 20)

	assert.Contains(t, out, "no repositories found")
}

func TestRenderScrollPosition(t *testing.T) {
	frame := sampleFrame()
	frame.List.Total = 40
	frame.List.Offset = 10

	out := NewRenderer().Render(frame, 60, 20)

	assert.Contains(t, out, "(11-12)")
}

func TestListRowsHasFloor(t *testing.T) {
	assert.Equal(t, 1, ListRows(2))
	assert.Equal(t, 13, ListRows(20))
}
