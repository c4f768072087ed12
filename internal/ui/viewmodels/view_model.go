package viewmodels

import (
	"gitjump/internal/ui/input"
	"gitjump/internal/ui/input/types"
	"gitjump/internal/ui/state"
	"gitjump/internal/ui/views"
)

// ViewModel maps session state to a frame description
type ViewModel struct {
	handler *input.Handler
}

// NewViewModel creates a view model that takes help bindings from handler
func NewViewModel(handler *input.Handler) *ViewModel {
	return &ViewModel{handler: handler}
}

// BuildFrame describes what a terminal of the given height should show. It
// reads s and never changes it.
func (vm *ViewModel) BuildFrame(s *state.Session, height int) views.Frame {
	return views.Frame{
		Search: views.SearchBox{
			Query:   s.Query,
			Editing: s.Mode == types.ModeEditing,
		},
		List: buildList(s, views.ListRows(height)),
		Help: vm.buildHelp(s.Mode),
	}
}

func buildList(s *state.Session, capacity int) views.ListBox {
	view := s.View()
	box := views.ListBox{
		Total: len(view),
		All:   len(s.Store().All()),
	}
	if len(view) == 0 {
		return box
	}

	cursor := s.Cursor.Index()
	offset := windowOffset(cursor, capacity, len(view))
	end := min(offset+capacity, len(view))

	box.Offset = offset
	box.Rows = make([]views.Row, 0, end-offset)
	for i := offset; i < end; i++ {
		box.Rows = append(box.Rows, views.Row{
			Name:     view[i].Name,
			Selected: i == cursor,
		})
	}
	return box
}

// windowOffset returns the first visible index so that cursor is on screen,
// keeping the window at the top of the list whenever possible.
func windowOffset(cursor, capacity, total int) int {
	if capacity <= 0 || total <= capacity {
		return 0
	}
	if cursor < capacity {
		return 0
	}
	return min(cursor-capacity+1, total-capacity)
}

func (vm *ViewModel) buildHelp(mode types.Mode) views.HelpLine {
	line := views.HelpLine{Mode: mode.String()}
	if h := vm.handler.Mode(mode); h != nil {
		line.Bindings = h.Bindings()
	}
	return line
}
