package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitjump/internal/domain"
	"gitjump/internal/logging"
	"gitjump/internal/ui/input"
	inputtypes "gitjump/internal/ui/input/types"
	"gitjump/internal/ui/logic"
	"gitjump/internal/ui/state"
	"gitjump/internal/ui/viewmodels"
	"gitjump/internal/ui/views"
)

// Deliverer receives the chosen item when the user confirms
type Deliverer interface {
	Deliver(item domain.Item) error
}

// Options configures a picker session
type Options struct {
	Keys      inputtypes.KeyMap // zero value uses inputtypes.DefaultKeyMap
	Threshold int
	Scorer    logic.Scorer // nil uses logic.FuzzyScorer
	Deliverer Deliverer    // nil discards the choice
}

// Model represents the UI state
type Model struct {
	session   *state.Session
	ranker    logic.Ranker
	deliverer Deliverer

	width  int
	height int

	inputHandler *input.Handler        // mode transition table
	viewModel    *viewmodels.ViewModel // session -> frame
	renderer     *views.Renderer       // frame -> string

	chosen      *domain.Item
	deliveryErr error
}

// NewModel creates a picker over items
func NewModel(items []domain.Item, opts Options) *Model {
	ranker := logic.NewRanker(opts.Threshold)
	if opts.Scorer != nil {
		ranker.Scorer = opts.Scorer
	}

	keys := opts.Keys
	if len(keys.Confirm.Keys()) == 0 {
		keys = inputtypes.DefaultKeyMap()
	}
	handler := input.New(keys)

	return &Model{
		session:      state.NewSession(items),
		ranker:       ranker,
		deliverer:    opts.Deliverer,
		inputHandler: handler,
		viewModel:    viewmodels.NewViewModel(handler),
		renderer:     views.NewRenderer(),
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles one input event
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		k := input.FromTea(msg)
		for _, action := range m.inputHandler.HandleKey(m.session.Mode, k) {
			m.processAction(action)
			if !m.session.Running {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m *Model) processAction(action inputtypes.Action) {
	switch a := action.(type) {
	case inputtypes.ChangeModeAction:
		logging.Debug("mode changed", "from", m.session.Mode, "to", a.Mode)
		m.session.Mode = a.Mode

	case inputtypes.AppendRuneAction:
		m.session.AppendRune(a.Rune)
		m.session.Refilter(m.ranker)

	case inputtypes.DeleteRuneAction:
		if m.session.DeleteRune() {
			m.session.Refilter(m.ranker)
		}

	case inputtypes.NavigateAction:
		switch a.Direction {
		case inputtypes.DirectionUp:
			m.session.MoveUp()
		case inputtypes.DirectionDown:
			m.session.MoveDown()
		}

	case inputtypes.ConfirmAction:
		m.confirm()
		m.session.Stop()

	case inputtypes.QuitAction:
		logging.Info("picker closed without a choice", "forced", a.Force)
		m.session.Stop()
	}
}

// confirm hands the highlighted item to the deliverer. A failed delivery is
// recorded, not retried; the session ends either way.
func (m *Model) confirm() {
	item, ok := m.session.Current()
	if !ok {
		logging.Info("confirm on empty list", "query", m.session.Query)
		return
	}

	m.chosen = &item
	if m.deliverer == nil {
		return
	}
	if err := m.deliverer.Deliver(item); err != nil {
		logging.Error("failed to deliver choice", "path", item.Path, "err", err)
		m.deliveryErr = err
		return
	}
	logging.Info("repository chosen", "name", item.Name, "path", item.Path)
}

// View renders the UI
func (m *Model) View() string {
	if !m.session.Running {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.Frame(), m.width, m.height)
}

// Frame returns the description of the current screen
func (m *Model) Frame() views.Frame {
	return m.viewModel.BuildFrame(m.session, m.height)
}

// Session exposes the session state, read-only by convention
func (m *Model) Session() *state.Session {
	return m.session
}

// Chosen returns the item the user confirmed, if any
func (m *Model) Chosen() (domain.Item, bool) {
	if m.chosen == nil {
		return domain.Item{}, false
	}
	return *m.chosen, true
}

// DeliveryErr returns the error from handing over the chosen item, if any
func (m *Model) DeliveryErr() error {
	return m.deliveryErr
}
