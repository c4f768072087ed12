package state

import (
	"unicode/utf8"

	"gitjump/internal/domain"
	"gitjump/internal/ui/input/types"
	"gitjump/internal/ui/logic"
)

// Session is the picker's mutable state. It is owned by the UI model and
// changed only from its Update.
type Session struct {
	Query   string
	Mode    types.Mode
	Cursor  logic.Cursor
	Running bool

	store *Store
}

// NewSession starts a session over items, unfiltered, in navigation mode
func NewSession(items []domain.Item) *Session {
	return &Session{
		Mode:    types.ModeNavigation,
		Running: true,
		store:   NewStore(items),
	}
}

// Store returns the item store
func (s *Session) Store() *Store {
	return s.store
}

// View returns the filtered items the cursor indexes into
func (s *Session) View() []domain.Item {
	return s.store.View()
}

// AppendRune adds r to the end of the query
func (s *Session) AppendRune(r rune) {
	s.Query += string(r)
}

// DeleteRune removes the last character of the query. It reports false when
// the query was already empty.
func (s *Session) DeleteRune() bool {
	if s.Query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	return true
}

// Refilter ranks the full item set against the query and moves the cursor to
// the top. Ranking always starts from the full set, never from the previous
// view, so a non-monotonic scorer cannot drop items.
func (s *Session) Refilter(r logic.Ranker) {
	s.store.SetView(r.Rank(s.Query, s.store.All()))
	s.Cursor.Reset()
}

// MoveUp moves the cursor up with wraparound
func (s *Session) MoveUp() {
	s.Cursor.Retreat(len(s.View()))
}

// MoveDown moves the cursor down with wraparound
func (s *Session) MoveDown() {
	s.Cursor.Advance(len(s.View()))
}

// Current returns the highlighted item. ok is false when the view is empty.
func (s *Session) Current() (item domain.Item, ok bool) {
	view := s.View()
	if len(view) == 0 {
		return domain.Item{}, false
	}
	return view[s.Cursor.Index()], true
}

// Stop ends the session
func (s *Session) Stop() {
	s.Running = false
}
