package state

import "gitjump/internal/domain"

// Store holds the full set of discovered items and the current filtered view
type Store struct {
	all  []domain.Item
	view []domain.Item
}

// NewStore copies items into a store whose view is the unfiltered set
func NewStore(items []domain.Item) *Store {
	all := make([]domain.Item, len(items))
	copy(all, items)
	return &Store{all: all, view: all}
}

// All returns the full item set in discovery order
func (s *Store) All() []domain.Item {
	return s.all
}

// View returns the current filtered and ranked items
func (s *Store) View() []domain.Item {
	return s.view
}

// SetView replaces the current view
func (s *Store) SetView(items []domain.Item) {
	s.view = items
}
