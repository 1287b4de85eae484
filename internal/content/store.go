package content

import "sync/atomic"

// Store holds the current catalog. Readers take a snapshot with Current;
// a reload replaces the whole catalog at once.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore returns a Store serving cat.
func NewStore(cat *Catalog) *Store {
	s := &Store{}
	s.current.Store(cat)
	return s
}

// Current returns the catalog in effect right now.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Replace swaps in cat. A nil catalog is ignored.
func (s *Store) Replace(cat *Catalog) {
	if cat == nil {
		return
	}
	s.current.Store(cat)
}
