// Package selection tracks the highlighted row of a list whose length changes
// between refreshes.
package selection

// State is the selected index, if any, into a list of Count rows.
// The zero value is an empty list with nothing selected.
type State struct {
	index    int
	selected bool
	count    int
}

func (s State) Selected() (int, bool) {
	return s.index, s.selected
}

func (s State) Count() int {
	return s.count
}

// Next moves down one row, wrapping from the last row to the first.
func (s *State) Next() {
	if s.count == 0 {
		return
	}
	if !s.selected {
		s.set(0)
		return
	}
	s.set((s.index + 1) % s.count)
}

// Previous moves up one row, wrapping from the first row to the last.
func (s *State) Previous() {
	if s.count == 0 {
		return
	}
	if !s.selected {
		s.set(0)
		return
	}
	if s.index == 0 {
		s.set(s.count - 1)
		return
	}
	s.set(s.index - 1)
}

// Reconcile keeps the selection valid after the list was replaced by one of
// n rows. An in-range selection is kept, an out-of-range one is clamped to
// the last row.
func (s *State) Reconcile(n int) {
	if n < 0 {
		n = 0
	}
	s.count = n
	switch {
	case n == 0:
		s.index, s.selected = 0, false
	case !s.selected:
		s.set(0)
	case s.index >= n:
		s.set(n - 1)
	}
}

func (s *State) set(i int) {
	s.index, s.selected = i, true
}
