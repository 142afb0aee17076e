package tui

// selection is the clamped index over the match store. Moves at either
// boundary are no-ops; there is no wraparound.
type selection struct {
	index int
}

func (s *selection) up() {
	if s.index > 0 {
		s.index--
	}
}

func (s *selection) down(n int) {
	if s.index < n-1 {
		s.index++
	}
}

// current returns the selected index, or ok=false when there is nothing
// to select.
func (s *selection) current(n int) (int, bool) {
	if n == 0 {
		return 0, false
	}
	return s.index, true
}
