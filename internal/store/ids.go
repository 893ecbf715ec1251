package store

// sequence hands out monotonically increasing ids starting at 1. Ids are
// never reused, even after the record is deleted. Callers hold the store
// write lock.
type sequence struct {
	last int
}

func (s *sequence) next() int {
	s.last++
	return s.last
}
