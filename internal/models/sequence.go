package models

// Sequence hands out sequential ids. Each registry owns its own sequence
// instead of sharing package-level counters, so state can be reset
// explicitly between runs.
type Sequence struct {
	next int
}

// NewSequence creates a sequence whose first Next call returns start
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current id and advances the sequence
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Reset rewinds the sequence so the next id handed out is start
func (s *Sequence) Reset(start int) {
	s.next = start
}
