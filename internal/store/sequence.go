package store

import "sync/atomic"

// Sequence hands out strictly increasing ids. The zero value starts at 1.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first id is after+1.
func NewSequence(after int64) *Sequence {
	s := &Sequence{}
	s.last.Store(after)
	return s
}

func (s *Sequence) Next() int64 { return s.last.Add(1) }
