package models

import "sync/atomic"

// Sequence hands out employee ids. It starts at zero and is incremented
// before each assignment, so the first id is 1. A Sequence is never reset and
// never rolled back, including when an employee is removed from a store.
//
// Safe for concurrent use; several stores may share one Sequence.
type Sequence struct {
	last atomic.Int64
}

// DefaultSequence is the process-wide sequence used when a store is built
// without an explicit one. It lives for the whole process.
var DefaultSequence = &Sequence{}

// Next returns a fresh id.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Issued reports how many ids have been assigned so far. This is independent
// of how many employees are currently stored anywhere.
func (s *Sequence) Issued() int64 {
	return s.last.Load()
}
