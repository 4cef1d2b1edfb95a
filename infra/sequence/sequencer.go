package sequence

import "sync/atomic"

// Sequencer hands out strictly increasing ids. The finder numbers lookups
// with one, the registry numbers registrations with another.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next id.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued id, or the start value if none was issued.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
