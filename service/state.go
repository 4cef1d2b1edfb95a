package service

// State is where a single lookup stands. Every lookup starts Idle and ends
// Done or Errored; nothing is shared between lookups.
type State uint8

const (
	StateIdle State = iota
	StateDiscovering
	StateAggregating
	StateAllocating
	StateResponding
	StateDone
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDiscovering:
		return "discovering"
	case StateAggregating:
		return "aggregating"
	case StateAllocating:
		return "allocating"
	case StateResponding:
		return "responding"
	case StateDone:
		return "done"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

var transitions = map[State][]State{
	StateIdle:        {StateDiscovering, StateErrored},
	StateDiscovering: {StateAggregating, StateErrored},
	// Errored only on caller cancellation.
	StateAggregating: {StateAllocating, StateErrored},
	StateAllocating:  {StateResponding},
	// Errored when nothing was selected or the transport gave up.
	StateResponding: {StateDone, StateErrored},
}

// CanTransition reports whether a lookup may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s is absorbing.
func (s State) Terminal() bool {
	return s == StateDone || s == StateErrored
}
