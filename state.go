package acorn

// State is the phase a [Context] is in.
type State int

const (
	// Initializing covers discovery and registration inside [NewContext].
	// A context in this state is never handed to callers.
	Initializing State = iota

	// Ready means registration completed and the context answers queries.
	// There is no transition back.
	Ready
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}
