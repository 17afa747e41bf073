package lifecycle

// State represents a stage in the order dispatch lifecycle
type State string

const (
	StateUnvalidated State = "UNVALIDATED"
	StateValidated   State = "VALIDATED"
	StateRejected    State = "REJECTED"
	StateDispatched  State = "DISPATCHED"
)

var validStates = map[State]bool{
	StateUnvalidated: true,
	StateValidated:   true,
	StateRejected:    true,
	StateDispatched:  true,
}

var terminalStates = map[State]bool{
	StateRejected:   true,
	StateDispatched: true,
}

// IsTerminal returns true if the state allows no further transitions
func (s State) IsTerminal() bool {
	return terminalStates[s]
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// IsValid returns true if the state is a valid lifecycle state
func (s State) IsValid() bool {
	return validStates[s]
}
