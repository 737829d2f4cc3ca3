package transport

// State is the lifecycle state of a Client.
type State int

const (
	Connecting State = iota
	Connected
	Disconnected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	}
	return "unknown"
}

type event int

const (
	eventOpen event = iota
	eventClose
)

// next returns the state reached from s on e, and false when e is not
// accepted in s.
func next(s State, e event) (State, bool) {
	switch {
	case s == Connecting && e == eventOpen:
		return Connected, true
	case s == Connecting && e == eventClose, s == Connected && e == eventClose:
		return Disconnected, true
	}
	return s, false
}
