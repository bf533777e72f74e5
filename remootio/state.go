package remootio

// State is the position of the garage door or gate as reported by the device.
type State int

const (
	// StateUnknown means the device has not reported a position yet.
	StateUnknown State = iota
	// StateNoSensorInstalled means the device has no sensor and cannot know
	// whether the door is open or closed.
	StateNoSensorInstalled
	StateOpen
	StateClosed
	StateOpening
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateNoSensorInstalled:
		return "no sensor installed"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// StateChange is passed to state change listeners whenever the device reports
// a new position.
type StateChange struct {
	Old State
	New State
}
