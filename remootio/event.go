package remootio

// EventType identifies the kind of event sent by the device.
type EventType int

const (
	EventStateChange EventType = iota
	EventRelayTrigger
	EventSecondaryRelayTrigger
	// EventLeftOpen is sent when the door has been left open longer than the
	// hold-open time configured on the device.
	EventLeftOpen
	EventRestart
)

func (e EventType) String() string {
	switch e {
	case EventStateChange:
		return "state_change"
	case EventRelayTrigger:
		return "relay_trigger"
	case EventSecondaryRelayTrigger:
		return "secondary_relay_trigger"
	case EventLeftOpen:
		return "left_open"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is sent by the device to event listeners. Key identifies the Remootio
// key that caused the event, where applicable.
type Event struct {
	Type EventType
	Key  int
}
