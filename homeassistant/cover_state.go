package homeassistant

// Cover state payloads as expected on the state topic.
const (
	StateOpen    = "open"
	StateOpening = "opening"
	StateClosed  = "closed"
	StateClosing = "closing"
)

// Command payloads as received on the command topic.
const (
	PayloadOpen  = "OPEN"
	PayloadClose = "CLOSE"
)

// Availability payloads as published on the availability topic.
const (
	PayloadAvailable    = "online"
	PayloadNotAvailable = "offline"
)
