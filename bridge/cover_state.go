package bridge

import (
	"github.com/victorjacobs/go-remootio/homeassistant"
	"github.com/victorjacobs/go-remootio/remootio"
)

// stateForCover converts the state reported by the Remootio client to the
// state as published over MQTT. Returns the empty string for states Home
// Assistant covers cannot represent.
func stateForCover(state remootio.State) string {
	switch state {
	case remootio.StateOpen:
		return homeassistant.StateOpen
	case remootio.StateOpening:
		return homeassistant.StateOpening
	case remootio.StateClosed:
		return homeassistant.StateClosed
	case remootio.StateClosing:
		return homeassistant.StateClosing
	default:
		return ""
	}
}
