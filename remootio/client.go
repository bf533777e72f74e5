// Package remootio describes the surface of a connected Remootio device
// handle as consumed by the bridge. The connection itself, the encrypted
// websocket protocol and reconnection are owned by the client implementation,
// not by this module.
package remootio

// StateChangeListener is invoked after the device reports a new position.
type StateChangeListener func(c Client, change StateChange)

// EventListener is invoked for every event sent by the device.
type EventListener func(c Client, e Event)

// Client is an established connection to a Remootio device.
type Client interface {
	// State returns the last known position of the door or gate.
	State() State
	// APIVersion returns the Remootio API version the device speaks.
	APIVersion() int

	AddStateChangeListener(l StateChangeListener)
	AddEventListener(l EventListener)

	// TriggerStateUpdate asks the device to report its current position.
	// Listeners are notified when the answer arrives.
	TriggerStateUpdate() error
	// TriggerOpen opens the door or gate.
	TriggerOpen() error
	// TriggerClose closes the door or gate.
	TriggerClose() error
}
