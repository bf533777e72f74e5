// Package remootiotest provides an in-memory remootio.Client for tests and
// for running the bridge without hardware.
package remootiotest

import (
	"sync"

	"github.com/victorjacobs/go-remootio/remootio"
)

// Client is a remootio.Client backed by memory instead of a device. The zero
// value is not usable, construct it with New. All methods are safe for
// concurrent use.
type Client struct {
	mutex                sync.Mutex
	state                remootio.State
	simulate             bool
	stateChangeListeners []remootio.StateChangeListener
	eventListeners       []remootio.EventListener
	opens                int
	closes               int
	stateUpdates         int
}

// New returns a Client reporting the given initial state.
func New(initial remootio.State) *Client {
	return &Client{state: initial}
}

// NewSimulated returns a Client that walks through opening/open and
// closing/closed when TriggerOpen and TriggerClose are called.
func NewSimulated(initial remootio.State) *Client {
	return &Client{state: initial, simulate: true}
}

func (c *Client) State() remootio.State {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.state
}

func (c *Client) APIVersion() int {
	return 10
}

func (c *Client) AddStateChangeListener(l remootio.StateChangeListener) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stateChangeListeners = append(c.stateChangeListeners, l)
}

func (c *Client) AddEventListener(l remootio.EventListener) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.eventListeners = append(c.eventListeners, l)
}

// TriggerStateUpdate re-announces the current state to all state change
// listeners, like a device answering a query.
func (c *Client) TriggerStateUpdate() error {
	c.mutex.Lock()
	state := c.state
	c.stateUpdates++
	c.mutex.Unlock()

	c.notifyStateChange(remootio.StateChange{Old: state, New: state})

	return nil
}

func (c *Client) TriggerOpen() error {
	c.mutex.Lock()
	c.opens++
	simulate := c.simulate
	c.mutex.Unlock()

	if simulate {
		c.SetState(remootio.StateOpening)
		c.SetState(remootio.StateOpen)
	}

	return nil
}

func (c *Client) TriggerClose() error {
	c.mutex.Lock()
	c.closes++
	simulate := c.simulate
	c.mutex.Unlock()

	if simulate {
		c.SetState(remootio.StateClosing)
		c.SetState(remootio.StateClosed)
	}

	return nil
}

// SetState changes the reported state and notifies state change listeners if
// it differs from the previous one.
func (c *Client) SetState(state remootio.State) {
	c.mutex.Lock()
	old := c.state
	c.state = state
	c.mutex.Unlock()

	if old != state {
		c.notifyStateChange(remootio.StateChange{Old: old, New: state})
	}
}

// Emit delivers an event to all event listeners.
func (c *Client) Emit(e remootio.Event) {
	c.mutex.Lock()
	listeners := append([]remootio.EventListener(nil), c.eventListeners...)
	c.mutex.Unlock()

	for _, l := range listeners {
		l(c, e)
	}
}

func (c *Client) notifyStateChange(change remootio.StateChange) {
	c.mutex.Lock()
	listeners := append([]remootio.StateChangeListener(nil), c.stateChangeListeners...)
	c.mutex.Unlock()

	for _, l := range listeners {
		l(c, change)
	}
}

// Opens returns how often TriggerOpen has been called.
func (c *Client) Opens() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.opens
}

// Closes returns how often TriggerClose has been called.
func (c *Client) Closes() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.closes
}

// StateUpdates returns how often TriggerStateUpdate has been called.
func (c *Client) StateUpdates() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.stateUpdates
}
