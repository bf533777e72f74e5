package remootiotest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/victorjacobs/go-remootio/remootio"
)

func TestSetStateNotifiesListeners(t *testing.T) {
	client := New(remootio.StateClosed)

	var changes []remootio.StateChange
	client.AddStateChangeListener(func(c remootio.Client, change remootio.StateChange) {
		changes = append(changes, change)
	})

	client.SetState(remootio.StateOpening)
	client.SetState(remootio.StateOpening) // unchanged, no notification
	client.SetState(remootio.StateOpen)

	assert.Equal(t, []remootio.StateChange{
		{Old: remootio.StateClosed, New: remootio.StateOpening},
		{Old: remootio.StateOpening, New: remootio.StateOpen},
	}, changes)
	assert.Equal(t, remootio.StateOpen, client.State())
}

func TestTriggerStateUpdateReannouncesState(t *testing.T) {
	client := New(remootio.StateClosed)

	var changes []remootio.StateChange
	client.AddStateChangeListener(func(c remootio.Client, change remootio.StateChange) {
		changes = append(changes, change)
	})

	assert.NoError(t, client.TriggerStateUpdate())

	assert.Equal(t, []remootio.StateChange{
		{Old: remootio.StateClosed, New: remootio.StateClosed},
	}, changes)
	assert.Equal(t, 1, client.StateUpdates())
}

func TestSimulatedTriggerWalksThroughStates(t *testing.T) {
	client := NewSimulated(remootio.StateClosed)

	var states []remootio.State
	client.AddStateChangeListener(func(c remootio.Client, change remootio.StateChange) {
		states = append(states, change.New)
	})

	assert.NoError(t, client.TriggerOpen())
	assert.NoError(t, client.TriggerClose())

	assert.Equal(t, []remootio.State{
		remootio.StateOpening,
		remootio.StateOpen,
		remootio.StateClosing,
		remootio.StateClosed,
	}, states)
	assert.Equal(t, 1, client.Opens())
	assert.Equal(t, 1, client.Closes())
}

func TestUnsimulatedTriggerOnlyRecords(t *testing.T) {
	client := New(remootio.StateClosed)

	assert.NoError(t, client.TriggerOpen())

	assert.Equal(t, remootio.StateClosed, client.State())
	assert.Equal(t, 1, client.Opens())
}

func TestEmitDeliversEvents(t *testing.T) {
	client := New(remootio.StateOpen)

	var events []remootio.Event
	client.AddEventListener(func(c remootio.Client, e remootio.Event) {
		events = append(events, e)
	})

	client.Emit(remootio.Event{Type: remootio.EventLeftOpen, Key: 2})

	assert.Equal(t, []remootio.Event{{Type: remootio.EventLeftOpen, Key: 2}}, events)
}
