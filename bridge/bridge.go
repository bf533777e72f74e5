package bridge

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/victorjacobs/go-remootio/config"
	"github.com/victorjacobs/go-remootio/homeassistant"
	"github.com/victorjacobs/go-remootio/remootio"
)

// Bridge mirrors a single Remootio controlled garage door or gate into Home
// Assistant: one cover entity plus a device trigger for left-open events.
type Bridge struct {
	device  *config.Device
	client  remootio.Client
	cover   *homeassistant.CoverConfiguration
	trigger *homeassistant.DeviceTriggerConfiguration

	// Last state published to the state topic, used to publish only on changes
	mutex         sync.Mutex
	lastPublished string
}

func New(cfg *config.Configuration, client remootio.Client) (*Bridge, error) {
	if cfg == nil || cfg.Device == nil {
		return nil, errors.New("bridge requires a device configuration")
	}
	if client == nil {
		return nil, errors.New("bridge requires a Remootio client")
	}

	device := cfg.Device
	cover := homeassistant.NewCoverConfiguration(
		device.Name,
		device.SerialNumber,
		device.EntityId(),
		device.DeviceClass,
		client.APIVersion(),
	)

	return &Bridge{
		device:  device,
		client:  client,
		cover:   cover,
		trigger: homeassistant.NewLeftOpenTriggerConfiguration(device.EntityId(), cover.Device),
	}, nil
}

// Setup function: publishes Home Assistant configuration, subscribes to the
// command topic and registers listeners on the Remootio client. Finishes by
// requesting a state update so the entity starts out with the device state.
func (b *Bridge) Setup(mqttClient mqtt.Client) error {
	// Publish configuration for MQTT autodiscovery
	if configJson, err := b.cover.ConfigJson(); err != nil {
		return fmt.Errorf("error marshalling cover configuration: %v", err)
	} else if t := mqttClient.Publish(b.cover.ConfigTopic, 0, true, configJson); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publish failed: %v", t.Error())
	}

	if triggerJson, err := b.trigger.ConfigJson(); err != nil {
		return fmt.Errorf("error marshalling trigger configuration: %v", err)
	} else if t := mqttClient.Publish(b.trigger.ConfigTopic, 0, true, triggerJson); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publish failed: %v", t.Error())
	}

	log.Printf("Registered %v with Homeassistant", b.device.Name)

	if t := mqttClient.Publish(b.cover.AvailabilityTopic, 0, true, homeassistant.PayloadAvailable); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publish failed: %v", t.Error())
	}

	// Subscribe to the cover command topic
	if t := mqttClient.Subscribe(b.cover.CommandTopic, 0, func(mqttClient mqtt.Client, msg mqtt.Message) {
		b.handleCommand(string(msg.Payload()))
	}); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT receive error: %v", t.Error())
	}

	// The device drives all state updates, re-read and republish on every
	// state change notification
	b.client.AddStateChangeListener(func(client remootio.Client, change remootio.StateChange) {
		if err := b.PublishState(mqttClient); err != nil {
			log.Printf("Error publishing state: %v", err)
		}
	})

	b.client.AddEventListener(func(client remootio.Client, e remootio.Event) {
		if err := b.publishEvent(mqttClient, e); err != nil {
			log.Printf("Error publishing event: %v", err)
		}
	})

	return b.client.TriggerStateUpdate()
}

// PublishState reads the current state from the Remootio client and publishes
// it to the state topic. States without a cover representation (no sensor
// installed, unknown) are skipped, Home Assistant then shows the entity as
// unknown.
func (b *Bridge) PublishState(mqttClient mqtt.Client) error {
	state := stateForCover(b.client.State())
	if state == "" {
		return nil
	}

	b.mutex.Lock()
	changed := state != b.lastPublished
	b.lastPublished = state
	b.mutex.Unlock()

	if !changed {
		return nil
	}

	log.Printf("%v changed state to %v", b.device.Name, state)

	stateTopic := b.cover.StateTopic
	if t := mqttClient.Publish(stateTopic, 0, true, state); t.Wait() && t.Error() != nil {
		return fmt.Errorf("[%v] Publish error: %v", stateTopic, t.Error())
	}

	return nil
}

// Teardown marks the cover unavailable, the graceful counterpart of the MQTT
// will configured on the connection.
func (b *Bridge) Teardown(mqttClient mqtt.Client) error {
	if t := mqttClient.Publish(b.cover.AvailabilityTopic, 0, true, homeassistant.PayloadNotAvailable); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publish failed: %v", t.Error())
	}

	return nil
}

// IsOpening returns true when the garage door or gate is currently opening.
func (b *Bridge) IsOpening() bool {
	return b.client.State() == remootio.StateOpening
}

// IsClosing returns true when the garage door or gate is currently closing.
func (b *Bridge) IsClosing() bool {
	return b.client.State() == remootio.StateClosing
}

// IsClosed returns whether the garage door or gate is closed, or nil when the
// device has no sensor and cannot know.
func (b *Bridge) IsClosed() *bool {
	if b.client.State() == remootio.StateNoSensorInstalled {
		return nil
	}

	closed := b.client.State() == remootio.StateClosed

	return &closed
}
