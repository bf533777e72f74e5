package bridge

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/victorjacobs/go-remootio/homeassistant"
	"github.com/victorjacobs/go-remootio/remootio"
)

// publishEvent republishes a device event on the event topic. Only left-open
// events are of interest to Home Assistant, everything else is dropped.
func (b *Bridge) publishEvent(mqttClient mqtt.Client, e remootio.Event) error {
	if e.Type != remootio.EventLeftOpen {
		log.Debugf("Ignoring %v event from %v", e.Type, b.device.Name)

		return nil
	}

	payload := &homeassistant.EventPayload{
		Type:         e.Type.String(),
		EntityId:     b.device.EntityId(),
		SerialNumber: b.device.SerialNumber,
		Name:         b.device.Name,
	}

	eventTopic := homeassistant.EventTopic(b.device.EntityId())
	if payloadMarshalled, err := json.Marshal(payload); err != nil {
		return fmt.Errorf("[%v] Error marshalling event: %v", eventTopic, err)
	} else if t := mqttClient.Publish(eventTopic, 0, false, payloadMarshalled); t.Wait() && t.Error() != nil {
		return fmt.Errorf("[%v] Publish error: %v", eventTopic, t.Error())
	}

	log.Printf("%v was left open", b.device.Name)

	return nil
}
