package homeassistant

import (
	"encoding/json"
	"fmt"
)

// DeviceTriggerConfiguration registers an MQTT device trigger, so automations
// can react to device events without a manual MQTT trigger.
type DeviceTriggerConfiguration struct {
	ConfigTopic string `json:"-"`

	AutomationType string  `json:"automation_type"`
	Topic          string  `json:"topic"`
	Type           string  `json:"type"`
	Subtype        string  `json:"subtype"`
	Payload        string  `json:"payload,omitempty"`
	ValueTemplate  string  `json:"value_template,omitempty"`
	Device         *Device `json:"device"`
}

// NewLeftOpenTriggerConfiguration builds the trigger fired when the device
// reports that the door was left open.
func NewLeftOpenTriggerConfiguration(entityId string, device *Device) *DeviceTriggerConfiguration {
	return &DeviceTriggerConfiguration{
		ConfigTopic:    fmt.Sprintf("homeassistant/device_automation/%v_left_open/config", entityId),
		AutomationType: "trigger",
		Topic:          EventTopic(entityId),
		Type:           "left_open",
		Subtype:        "cover",
		ValueTemplate:  "{{ value_json.type }}",
		Payload:        "left_open",
		Device:         device,
	}
}

func (d *DeviceTriggerConfiguration) ConfigJson() (string, error) {
	if configMarshalled, err := json.Marshal(d); err != nil {
		return "", err
	} else {
		return string(configMarshalled), nil
	}
}
