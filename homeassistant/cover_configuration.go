package homeassistant

import (
	"encoding/json"
	"fmt"
)

// CoverConfiguration represents a Home Assistant cover, as published for MQTT
// autodiscovery.
type CoverConfiguration struct {
	ConfigTopic string `json:"-"`

	Name              string  `json:"name"`
	UniqueId          string  `json:"unique_id"`
	DeviceClass       string  `json:"device_class"`
	CommandTopic      string  `json:"command_topic"`
	StateTopic        string  `json:"state_topic"`
	AvailabilityTopic string  `json:"availability_topic"`
	PayloadOpen       string  `json:"payload_open"`
	PayloadClose      string  `json:"payload_close"`
	PayloadStop       *string `json:"payload_stop"` // Always null, Remootio has no stop
	Device            *Device `json:"device"`
}

// Device groups the cover and its triggers under one device in the Home
// Assistant registry.
type Device struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	SwVersion    string   `json:"sw_version"`
}

func NewCoverConfiguration(name string, serialNumber string, entityId string, deviceClass string, apiVersion int) *CoverConfiguration {
	return &CoverConfiguration{
		ConfigTopic:       fmt.Sprintf("homeassistant/cover/%v/config", entityId),
		Name:              name,
		UniqueId:          serialNumber,
		DeviceClass:       deviceClass,
		CommandTopic:      CommandTopic(entityId),
		StateTopic:        StateTopic(entityId),
		AvailabilityTopic: AvailabilityTopic(entityId),
		PayloadOpen:       PayloadOpen,
		PayloadClose:      PayloadClose,
		Device: &Device{
			Identifiers:  []string{serialNumber},
			Name:         name,
			Manufacturer: "Assemblabs Ltd",
			Model:        "Remootio 3",
			SwVersion:    fmt.Sprintf("%v", apiVersion),
		},
	}
}

func (c *CoverConfiguration) ConfigJson() (string, error) {
	if configMarshalled, err := json.Marshal(c); err != nil {
		return "", err
	} else {
		return string(configMarshalled), nil
	}
}

func CommandTopic(entityId string) string {
	return fmt.Sprintf("remootio/cover/%v/set", entityId)
}

func StateTopic(entityId string) string {
	return fmt.Sprintf("remootio/cover/%v/state", entityId)
}

func AvailabilityTopic(entityId string) string {
	return fmt.Sprintf("remootio/cover/%v/availability", entityId)
}

func EventTopic(entityId string) string {
	return fmt.Sprintf("remootio/cover/%v/event", entityId)
}
