package config

import (
	"errors"
	"fmt"
	"strings"
)

// Device class as understood by Home Assistant covers.
const (
	DeviceClassGarage = "garage"
	DeviceClassGate   = "gate"
)

type Device struct {
	SerialNumber string `json:"serial_number"` // Serial number of the Remootio device, used as unique id
	DeviceClass  string `json:"device_class"`  // Either "garage" or "gate"
	Name         string `json:"name"`          // Display name in Home Assistant
}

func (d *Device) Validate() error {
	if d.SerialNumber == "" {
		return errors.New("device.serial_number is required")
	}

	if d.DeviceClass == "" {
		d.DeviceClass = DeviceClassGarage
	}
	if d.DeviceClass != DeviceClassGarage && d.DeviceClass != DeviceClassGate {
		return fmt.Errorf("device.device_class must be %v or %v, got %v", DeviceClassGarage, DeviceClassGate, d.DeviceClass)
	}

	if d.Name == "" {
		d.Name = "Remootio"
	}

	return nil
}

// EntityId derives the Home Assistant entity id from the serial number.
func (d *Device) EntityId() string {
	return fmt.Sprintf("remootio_%v", strings.ToLower(d.SerialNumber))
}
