package homeassistant

// EventPayload is published on the event topic when the device sends an
// event of interest. It mirrors the attributes Home Assistant automations
// key on: which entity, which physical device, and its display name.
type EventPayload struct {
	Type         string `json:"type"`
	EntityId     string `json:"entity_id"`
	SerialNumber string `json:"serial_number"`
	Name         string `json:"name"`
}
