package bridge

import (
	log "github.com/sirupsen/logrus"

	"github.com/victorjacobs/go-remootio/homeassistant"
)

// handleCommand forwards a command received over MQTT to the Remootio client.
// Home Assistant sends the cover command payloads as plain strings.
func (b *Bridge) handleCommand(payload string) {
	switch payload {
	case homeassistant.PayloadOpen:
		log.Printf("Opening %v", b.device.Name)
		if err := b.client.TriggerOpen(); err != nil {
			log.Printf("Error opening %v: %v", b.device.Name, err)
		}
	case homeassistant.PayloadClose:
		log.Printf("Closing %v", b.device.Name)
		if err := b.client.TriggerClose(); err != nil {
			log.Printf("Error closing %v: %v", b.device.Name, err)
		}
	default:
		log.Printf("Ignoring unknown command %q for %v", payload, b.device.Name)
	}
}
