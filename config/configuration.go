package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type Configuration struct {
	Device *Device `json:"device"`
	MQTT   *MQTT   `json:"mqtt"`
}

type MQTT struct {
	IpAddress string `json:"ip_address"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func LoadConfiguration(filename string) (*Configuration, error) {
	var file *os.File
	var err error
	if file, err = os.Open(filename); err != nil {
		return nil, err
	}

	defer file.Close()
	decoder := json.NewDecoder(file)
	configuration := &Configuration{}
	if err := decoder.Decode(configuration); err != nil {
		return nil, err
	}

	// Validate configuration
	if configuration.Device == nil {
		return nil, errors.New("device section is required")
	}
	if err := configuration.Device.Validate(); err != nil {
		return nil, err
	}
	if configuration.MQTT == nil || configuration.MQTT.IpAddress == "" {
		return nil, errors.New("mqtt.ip_address is required")
	}

	return configuration, nil
}

// ClientOptions builds paho options for the broker. The will marks the cover
// unavailable when the bridge drops off without a clean shutdown.
func (m *MQTT) ClientOptions(availabilityTopic string, offlinePayload string) *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%v:1883", m.IpAddress)).
		SetUsername(m.Username).
		SetPassword(m.Password).
		SetAutoReconnect(true).
		SetWill(availabilityTopic, offlinePayload, 0, true).
		SetConnectionLostHandler(func(client mqtt.Client, err error) {
			log.Printf("MQTT connection lost: %v", err)
		}).
		SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
			log.Printf("MQTT reconnecting")
		})
}
