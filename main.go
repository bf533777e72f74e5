package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	"github.com/victorjacobs/go-remootio/bridge"
	"github.com/victorjacobs/go-remootio/config"
	"github.com/victorjacobs/go-remootio/discovery"
	"github.com/victorjacobs/go-remootio/homeassistant"
	"github.com/victorjacobs/go-remootio/remootio"
	"github.com/victorjacobs/go-remootio/remootio/remootiotest"
)

func main() {
	configPath := flag.String("config", "remootio.json", "path to the configuration file")
	discover := flag.Bool("discover", false, "scan the network for Remootio devices and exit")
	simulate := flag.Bool("simulate", false, "bridge a simulated device instead of real hardware")
	flag.Parse()

	// Optional overrides from a .env file
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	if *discover {
		runDiscovery()

		return
	}

	var cfg *config.Configuration
	var err error
	if cfg, err = config.LoadConfiguration(*configPath); err != nil {
		log.Panicf("Error loading configuration: %v", err)
	}

	// The device connection is owned by an external remootio.Client
	// implementation. This binary only ships the simulated one, real
	// deployments embed bridge.New with their own client.
	if !*simulate {
		log.Fatalf("No Remootio client available. Run with -simulate, or embed bridge.New with a connected remootio.Client")
	}

	var remootioClient remootio.Client = remootiotest.NewSimulated(remootio.StateClosed)
	log.Printf("Using simulated Remootio device %v", cfg.Device.SerialNumber)

	availabilityTopic := homeassistant.AvailabilityTopic(cfg.Device.EntityId())
	mqttClient := mqtt.NewClient(cfg.MQTT.ClientOptions(availabilityTopic, homeassistant.PayloadNotAvailable))
	if t := mqttClient.Connect(); t.Wait() && t.Error() != nil {
		log.Panicf("MQTT connection error: %v", t.Error())
	}

	var b *bridge.Bridge
	if b, err = bridge.New(cfg, remootioClient); err != nil {
		log.Panicf("Error setting up bridge: %v", err)
	}

	if err = b.Setup(mqttClient); err != nil {
		log.Panicf("Error registering with Home Assistant: %v", err)
	}

	log.Printf("Bridging %v to Home Assistant", cfg.Device.Name)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	if err = b.Teardown(mqttClient); err != nil {
		log.Printf("Error during teardown: %v", err)
	}

	mqttClient.Disconnect(250)
}

func runDiscovery() {
	log.Printf("Scanning for Remootio devices")

	devices, err := discovery.Scan(context.Background(), discovery.DefaultTimeout)
	if err != nil {
		log.Panicf("Discovery failed: %v", err)
	}

	if len(devices) == 0 {
		log.Printf("No Remootio devices found")

		return
	}

	for _, device := range devices {
		log.Printf("Found %v", device)
	}
}
