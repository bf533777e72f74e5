// Package discovery finds Remootio devices on the local network over mDNS, to
// help filling in the configuration file.
package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	serviceType   = "_remootio._tcp"
	serviceDomain = "local."
)

// DefaultTimeout is how long Scan browses for devices before returning.
const DefaultTimeout = 5 * time.Second

// Device is a Remootio device found on the network.
type Device struct {
	SerialNumber string
	Hostname     string
	IP           string
	Port         int
}

func (d *Device) String() string {
	return fmt.Sprintf("Remootio %v (%v) at %v:%v", d.SerialNumber, d.Hostname, d.IP, d.Port)
}

// Scan browses the local network for Remootio devices until the timeout
// expires and returns everything found.
func Scan(ctx context.Context, timeout time.Duration) ([]*Device, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating mDNS resolver: %v", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	devices := make([]*Device, 0)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for entry := range entries {
			if device := parseServiceEntry(entry); device != nil {
				devices = append(devices, device)
			}
		}
	}()

	if err := resolver.Browse(ctx, serviceType, serviceDomain, entries); err != nil {
		return nil, fmt.Errorf("error browsing mDNS: %v", err)
	}

	<-ctx.Done()
	<-done

	return devices, nil
}

// parseServiceEntry converts a zeroconf entry to a Device. Returns nil for
// entries that do not look like a Remootio device.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Device {
	instance := strings.ToLower(entry.Instance)
	if !strings.HasPrefix(instance, "remootio") {
		return nil
	}

	// Instance names look like "remootio-<serial>"
	serial := strings.TrimPrefix(instance, "remootio")
	serial = strings.Trim(serial, "-_ ")
	if serial == "" {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}

	if ip == "" {
		return nil
	}

	return &Device{
		SerialNumber: serial,
		Hostname:     strings.TrimSuffix(entry.HostName, "."),
		IP:           ip,
		Port:         entry.Port,
	}
}
