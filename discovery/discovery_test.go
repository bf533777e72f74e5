package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name       string
		entry      *zeroconf.ServiceEntry
		wantNil    bool
		wantSerial string
		wantIP     string
	}{
		{
			name: "remootio device with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "remootio-a1b2c3"},
				HostName:      "remootio-a1b2c3.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
			},
			wantSerial: "a1b2c3",
			wantIP:     "192.168.1.50",
		},
		{
			name: "mixed case instance name",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Remootio-A1B2C3"},
				HostName:      "remootio-a1b2c3.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
			},
			wantSerial: "a1b2c3",
			wantIP:     "192.168.1.50",
		},
		{
			name: "IPv6 only",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "remootio-a1b2c3"},
				HostName:      "remootio-a1b2c3.local.",
				Port:          8080,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantSerial: "a1b2c3",
			wantIP:     "fe80::1",
		},
		{
			name: "not a remootio device",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "shelly-1234"},
				HostName:      "shelly-1234.local.",
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.60")},
			},
			wantNil: true,
		},
		{
			name: "missing serial",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "remootio"},
				HostName:      "remootio.local.",
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
			},
			wantNil: true,
		},
		{
			name: "missing address",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "remootio-a1b2c3"},
				HostName:      "remootio-a1b2c3.local.",
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if device != nil {
					t.Fatalf("expected nil, got %v", device)
				}

				return
			}

			if device == nil {
				t.Fatal("expected a device, got nil")
			}
			if device.SerialNumber != tt.wantSerial {
				t.Errorf("serial number: got %v, want %v", device.SerialNumber, tt.wantSerial)
			}
			if device.IP != tt.wantIP {
				t.Errorf("ip: got %v, want %v", device.IP, tt.wantIP)
			}
			if device.Hostname != "remootio-a1b2c3.local" {
				t.Errorf("hostname: got %v, want remootio-a1b2c3.local", device.Hostname)
			}
		})
	}
}
