// internal/config/validate.go
package config

import (
	"fmt"
	"net"
)

// relayCount is the fixed number of relay channels on the board.
const relayCount = 8

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	gw := cfg.Gateway

	// ------------------------------------------------------------
	// NETWORK VALIDATION (STATIC ADDRESSING, ALL FIELDS REQUIRED)
	// ------------------------------------------------------------

	if gw.Network.MAC == "" {
		return fmt.Errorf("network: mac is required")
	}
	hw, err := net.ParseMAC(gw.Network.MAC)
	if err != nil {
		return fmt.Errorf("network: mac %q: %v", gw.Network.MAC, err)
	}
	if len(hw) != 6 {
		return fmt.Errorf("network: mac %q: must be 6 bytes", gw.Network.MAC)
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"ip", gw.Network.IP},
		{"gateway", gw.Network.Gateway},
		{"subnet", gw.Network.Subnet},
	} {
		if f.value == "" {
			return fmt.Errorf("network: %s is required", f.name)
		}
		ip := net.ParseIP(f.value)
		if ip == nil || ip.To4() == nil {
			return fmt.Errorf("network: %s %q: not an IPv4 address", f.name, f.value)
		}
	}

	// ------------------------------------------------------------
	// HTTP VALIDATION
	// ------------------------------------------------------------

	if gw.HTTP.Port < 0 || gw.HTTP.Port > 65535 {
		return fmt.Errorf("http: port %d out of range", gw.HTTP.Port)
	}
	if gw.HTTP.Slot < 0 || gw.HTTP.Slot > 7 {
		return fmt.Errorf("http: slot %d out of range (0..7)", gw.HTTP.Slot)
	}
	if gw.HTTP.MaxRequestBytes < 0 {
		return fmt.Errorf("http: max_request_bytes must not be negative")
	}
	if gw.HTTP.MaxRequestBytes > 0 && gw.HTTP.MaxRequestBytes < 128 {
		return fmt.Errorf("http: max_request_bytes %d too small (min 128)", gw.HTTP.MaxRequestBytes)
	}

	// ------------------------------------------------------------
	// SPI VALIDATION
	// ------------------------------------------------------------

	if gw.SPI.SpeedHz < 0 {
		return fmt.Errorf("spi: speed_hz must not be negative")
	}
	if gw.SPI.ResetPin != nil && *gw.SPI.ResetPin < 0 {
		return fmt.Errorf("spi: reset_pin must not be negative")
	}

	// ------------------------------------------------------------
	// RELAY PIN VALIDATION
	// ------------------------------------------------------------

	// pins are optional; when present the list must cover all channels
	if n := len(gw.Relays.Pins); n != 0 && n != relayCount {
		return fmt.Errorf("relays: pins must list exactly %d entries, got %d", relayCount, n)
	}

	seen := make(map[int]int)
	for i, p := range gw.Relays.Pins {
		if p < 0 {
			return fmt.Errorf("relays: pin %d must not be negative", p)
		}
		if prev, exists := seen[p]; exists {
			return fmt.Errorf("relays: pin %d assigned to relay %d and relay %d", p, prev+1, i+1)
		}
		seen[p] = i
	}

	// ------------------------------------------------------------
	// POLL VALIDATION
	// ------------------------------------------------------------

	if gw.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must not be negative")
	}

	// ------------------------------------------------------------
	// METER VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	if gw.Meter.Enabled {
		if gw.Meter.Device == "" {
			return fmt.Errorf("meter: device is required when enabled")
		}
		if gw.Meter.Baud < 0 {
			return fmt.Errorf("meter: baud must not be negative")
		}
		if gw.Meter.TimeoutMs < 0 {
			return fmt.Errorf("meter: timeout_ms must not be negative")
		}
	}

	// ------------------------------------------------------------
	// MQTT VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	if gw.MQTT.Enabled {
		if gw.MQTT.Broker == "" {
			return fmt.Errorf("mqtt: broker is required when enabled")
		}
		if gw.MQTT.QoS < 0 || gw.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt: qos %d out of range (0..2)", gw.MQTT.QoS)
		}
	}

	return nil
}
