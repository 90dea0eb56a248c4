// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
gateway:
  network:
    mac: "00:08:dc:12:34:56"
    ip: "192.168.1.100"
    gateway: "192.168.1.1"
    subnet: "255.255.255.0"
  http:
    port: 8080
  spi:
    reset_pin: 25
  meter:
    enabled: true
    device: /dev/ttyUSB0
    unit_id: 1
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

// ---- tests ----

func TestLoad_DecodesFields(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gw := cfg.Gateway
	if gw.Network.MAC != "00:08:dc:12:34:56" {
		t.Fatalf("mac = %q", gw.Network.MAC)
	}
	if gw.HTTP.Port != 8080 {
		t.Fatalf("port = %d", gw.HTTP.Port)
	}
	if gw.SPI.ResetPin == nil || *gw.SPI.ResetPin != 25 {
		t.Fatalf("reset_pin = %v", gw.SPI.ResetPin)
	}
	if !gw.Meter.Enabled || gw.Meter.UnitID != 1 {
		t.Fatalf("meter = %+v", gw.Meter)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	if _, err := Load(writeTemp(t, "gateway: [")); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestNormalize_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Normalize(cfg)

	gw := cfg.Gateway
	if gw.HTTP.Port != 8080 {
		t.Fatalf("explicit port overwritten: %d", gw.HTTP.Port)
	}
	if gw.HTTP.MaxRequestBytes != DefaultMaxRequestBytes {
		t.Fatalf("max_request_bytes = %d", gw.HTTP.MaxRequestBytes)
	}
	if gw.HTTP.Slot != 0 {
		t.Fatalf("slot = %d", gw.HTTP.Slot)
	}
	if gw.SPI.SpeedHz != DefaultSPISpeedHz {
		t.Fatalf("speed_hz = %d", gw.SPI.SpeedHz)
	}
	if gw.Poll.IntervalMs != DefaultPollIntervalMs {
		t.Fatalf("interval_ms = %d", gw.Poll.IntervalMs)
	}
	if len(gw.Relays.Pins) != 8 || gw.Relays.Pins[0] != 17 || gw.Relays.Pins[7] != 24 {
		t.Fatalf("pins = %v", gw.Relays.Pins)
	}
	if gw.Meter.Baud != DefaultMeterBaud {
		t.Fatalf("baud = %d", gw.Meter.Baud)
	}
	if gw.Meter.UnitID != 1 {
		t.Fatalf("explicit unit_id overwritten: %d", gw.Meter.UnitID)
	}
	if gw.MQTT.ClientID != DefaultMQTTClientID || gw.MQTT.TopicPrefix != DefaultMQTTPrefix {
		t.Fatalf("mqtt defaults = %+v", gw.MQTT)
	}
}
