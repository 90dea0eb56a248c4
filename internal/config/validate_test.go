// internal/config/validate_test.go
package config

import "testing"

// helper to build a passing config quickly
func valid() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Network: NetworkConfig{
				MAC:     "00:08:dc:12:34:56",
				IP:      "192.168.1.100",
				Gateway: "192.168.1.1",
				Subnet:  "255.255.255.0",
			},
		},
	}
}

func intptr(v int) *int { return &v }

// ---- tests ----

func TestValidate_MinimalConfigPasses(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingMAC(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Network.MAC = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_BadMAC(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Network.MAC = "not-a-mac"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_BadIP(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Network.IP = "192.168.1.999"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_IPv6Rejected(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Network.Gateway = "fe80::1"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_SlotOutOfRange(t *testing.T) {
	cfg := valid()
	cfg.Gateway.HTTP.Slot = 8

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_RequestBufferTooSmall(t *testing.T) {
	cfg := valid()
	cfg.Gateway.HTTP.MaxRequestBytes = 64

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_NegativeResetPin(t *testing.T) {
	cfg := valid()
	cfg.Gateway.SPI.ResetPin = intptr(-1)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_PartialPinListRejected(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Relays.Pins = []int{17, 18, 19}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_DuplicatePinRejected(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Relays.Pins = []int{17, 18, 19, 20, 21, 22, 23, 17}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestValidate_FullPinListPasses(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Relays.Pins = []int{5, 6, 13, 16, 19, 20, 21, 26}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MeterEnabledNeedsDevice(t *testing.T) {
	cfg := valid()
	cfg.Gateway.Meter.Enabled = true

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}

	cfg.Gateway.Meter.Device = "/dev/ttyUSB0"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MQTTEnabledNeedsBroker(t *testing.T) {
	cfg := valid()
	cfg.Gateway.MQTT.Enabled = true

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}

	cfg.Gateway.MQTT.Broker = "tcp://127.0.0.1:1883"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MQTTQoSOutOfRange(t *testing.T) {
	cfg := valid()
	cfg.Gateway.MQTT.Enabled = true
	cfg.Gateway.MQTT.Broker = "tcp://127.0.0.1:1883"
	cfg.Gateway.MQTT.QoS = 3

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
