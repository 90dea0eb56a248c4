// internal/config/normalize.go
package config

// Defaults applied by Normalize. Route paths and the JSON wire layout are
// protocol and MUST NOT be configurable; everything below is deployment
// geometry.
const (
	DefaultHTTPPort        = 80
	DefaultMaxRequestBytes = 2048
	DefaultSPISpeedHz      = 5_000_000
	DefaultPollIntervalMs  = 5
	DefaultMeterBaud       = 9600
	DefaultMeterUnitID     = 0xF8 // PZEM broadcast address
	DefaultMeterTimeoutMs  = 500
	DefaultMQTTClientID    = "relayd"
	DefaultMQTTPrefix      = "relayd"
)

// DefaultRelayPins returns the board wiring used when relays.pins is absent:
// BCM 17..24 for relay 1..8.
func DefaultRelayPins() []int {
	return []int{17, 18, 19, 20, 21, 22, 23, 24}
}

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	gw := &cfg.Gateway

	// ------------------------------------------------------------
	// HTTP DEFAULTS
	// ------------------------------------------------------------

	if gw.HTTP.Port == 0 {
		gw.HTTP.Port = DefaultHTTPPort
	}
	if gw.HTTP.MaxRequestBytes == 0 {
		gw.HTTP.MaxRequestBytes = DefaultMaxRequestBytes
	}

	// ------------------------------------------------------------
	// SPI DEFAULTS
	// ------------------------------------------------------------

	if gw.SPI.SpeedHz == 0 {
		gw.SPI.SpeedHz = DefaultSPISpeedHz
	}

	// ------------------------------------------------------------
	// RELAY PIN DEFAULTS
	// ------------------------------------------------------------

	if len(gw.Relays.Pins) == 0 {
		gw.Relays.Pins = DefaultRelayPins()
	}

	// ------------------------------------------------------------
	// POLL DEFAULTS
	// ------------------------------------------------------------

	if gw.Poll.IntervalMs == 0 {
		gw.Poll.IntervalMs = DefaultPollIntervalMs
	}

	// ------------------------------------------------------------
	// METER DEFAULTS (APPLIED EVEN WHEN DISABLED)
	// ------------------------------------------------------------

	if gw.Meter.Baud == 0 {
		gw.Meter.Baud = DefaultMeterBaud
	}
	if gw.Meter.UnitID == 0 {
		gw.Meter.UnitID = DefaultMeterUnitID
	}
	if gw.Meter.TimeoutMs == 0 {
		gw.Meter.TimeoutMs = DefaultMeterTimeoutMs
	}

	// ------------------------------------------------------------
	// MQTT DEFAULTS
	// ------------------------------------------------------------

	if gw.MQTT.ClientID == "" {
		gw.MQTT.ClientID = DefaultMQTTClientID
	}
	if gw.MQTT.TopicPrefix == "" {
		gw.MQTT.TopicPrefix = DefaultMQTTPrefix
	}
}
