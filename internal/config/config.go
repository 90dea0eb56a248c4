// internal/config/config.go
package config

type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
}

type GatewayConfig struct {
	Network NetworkConfig `yaml:"network"`
	HTTP    HTTPConfig    `yaml:"http"`
	SPI     SPIConfig     `yaml:"spi"`
	Relays  RelayConfig   `yaml:"relays"`
	Poll    PollConfig    `yaml:"poll"`
	Meter   MeterConfig   `yaml:"meter"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
}

// ---- NETWORK ----

type NetworkConfig struct {
	MAC     string `yaml:"mac"`
	IP      string `yaml:"ip"`
	Gateway string `yaml:"gateway"`
	Subnet  string `yaml:"subnet"`
}

// ---- HTTP ----

type HTTPConfig struct {
	Port            int `yaml:"port"`
	Slot            int `yaml:"slot"` // hardware socket slot, 0..7
	MaxRequestBytes int `yaml:"max_request_bytes"`
}

// ---- SPI ----

type SPIConfig struct {
	Port    string `yaml:"port"` // spireg name; empty selects the first port
	SpeedHz int    `yaml:"speed_hz"`

	// Hardware reset line (optional, opt-in)
	ResetPin *int `yaml:"reset_pin"`
}

// ---- RELAYS ----

type RelayConfig struct {
	Pins []int `yaml:"pins"` // BCM numbers, relay 1..8 in order
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- METER ----

type MeterConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Device    string `yaml:"device"`
	Baud      int    `yaml:"baud"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- MQTT ----

type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         int    `yaml:"qos"`
}
