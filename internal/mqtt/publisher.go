// internal/mqtt/publisher.go
package mqtt

import (
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout    = 10 * time.Second
	publishTimeout    = 2 * time.Second
	disconnectQuiesce = 1000 // milliseconds
	keepAlive         = 60 * time.Second

	payloadOnline  = "online"
	payloadOffline = "offline"
)

// Config is minimal broker config.
type Config struct {
	Broker      string // tcp://host:1883
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
}

// Publisher announces relay state over MQTT. Publish-only: commands stay on
// the HTTP surface and no topic is ever subscribed.
//
// Topics:
//
//	<prefix>/availability      online/offline, retained, broker-set on crash
//	<prefix>/relay/<n>/state   0 or 1, retained
type Publisher struct {
	client pahomqtt.Client
	prefix string
	qos    byte
}

// Connect dials the broker with a retained offline will on the availability
// topic and publishes online once connected. Fail fast: an unreachable
// broker at startup is a deployment error.
func Connect(cfg Config) (*Publisher, error) {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)
	opts.SetWill(cfg.TopicPrefix+"/availability", payloadOffline, cfg.QoS, true)

	p := &Publisher{
		client: pahomqtt.NewClient(opts),
		prefix: cfg.TopicPrefix,
		qos:    cfg.QoS,
	}

	token := p.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt: connect %s: timeout", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect %s: %w", cfg.Broker, err)
	}

	if err := p.publish(p.prefix+"/availability", payloadOnline); err != nil {
		p.client.Disconnect(disconnectQuiesce)
		return nil, err
	}
	return p, nil
}

// RelayState publishes the retained 0/1 state of one relay.
func (p *Publisher) RelayState(n int, on bool) error {
	payload := "0"
	if on {
		payload = "1"
	}
	return p.publish(fmt.Sprintf("%s/relay/%d/state", p.prefix, n), payload)
}

// publish sends one retained message and waits, bounded, for the broker.
func (p *Publisher) publish(topic, payload string) error {
	token := p.client.Publish(topic, p.qos, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt: publish %s: timeout", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: publish %s: %w", topic, err)
	}
	return nil
}

// Close publishes a graceful offline and disconnects. The retained offline
// here is distinct from the will, which covers crashes.
func (p *Publisher) Close() error {
	_ = p.publish(p.prefix+"/availability", payloadOffline)
	p.client.Disconnect(disconnectQuiesce)
	return nil
}
