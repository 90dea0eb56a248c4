// cmd/relayd/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tamzrod/relay-gateway/internal/config"
	"github.com/tamzrod/relay-gateway/internal/httpd"
	"github.com/tamzrod/relay-gateway/internal/mqtt"
	"github.com/tamzrod/relay-gateway/internal/pzem"
	"github.com/tamzrod/relay-gateway/internal/relay"
	"github.com/tamzrod/relay-gateway/internal/relay/gpio"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: relayd <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)
	gw := cfg.Gateway

	// --------------------
	// Relay outputs (all forced OFF)
	// --------------------

	pins, err := gpio.Pins(gw.Relays.Pins)
	if err != nil {
		log.Fatalf("relay gpio setup failed: %v", err)
	}

	var bankPins [relay.Count]relay.Pin
	for i, p := range pins {
		bankPins[i] = p
	}

	bank, err := relay.New(bankPins)
	if err != nil {
		log.Fatalf("relay bank failed: %v", err)
	}
	log.Printf("relays ready on pins %v, all OFF", gw.Relays.Pins)

	// --------------------
	// HTTP engine over the W5500
	// --------------------

	srv, closeTransport, err := httpd.Build(gw, bank)
	if err != nil {
		log.Fatalf("server build failed: %v", err)
	}
	defer closeTransport()

	// --------------------
	// Optional collaborators
	// --------------------

	if gw.Meter.Enabled {
		meter, err := pzem.New(pzem.Config{
			Device:  gw.Meter.Device,
			Baud:    gw.Meter.Baud,
			UnitID:  gw.Meter.UnitID,
			Timeout: time.Duration(gw.Meter.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("meter setup failed: %v", err)
		}
		defer meter.Close()
		srv.SetMeter(meter)
		log.Printf("pzem meter on %s", gw.Meter.Device)
	}

	if gw.MQTT.Enabled {
		pub, err := mqtt.Connect(mqtt.Config{
			Broker:      gw.MQTT.Broker,
			ClientID:    gw.MQTT.ClientID,
			Username:    gw.MQTT.Username,
			Password:    gw.MQTT.Password,
			TopicPrefix: gw.MQTT.TopicPrefix,
			QoS:         byte(gw.MQTT.QoS),
		})
		if err != nil {
			log.Fatalf("mqtt connect failed: %v", err)
		}
		defer pub.Close()
		srv.SetPublisher(pub)

		// retained startup states so subscribers see the forced OFF
		for i, on := range bank.States() {
			if err := pub.RelayState(i+1, on); err != nil {
				log.Printf("mqtt startup publish failed: %v", err)
			}
		}
		log.Printf("mqtt publisher connected to %s", gw.MQTT.Broker)
	}

	// --------------------
	// Poll loop (single goroutine, blocks until signal)
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv.Run(ctx)
	log.Println("shutting down")
}
