// internal/httpd/builder.go
package httpd

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/tamzrod/relay-gateway/internal/config"
	"github.com/tamzrod/relay-gateway/internal/relay"
	"github.com/tamzrod/relay-gateway/internal/w5500"
)

// linkWait bounds the startup wait for an Ethernet cable. A missing cable
// is not fatal; the chip serves as soon as one arrives.
const linkWait = 5 * time.Second

// Build brings up the W5500 described by gw and returns a Server wired to
// it. Fail fast at startup: chip absence or a dead SPI bus is a deployment
// error. The returned closer releases the socket and the SPI port.
func Build(gw config.GatewayConfig, bank *relay.Bank) (*Server, func() error, error) {
	mac, err := net.ParseMAC(gw.Network.MAC)
	if err != nil {
		return nil, nil, fmt.Errorf("httpd: mac %q: %w", gw.Network.MAC, err)
	}
	ip := net.ParseIP(gw.Network.IP)
	gateway := net.ParseIP(gw.Network.Gateway)
	subnet := net.ParseIP(gw.Network.Subnet)
	if ip == nil || gateway == nil || subnet == nil {
		return nil, nil, fmt.Errorf("httpd: network addresses must be IPv4")
	}

	resetPin := -1
	if gw.SPI.ResetPin != nil {
		resetPin = *gw.SPI.ResetPin
	}

	dev, err := w5500.New(w5500.Config{
		SPIPort:  gw.SPI.Port,
		SpeedHz:  gw.SPI.SpeedHz,
		ResetPin: resetPin,
		Slot:     uint8(gw.HTTP.Slot),
	})
	if err != nil {
		return nil, nil, err
	}

	if err := dev.ConfigureNetwork(mac, ip, gateway, subnet); err != nil {
		dev.Shutdown()
		return nil, nil, err
	}

	if dev.WaitLink(linkWait) {
		log.Printf("httpd: ethernet link up, %s:%d", gw.Network.IP, gw.HTTP.Port)
	} else {
		log.Printf("httpd: no ethernet link after %s, continuing", linkWait)
	}

	srv, err := New(
		Config{
			Port:            uint16(gw.HTTP.Port),
			MaxRequestBytes: gw.HTTP.MaxRequestBytes,
			Interval:        time.Duration(gw.Poll.IntervalMs) * time.Millisecond,
		},
		dev,
		bank,
	)
	if err != nil {
		dev.Shutdown()
		return nil, nil, err
	}

	return srv, dev.Shutdown, nil
}
