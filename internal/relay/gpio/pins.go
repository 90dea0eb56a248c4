// internal/relay/gpio/pins.go
package gpio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Pin is one relay output behind a BCM GPIO line.
// It implements relay.Pin.
type Pin struct {
	io gpio.PinIO
}

// Pins resolves the given BCM pin numbers, configures each as an output
// driven low, and returns them in relay order. Pins are addressed by their
// BCM numbers, "GPIO17" style.
func Pins(numbers []int) ([]*Pin, error) {
	// host.Init can safely be called multiple times; subsequent calls
	// are no-ops.
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: host init: %w", err)
	}

	out := make([]*Pin, 0, len(numbers))
	for _, n := range numbers {
		p := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if p == nil {
			return nil, fmt.Errorf("gpio: no pin GPIO%d", n)
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("gpio: GPIO%d: %w", n, err)
		}
		out = append(out, &Pin{io: p})
	}
	return out, nil
}

// Set drives the output high for on, low for off.
func (p *Pin) Set(on bool) error {
	return p.io.Out(gpio.Level(on))
}
