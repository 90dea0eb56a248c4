// internal/relay/relay.go
package relay

import (
	"fmt"
	"log"
)

// Count is the fixed number of relay channels on the board.
const Count = 8

// Pin drives one physical relay output.
// This is the exact contract the bank needs from the GPIO layer.
type Pin interface {
	Set(on bool) error
}

// Bank holds the boolean state of all eight relays and the pins behind them.
// It is owned by the polling loop; methods are not safe for concurrent use.
type Bank struct {
	pins   [Count]Pin
	states [Count]bool
}

// New builds a Bank over exactly eight pins and forces every output OFF.
// The in-memory state is authoritative from this point on.
func New(pins [Count]Pin) (*Bank, error) {
	for i, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("relay: pin for relay %d is nil", i+1)
		}
	}

	b := &Bank{pins: pins}
	for i := range b.pins {
		b.drive(i, false)
	}
	return b, nil
}

// Set switches relay n (1-based) to the requested state.
// Indices outside 1..Count are ignored without error or log.
func (b *Bank) Set(n int, on bool) {
	if n < 1 || n > Count {
		return
	}
	b.states[n-1] = on
	b.drive(n-1, on)
	log.Printf("relay %d: %s", n, onOff(on))
}

// SetAll switches every relay to the same state.
func (b *Bank) SetAll(on bool) {
	for i := range b.states {
		b.states[i] = on
		b.drive(i, on)
	}
	log.Printf("all relays: %s", onOff(on))
}

// Get reports the recorded state of relay n (1-based).
// Indices outside 1..Count read as OFF.
func (b *Bank) Get(n int) bool {
	if n < 1 || n > Count {
		return false
	}
	return b.states[n-1]
}

// States returns a copy of the full state array, relay 1 first.
func (b *Bank) States() [Count]bool {
	return b.states
}

// drive pushes one state to hardware. A pin failure is logged and the
// recorded state keeps the requested value; the array stays authoritative.
func (b *Bank) drive(i int, on bool) {
	if err := b.pins[i].Set(on); err != nil {
		log.Printf("relay %d: pin error: %v", i+1, err)
	}
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
