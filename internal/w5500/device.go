// internal/w5500/device.go
package w5500

import (
	"fmt"
	"net"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Config is minimal transport config.
type Config struct {
	SPIPort  string // spireg name; empty selects the first port
	SpeedHz  int
	ResetPin int   // BCM number of the reset line; negative means none
	Slot     uint8 // hardware socket slot, 0..7
}

// Device is one W5500 chip on an SPI bus. All methods issue synchronous
// register transactions; nothing is cached. Not safe for concurrent use.
type Device struct {
	port spi.PortCloser
	conn spi.Conn
	rst  gpio.PinIO // nil when no reset line is wired
	slot uint8
}

// New opens the SPI port, pulses the hardware reset line when one is
// configured, and verifies chip presence via the version register.
func New(cfg Config) (*Device, error) {
	if cfg.Slot > 7 {
		return nil, fmt.Errorf("w5500: slot %d out of range", cfg.Slot)
	}
	if cfg.SpeedHz <= 0 {
		return nil, fmt.Errorf("w5500: spi speed must be > 0")
	}

	// host.Init can safely be called multiple times.
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("w5500: host init: %w", err)
	}

	port, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("w5500: open spi %q: %w", cfg.SPIPort, err)
	}

	conn, err := port.Connect(physic.Frequency(cfg.SpeedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("w5500: connect spi: %w", err)
	}

	d := &Device{port: port, conn: conn, slot: cfg.Slot}

	if cfg.ResetPin >= 0 {
		rst := gpioreg.ByName(fmt.Sprintf("GPIO%d", cfg.ResetPin))
		if rst == nil {
			port.Close()
			return nil, fmt.Errorf("w5500: no pin GPIO%d", cfg.ResetPin)
		}
		d.rst = rst
		if err := d.reset(); err != nil {
			port.Close()
			return nil, err
		}
	}

	if err := d.verify(); err != nil {
		port.Close()
		return nil, err
	}

	return d, nil
}

// reset pulses the hardware reset line: 100ms low, then 200ms for the chip
// to come back up.
func (d *Device) reset() error {
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("w5500: reset low: %w", err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("w5500: reset high: %w", err)
	}
	time.Sleep(200 * time.Millisecond)
	return nil
}

// verify reads the version register. Anything but 0x04 means the chip is
// absent or the bus is miswired.
func (d *Device) verify() error {
	v, err := d.readReg(blockCommon, regVersion)
	if err != nil {
		return fmt.Errorf("w5500: version read: %w", err)
	}
	if v != chipVersion {
		return fmt.Errorf("w5500: unexpected chip version 0x%02X", v)
	}
	return nil
}

// ConfigureNetwork writes the static addressing registers.
func (d *Device) ConfigureNetwork(mac net.HardwareAddr, ip, gateway, subnet net.IP) error {
	if len(mac) != 6 {
		return fmt.Errorf("w5500: mac must be 6 bytes")
	}
	ip4 := ip.To4()
	gw4 := gateway.To4()
	sn4 := subnet.To4()
	if ip4 == nil || gw4 == nil || sn4 == nil {
		return fmt.Errorf("w5500: addresses must be IPv4")
	}

	if err := d.write(blockCommon, regMAC, mac); err != nil {
		return fmt.Errorf("w5500: write mac: %w", err)
	}
	if err := d.write(blockCommon, regGateway, gw4); err != nil {
		return fmt.Errorf("w5500: write gateway: %w", err)
	}
	if err := d.write(blockCommon, regSubnet, sn4); err != nil {
		return fmt.Errorf("w5500: write subnet: %w", err)
	}
	if err := d.write(blockCommon, regSource, ip4); err != nil {
		return fmt.Errorf("w5500: write ip: %w", err)
	}
	return nil
}

// LinkUp reports the PHY link status bit.
func (d *Device) LinkUp() (bool, error) {
	v, err := d.readReg(blockCommon, regPHY)
	if err != nil {
		return false, err
	}
	return v&phyLinkUp != 0, nil
}

// WaitLink polls the PHY until the link comes up or the timeout passes.
func (d *Device) WaitLink(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if up, err := d.LinkUp(); err == nil && up {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Shutdown releases the socket slot and the SPI port.
func (d *Device) Shutdown() error {
	// best effort; the chip resets its socket on power cycle anyway
	_ = d.Disconnect()
	_ = d.Close()
	return d.port.Close()
}

// ------------------------------------------------------------
// SPI FRAME PRIMITIVES
// ------------------------------------------------------------

// read performs one variable-length read: 16-bit address, control byte,
// then n data bytes clocked in.
func (d *Device) read(block byte, addr uint16, n int) ([]byte, error) {
	w := make([]byte, 3+n)
	w[0] = byte(addr >> 8)
	w[1] = byte(addr)
	w[2] = block << 3
	r := make([]byte, len(w))
	if err := d.conn.Tx(w, r); err != nil {
		return nil, fmt.Errorf("w5500: spi read: %w", err)
	}
	return r[3:], nil
}

// write performs one variable-length write.
func (d *Device) write(block byte, addr uint16, data []byte) error {
	w := make([]byte, 3+len(data))
	w[0] = byte(addr >> 8)
	w[1] = byte(addr)
	w[2] = block<<3 | controlWrite
	copy(w[3:], data)
	if err := d.conn.Tx(w, nil); err != nil {
		return fmt.Errorf("w5500: spi write: %w", err)
	}
	return nil
}

func (d *Device) readReg(block byte, addr uint16) (byte, error) {
	b, err := d.read(block, addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Device) writeReg(block byte, addr uint16, v byte) error {
	return d.write(block, addr, []byte{v})
}

func (d *Device) read16(block byte, addr uint16) (uint16, error) {
	b, err := d.read(block, addr, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (d *Device) write16(block byte, addr uint16, v uint16) error {
	return d.write(block, addr, []byte{byte(v >> 8), byte(v)})
}
