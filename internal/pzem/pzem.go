// internal/pzem/pzem.go
package pzem

import (
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// PZEM-004T input register block. These values define the device protocol
// and MUST NOT be configurable.
const (
	regBase  = 0x0000
	regCount = 10
)

// registerReader is the exact modbus contract the meter uses.
// Responses are big-endian register pairs.
type registerReader interface {
	ReadInputRegisters(address, quantity uint16) (results []byte, err error)
}

// Measurement is one meter snapshot.
type Measurement struct {
	Voltage     float64 // volts
	Current     float64 // amperes
	Power       float64 // watts
	Energy      uint32  // watt-hours
	Frequency   float64 // hertz
	PowerFactor float64
	Alarm       bool
}

// Config is minimal transport config.
type Config struct {
	Device  string
	Baud    int
	UnitID  uint8
	Timeout time.Duration
}

// Meter reads a PZEM-004T v3 energy monitor over Modbus RTU.
type Meter struct {
	handler *modbus.RTUClientHandler
	client  registerReader
}

// New opens the serial device and connects. Fail fast: a meter that cannot
// be reached at startup is a deployment error, not a runtime condition.
func New(cfg Config) (*Meter, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("pzem: device required")
	}

	h := modbus.NewRTUClientHandler(cfg.Device)
	h.BaudRate = cfg.Baud
	h.DataBits = 8
	h.Parity = "N"
	h.StopBits = 1
	h.SlaveId = cfg.UnitID
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("pzem: connect %s: %w", cfg.Device, err)
	}

	return &Meter{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close releases the serial device.
func (m *Meter) Close() error {
	if m.handler == nil {
		return nil
	}
	return m.handler.Close()
}

// Read fetches the full register block and decodes it.
func (m *Meter) Read() (Measurement, error) {
	raw, err := m.client.ReadInputRegisters(regBase, regCount)
	if err != nil {
		return Measurement{}, fmt.Errorf("pzem: read: %w", err)
	}
	return decode(raw)
}

// decode unpacks the ten-register block. 32-bit quantities arrive low word
// first; registers themselves are big-endian on the wire.
func decode(raw []byte) (Measurement, error) {
	if len(raw) < 2*regCount {
		return Measurement{}, fmt.Errorf("pzem: short frame: %d bytes", len(raw))
	}

	reg := func(i int) uint32 {
		return uint32(raw[2*i])<<8 | uint32(raw[2*i+1])
	}

	return Measurement{
		Voltage:     float64(reg(0)) / 10,
		Current:     float64(reg(1)|reg(2)<<16) / 1000,
		Power:       float64(reg(3)|reg(4)<<16) / 10,
		Energy:      reg(5) | reg(6)<<16,
		Frequency:   float64(reg(7)) / 10,
		PowerFactor: float64(reg(8)) / 100,
		Alarm:       reg(9) != 0,
	}, nil
}
