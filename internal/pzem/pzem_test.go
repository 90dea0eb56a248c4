// internal/pzem/pzem_test.go
package pzem

import (
	"errors"
	"testing"
)

// helper to build a raw response frame from register values
func frame(regs ...uint16) []byte {
	out := make([]byte, 0, 2*len(regs))
	for _, r := range regs {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

type fakeReader struct {
	raw []byte
	err error

	address  uint16
	quantity uint16
}

func (f *fakeReader) ReadInputRegisters(address, quantity uint16) ([]byte, error) {
	f.address = address
	f.quantity = quantity
	return f.raw, f.err
}

// ---- tests ----

func TestDecode_TypicalLoad(t *testing.T) {
	m, err := decode(frame(2301, 417, 0, 959, 0, 12345, 0, 500, 99, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Voltage != 230.1 {
		t.Fatalf("voltage = %v", m.Voltage)
	}
	if m.Current != 0.417 {
		t.Fatalf("current = %v", m.Current)
	}
	if m.Power != 95.9 {
		t.Fatalf("power = %v", m.Power)
	}
	if m.Energy != 12345 {
		t.Fatalf("energy = %v", m.Energy)
	}
	if m.Frequency != 50.0 {
		t.Fatalf("frequency = %v", m.Frequency)
	}
	if m.PowerFactor != 0.99 {
		t.Fatalf("power_factor = %v", m.PowerFactor)
	}
	if m.Alarm {
		t.Fatalf("alarm = true")
	}
}

func TestDecode_HighWords(t *testing.T) {
	// current and energy carry their high word in the second register
	m, err := decode(frame(2200, 0x1000, 0x0002, 0, 0, 0x0001, 0x0001, 500, 100, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Current != 135.168 {
		t.Fatalf("current = %v", m.Current)
	}
	if m.Energy != 65537 {
		t.Fatalf("energy = %v", m.Energy)
	}
	if !m.Alarm {
		t.Fatalf("alarm = false")
	}
}

func TestDecode_ShortFrame(t *testing.T) {
	if _, err := decode(frame(2301, 417)); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRead_UsesFullRegisterBlock(t *testing.T) {
	fr := &fakeReader{raw: frame(2301, 417, 0, 959, 0, 12345, 0, 500, 99, 0)}
	m := &Meter{client: fr}

	got, err := m.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fr.address != regBase || fr.quantity != regCount {
		t.Fatalf("read address=%d quantity=%d", fr.address, fr.quantity)
	}
	if got.Voltage != 230.1 {
		t.Fatalf("voltage = %v", got.Voltage)
	}
}

func TestRead_TransportError(t *testing.T) {
	fr := &fakeReader{err: errors.New("timeout")}
	m := &Meter{client: fr}

	if _, err := m.Read(); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestEncode_Layout(t *testing.T) {
	m := Measurement{
		Voltage:     230.1,
		Current:     0.417,
		Power:       95.9,
		Energy:      12345,
		Frequency:   50.0,
		PowerFactor: 0.99,
	}

	want := `{"voltage":230.1,"current":0.417,"power":95.9,"energy":12345,` +
		`"frequency":50.0,"power_factor":0.99,"alarm":false}`
	if got := string(Encode(m)); got != want {
		t.Fatalf("got %s", got)
	}
}

func TestEncode_AlarmTrue(t *testing.T) {
	m := Measurement{PowerFactor: 1, Alarm: true}

	want := `{"voltage":0.0,"current":0.000,"power":0.0,"energy":0,` +
		`"frequency":0.0,"power_factor":1.00,"alarm":true}`
	if got := string(Encode(m)); got != want {
		t.Fatalf("got %s", got)
	}
}
