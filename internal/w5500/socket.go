// internal/w5500/socket.go
package w5500

import (
	"fmt"
	"time"

	"github.com/tamzrod/relay-gateway/internal/socket"
)

// Socket command completion and transmit pacing bounds. A wedged bus fails
// with an error instead of hanging the poll loop.
const (
	cmdSpinLimit   = 1000
	sendChunkMax   = 1024
	sendStallLimit = 2000
	sendStallPause = time.Millisecond
)

// State reads the socket status register and maps it onto the lifecycle
// enum. Unknown codes map to StateOther and are left alone upstream.
func (d *Device) State() (socket.State, error) {
	v, err := d.readReg(sockReg(d.slot), regSockStatus)
	if err != nil {
		return socket.StateOther, err
	}
	switch v {
	case statClosed:
		return socket.StateClosed, nil
	case statInit:
		return socket.StateInit, nil
	case statListen:
		return socket.StateListening, nil
	case statEstablished:
		return socket.StateEstablished, nil
	case statCloseWait:
		return socket.StateCloseWait, nil
	default:
		return socket.StateOther, nil
	}
}

// Open binds the slot for TCP on the given port.
func (d *Device) Open(port uint16) error {
	block := sockReg(d.slot)
	if err := d.writeReg(block, regSockMode, modeTCP); err != nil {
		return err
	}
	if err := d.write16(block, regSockPort, port); err != nil {
		return err
	}
	return d.command(cmdOpen)
}

// Listen moves an initialized slot into listening.
func (d *Device) Listen() error {
	return d.command(cmdListen)
}

// Disconnect actively closes the current connection.
func (d *Device) Disconnect() error {
	return d.command(cmdDisconnect)
}

// Close force-releases the slot.
func (d *Device) Close() error {
	return d.command(cmdClose)
}

// Available reports pending received bytes.
func (d *Device) Available() (int, error) {
	v, err := d.read16(sockReg(d.slot), regSockRXSize)
	return int(v), err
}

// Recv copies up to len(buf) pending bytes out of the receive buffer,
// advances the read pointer and acknowledges with RECV. Address wrap inside
// the buffer block is handled by the chip.
func (d *Device) Recv(buf []byte) (int, error) {
	block := sockReg(d.slot)

	avail, err := d.read16(block, regSockRXSize)
	if err != nil {
		return 0, err
	}
	n := len(buf)
	if int(avail) < n {
		n = int(avail)
	}
	if n == 0 {
		return 0, nil
	}

	ptr, err := d.read16(block, regSockRXRead)
	if err != nil {
		return 0, err
	}
	data, err := d.read(sockRX(d.slot), ptr, n)
	if err != nil {
		return 0, err
	}
	copy(buf, data)

	if err := d.write16(block, regSockRXRead, ptr+uint16(n)); err != nil {
		return 0, err
	}
	if err := d.command(cmdRecv); err != nil {
		return 0, err
	}
	return n, nil
}

// Send queues p for transmission in chunks bounded by the free transmit
// space, issuing SEND per chunk. It returns once the full payload has been
// accepted.
func (d *Device) Send(p []byte) error {
	block := sockReg(d.slot)
	sent := 0
	stalls := 0

	for sent < len(p) {
		free, err := d.read16(block, regSockTXFree)
		if err != nil {
			return err
		}
		if free == 0 {
			stalls++
			if stalls > sendStallLimit {
				return fmt.Errorf("w5500: transmit stalled after %d bytes", sent)
			}
			time.Sleep(sendStallPause)
			continue
		}
		stalls = 0

		chunk := len(p) - sent
		if chunk > int(free) {
			chunk = int(free)
		}
		if chunk > sendChunkMax {
			chunk = sendChunkMax
		}

		ptr, err := d.read16(block, regSockTXWrite)
		if err != nil {
			return err
		}
		if err := d.write(sockTX(d.slot), ptr, p[sent:sent+chunk]); err != nil {
			return err
		}
		if err := d.write16(block, regSockTXWrite, ptr+uint16(chunk)); err != nil {
			return err
		}
		if err := d.command(cmdSend); err != nil {
			return err
		}
		sent += chunk
	}
	return nil
}

// command issues a socket command and waits, bounded, for the command
// register to clear.
func (d *Device) command(c byte) error {
	block := sockReg(d.slot)
	if err := d.writeReg(block, regSockCommand, c); err != nil {
		return err
	}
	for i := 0; i < cmdSpinLimit; i++ {
		v, err := d.readReg(block, regSockCommand)
		if err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
	return fmt.Errorf("w5500: command 0x%02X did not clear", c)
}
