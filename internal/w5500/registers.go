// internal/w5500/registers.go
package w5500

// W5500 register map and command codes.
// These values define the chip protocol and MUST NOT be configurable.

// ---- CONTROL PHASE ----

// The control byte carries the block select in bits 7..3 and the access
// mode in bit 2. Variable-length data mode is always used.
const (
	blockCommon  = 0x00
	controlWrite = 0x04
)

// sockReg selects the register block of socket slot n.
func sockReg(n uint8) byte { return byte(n)<<2 + 1 }

// sockTX selects the transmit buffer block of socket slot n.
func sockTX(n uint8) byte { return byte(n)<<2 + 2 }

// sockRX selects the receive buffer block of socket slot n.
func sockRX(n uint8) byte { return byte(n)<<2 + 3 }

// ---- COMMON REGISTERS ----

const (
	regMode    = 0x0000 // MR
	regGateway = 0x0001 // GAR, 4 bytes
	regSubnet  = 0x0005 // SUBR, 4 bytes
	regMAC     = 0x0009 // SHAR, 6 bytes
	regSource  = 0x000F // SIPR, 4 bytes
	regPHY     = 0x002E // PHYCFGR, bit 0 = link status
	regVersion = 0x0039 // VERSIONR, always 0x04
)

// chipVersion is the value VERSIONR reads on a live W5500.
const chipVersion = 0x04

// phyLinkUp is the PHYCFGR link status bit.
const phyLinkUp = 0x01

// ---- SOCKET REGISTERS ----

const (
	regSockMode    = 0x0000 // Sn_MR
	regSockCommand = 0x0001 // Sn_CR
	regSockIR      = 0x0002 // Sn_IR
	regSockStatus  = 0x0003 // Sn_SR
	regSockPort    = 0x0004 // Sn_PORT, 2 bytes
	regSockTXFree  = 0x0020 // Sn_TX_FSR, 2 bytes
	regSockTXWrite = 0x0024 // Sn_TX_WR, 2 bytes
	regSockRXSize  = 0x0026 // Sn_RX_RSR, 2 bytes
	regSockRXRead  = 0x0028 // Sn_RX_RD, 2 bytes
)

// ---- SOCKET MODES ----

const modeTCP = 0x01

// ---- SOCKET COMMANDS ----

const (
	cmdOpen       = 0x01
	cmdListen     = 0x02
	cmdDisconnect = 0x08
	cmdClose      = 0x10
	cmdSend       = 0x20
	cmdRecv       = 0x40
)

// ---- SOCKET STATUS CODES ----

const (
	statClosed      = 0x00
	statInit        = 0x13
	statListen      = 0x14
	statEstablished = 0x17
	statCloseWait   = 0x1C
)
