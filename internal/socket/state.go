// internal/socket/state.go
package socket

// State is the lifecycle position of one hardware socket slot as reported
// by the transport. The five named states are the protocol; everything the
// chip reports outside them is StateOther.
type State uint8

const (
	// StateClosed means the slot is unbound.
	StateClosed State = iota

	// StateInit means the slot is opened for TCP but not yet listening.
	StateInit

	// StateListening means the slot accepts one inbound connection.
	StateListening

	// StateEstablished means a peer is connected and byte exchange is possible.
	StateEstablished

	// StateCloseWait means the peer closed its side and the slot must be
	// disconnected locally.
	StateCloseWait

	// StateOther covers transient chip states. The poller leaves them alone.
	StateOther
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateInit:
		return "init"
	case StateListening:
		return "listening"
	case StateEstablished:
		return "established"
	case StateCloseWait:
		return "close-wait"
	default:
		return "other"
	}
}
