// internal/httpd/types.go
package httpd

import (
	"time"

	"github.com/tamzrod/relay-gateway/internal/pzem"
	"github.com/tamzrod/relay-gateway/internal/socket"
)

// Transport abstracts the one hardware socket the server drives.
// The server depends on socket lifecycle and raw bytes only.
//
// IMPORTANT: this is the exact contract the poll loop uses.
// There must be NO other version of this interface anywhere.
type Transport interface {
	// State reports the current lifecycle position of the slot.
	State() (socket.State, error)

	// Open binds the slot for TCP on the given port (Closed -> Init).
	Open(port uint16) error

	// Listen accepts one inbound connection (Init -> Listening).
	Listen() error

	// Disconnect actively closes the current connection.
	Disconnect() error

	// Close force-releases the slot.
	Close() error

	// Available reports pending received bytes.
	Available() (int, error)

	// Recv copies up to len(buf) pending bytes and consumes them.
	Recv(buf []byte) (int, error)

	// Send queues p for transmission. It returns after the full payload
	// is accepted by the transmit buffer.
	Send(p []byte) error
}

// Meter is an optional power meter behind the /api/power route.
type Meter interface {
	Read() (pzem.Measurement, error)
}

// StatePublisher is an optional sink for relay transitions.
type StatePublisher interface {
	RelayState(n int, on bool) error
}

// Request is one parsed inbound request.
// Body is nil when the blank-line delimiter was never seen; an empty non-nil
// Body means the delimiter was found with nothing after it. Truncated marks
// a request that exceeded the receive buffer and lost its tail.
type Request struct {
	Method    string
	Path      string
	Body      []byte
	Truncated bool
}

// Response is one fully formed reply. A nil *Response from the route table
// means the handler chose to send nothing; the connection is closed either
// way.
type Response struct {
	Status      string
	ContentType string
	Body        []byte
}

// Config is the minimal runtime config the server needs.
type Config struct {
	Port            uint16
	MaxRequestBytes int
	Interval        time.Duration
}
