// internal/httpd/server.go
package httpd

import (
	"errors"
	"log"

	"github.com/tamzrod/relay-gateway/internal/relay"
	"github.com/tamzrod/relay-gateway/internal/socket"
)

// Server drives one hardware socket through the poll, parse, route and
// respond cycle. It owns the relay bank; everything runs on the single
// polling goroutine.
type Server struct {
	cfg  Config
	tr   Transport
	bank *relay.Bank

	// optional collaborators; nil when disabled
	meter Meter
	pub   StatePublisher

	buf []byte // reusable receive buffer

	linkPolls int
	linkKnown bool
	linkUp    bool
}

// New creates a server with immutable config.
func New(cfg Config, tr Transport, bank *relay.Bank) (*Server, error) {
	if tr == nil {
		return nil, errors.New("httpd: transport required")
	}
	if bank == nil {
		return nil, errors.New("httpd: relay bank required")
	}
	if cfg.Port == 0 {
		return nil, errors.New("httpd: port required")
	}
	if cfg.MaxRequestBytes <= 0 {
		return nil, errors.New("httpd: max request bytes must be > 0")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("httpd: interval must be > 0")
	}
	return &Server{
		cfg:  cfg,
		tr:   tr,
		bank: bank,
		buf:  make([]byte, cfg.MaxRequestBytes),
	}, nil
}

// SetMeter attaches the optional power meter. Call before Run.
func (s *Server) SetMeter(m Meter) { s.meter = m }

// SetPublisher attaches the optional state publisher. Call before Run.
func (s *Server) SetPublisher(p StatePublisher) { s.pub = p }

// PollOnce inspects the socket exactly once and performs the single action
// its state calls for. No retries, no loops: a failed action leaves the
// socket where it is and the next cycle reads a fresh state.
func (s *Server) PollOnce() error {
	st, err := s.tr.State()
	if err != nil {
		return err
	}

	switch st {
	case socket.StateClosed:
		return s.tr.Open(s.cfg.Port)

	case socket.StateInit:
		if err := s.tr.Listen(); err != nil {
			return err
		}
		log.Printf("httpd: listening on :%d", s.cfg.Port)
		return nil

	case socket.StateEstablished:
		return s.serveEstablished()

	case socket.StateCloseWait:
		return s.tr.Disconnect()

	default:
		// listening with no client yet, or a transient chip state
		return nil
	}
}

// serveEstablished reads at most one request if bytes are pending, answers
// it, and hands the connection back closed. A connected client that has not
// sent anything keeps the slot and is never timed out here.
func (s *Server) serveEstablished() error {
	avail, err := s.tr.Available()
	if err != nil {
		return err
	}
	if avail == 0 {
		return nil
	}

	n := avail
	truncated := false
	if n > len(s.buf) {
		n = len(s.buf)
		truncated = true
	}

	got, err := s.tr.Recv(s.buf[:n])
	if err != nil {
		return err
	}

	req := Parse(s.buf[:got])
	req.Truncated = truncated
	if req.Truncated {
		log.Printf("httpd: request truncated to %d bytes", len(s.buf))
	}
	log.Printf("httpd: %s %s", req.Method, req.Path)

	// The connection is closed no matter how the response goes.
	var firstErr error
	if resp := s.route(req); resp != nil {
		if err := s.writeResponse(resp); err != nil {
			firstErr = err
		}
	}
	if err := s.tr.Disconnect(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
