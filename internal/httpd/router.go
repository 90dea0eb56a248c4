// internal/httpd/router.go
package httpd

import (
	"bytes"
	"log"
	"strings"

	"github.com/tamzrod/relay-gateway/internal/pzem"
	"github.com/tamzrod/relay-gateway/internal/relay"
)

// Route paths are protocol and MUST NOT be configurable.
const (
	pathRoot     = "/"
	pathIndex    = "/index.html"
	pathRelays   = "/api/relays"
	pathRelaySet = "/api/relay/" // followed by the relay number
	pathAllOn    = "/api/relays/all/on"
	pathAllOff   = "/api/relays/all/off"
	pathPower    = "/api/power"
)

const (
	statusOK         = "200 OK"
	statusNotFound   = "404 Not Found"
	statusBadGateway = "502 Bad Gateway"

	ctHTML = "text/html"
	ctJSON = "application/json"
	ctText = "text/plain"
)

var (
	bodySuccess    = []byte(`{"success":true}`)
	bodyNotFound   = []byte("Not Found")
	bodyMeterError = []byte("Meter Unavailable")
	bodyIndexPage  = []byte(indexPage)
	stateOn        = []byte(`"state":1`)
	stateOnSpaced  = []byte(`"state": 1`)
)

func ok(contentType string, body []byte) *Response {
	return &Response{Status: statusOK, ContentType: contentType, Body: body}
}

func notFound() *Response {
	return &Response{Status: statusNotFound, ContentType: ctText, Body: bodyNotFound}
}

// route dispatches one parsed request against the fixed table.
// Anything the table does not know, including unknown methods, is a 404.
func (s *Server) route(req Request) *Response {
	switch req.Method {
	case "GET":
		switch req.Path {
		case pathRoot, pathIndex:
			return ok(ctHTML, bodyIndexPage)
		case pathRelays:
			return ok(ctJSON, relay.EncodeStates(s.bank.States()))
		case pathPower:
			if s.meter == nil {
				return notFound()
			}
			return s.servePower()
		}
		return notFound()

	case "POST":
		switch {
		case strings.HasPrefix(req.Path, pathRelaySet):
			return s.serveRelaySet(req)
		case req.Path == pathAllOn:
			return s.serveRelayAll(true)
		case req.Path == pathAllOff:
			return s.serveRelayAll(false)
		}
		return notFound()
	}

	return notFound()
}

// serveRelaySet handles POST /api/relay/{n}. Only the first byte after the
// prefix is read, so "/api/relay/10" addresses relay 1. Out-of-range
// indices leave the store untouched and still succeed.
func (s *Server) serveRelaySet(req Request) *Response {
	if req.Body == nil {
		// No blank-line delimiter: nothing is mutated and nothing is
		// sent back. The caller still closes the connection.
		return nil
	}

	n := -1
	if len(req.Path) > len(pathRelaySet) {
		n = int(req.Path[len(pathRelaySet)]) - '0'
	}

	on := bodyRequestsOn(req.Body)
	s.bank.Set(n, on)
	s.announce(n, on)
	return ok(ctJSON, bodySuccess)
}

func (s *Server) serveRelayAll(on bool) *Response {
	s.bank.SetAll(on)
	s.announceAll(on)
	return ok(ctJSON, bodySuccess)
}

// servePower reads the meter on demand. A failed read keeps the server up;
// the client gets a 502 and the next request reads again.
func (s *Server) servePower() *Response {
	m, err := s.meter.Read()
	if err != nil {
		log.Printf("httpd: meter read: %v", err)
		return &Response{Status: statusBadGateway, ContentType: ctText, Body: bodyMeterError}
	}
	return ok(ctJSON, pzem.Encode(m))
}

// bodyRequestsOn decides the commanded state by literal substring match,
// with an optional space after the colon. Anything else means OFF.
func bodyRequestsOn(body []byte) bool {
	return bytes.Contains(body, stateOn) || bytes.Contains(body, stateOnSpaced)
}

// announce publishes one relay transition. A nil publisher means MQTT is
// off; out-of-range indices were never applied and are not published.
func (s *Server) announce(n int, on bool) {
	if s.pub == nil || n < 1 || n > relay.Count {
		return
	}
	if err := s.pub.RelayState(n, on); err != nil {
		log.Printf("httpd: publish relay %d: %v", n, err)
	}
}

func (s *Server) announceAll(on bool) {
	if s.pub == nil {
		return
	}
	for n := 1; n <= relay.Count; n++ {
		s.announce(n, on)
	}
}
