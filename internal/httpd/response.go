// internal/httpd/response.go
package httpd

import "fmt"

// writeResponse sends the header block and the body as two sequential
// transport writes. Every response carries Connection: close; the protocol
// is one request per connection.
func (s *Server) writeResponse(r *Response) error {
	header := fmt.Sprintf(
		"HTTP/1.1 %s\r\nContent-Type: %s\r\nContent-Length: %d\r\nConnection: close\r\n\r\n",
		r.Status, r.ContentType, len(r.Body),
	)
	if err := s.tr.Send([]byte(header)); err != nil {
		return fmt.Errorf("httpd: send header: %w", err)
	}
	if err := s.tr.Send(r.Body); err != nil {
		return fmt.Errorf("httpd: send body: %w", err)
	}
	return nil
}
