// internal/httpd/parser.go
package httpd

import "bytes"

// maxPathBytes caps the stored path token. Longer paths keep their first
// 127 bytes and can therefore never match a route.
const maxPathBytes = 127

var delimiter = []byte("\r\n\r\n")

// Parse extracts method, path and body from a raw request buffer.
// It never fails: missing pieces come back empty. No header fields are
// interpreted; the body is everything after the first blank line.
func Parse(raw []byte) Request {
	var req Request

	line := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		line = raw[:i]
	}

	fields := bytes.Fields(line)
	if len(fields) > 0 {
		req.Method = string(fields[0])
	}
	if len(fields) > 1 {
		p := fields[1]
		if len(p) > maxPathBytes {
			p = p[:maxPathBytes]
		}
		req.Path = string(p)
	}

	if i := bytes.Index(raw, delimiter); i >= 0 {
		req.Body = raw[i+len(delimiter):]
	}

	return req
}
