// internal/httpd/runner.go
package httpd

import (
	"context"
	"log"
	"time"
)

// linkCheckEvery is the number of poll cycles between PHY link checks.
const linkCheckEvery = 1000

// linkReporter is an optional transport capability. The loop only reports
// link transitions; socket handling is unaffected.
type linkReporter interface {
	LinkUp() (bool, error)
}

// Run starts the ticker loop and polls until the context ends.
// One goroutine. No overlap. No retries.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.PollOnce(); err != nil {
				log.Printf("httpd: poll: %v", err)
			}
			s.linkPolls++
			if s.linkPolls >= linkCheckEvery {
				s.linkPolls = 0
				s.checkLink()
			}
		}
	}
}

// checkLink logs PHY link transitions. Steady state stays silent.
func (s *Server) checkLink() {
	lr, ok := s.tr.(linkReporter)
	if !ok {
		return
	}
	up, err := lr.LinkUp()
	if err != nil {
		return
	}
	if s.linkKnown && up == s.linkUp {
		return
	}
	s.linkKnown = true
	s.linkUp = up
	if up {
		log.Printf("httpd: ethernet link up")
	} else {
		log.Printf("httpd: ethernet link down")
	}
}
