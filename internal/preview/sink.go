package preview

import (
	livedsl "github.com/grindlemire/go-livedsl"
)

// sink keeps the newest outcome of the driver for the view.
type sink struct {
	result *livedsl.Result     // shown document; the last good one after a failure
	diag   *livedsl.Diagnostic // nil after a successful cycle
	cycles int
}

func (s *sink) Publish(r *livedsl.Result) {
	s.result = r
	s.diag = nil
	s.cycles++
}

func (s *sink) Fail(d *livedsl.Diagnostic, last *livedsl.Result) {
	s.result = last
	s.diag = d
	s.cycles++
}
