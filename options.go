package livedsl

import (
	"fmt"
)

// maxExpansionDepth caps WithMaxExpansionDepth.
const maxExpansionDepth = 4096

// Option is a functional option for configuring a Driver.
type Option func(*Driver) error

// WithSink sets where compile results and diagnostics are published.
// By default they are discarded; use Driver.Last to read them.
func WithSink(s Sink) Option {
	return func(d *Driver) error {
		if s == nil {
			return fmt.Errorf("sink must not be nil")
		}
		d.sink = s
		return nil
	}
}

// WithViewport sets the function sampled once per compile cycle for the
// viewport width. Default is a fixed DefaultViewportWidth.
func WithViewport(fn ViewportFunc) Option {
	return func(d *Driver) error {
		if fn == nil {
			return fmt.Errorf("viewport function must not be nil")
		}
		d.viewport = fn
		return nil
	}
}

// WithViewportWidth fixes the viewport width.
func WithViewportWidth(width int) Option {
	return func(d *Driver) error {
		if width < 0 {
			return fmt.Errorf("viewport width must be non-negative, got %d", width)
		}
		d.viewport = func() int { return width }
		return nil
	}
}

// WithStatePolicy chooses whether edits reset state (default) or preserve it.
func WithStatePolicy(p StatePolicy) Option {
	return func(d *Driver) error {
		if p != ResetOnEdit && p != PreserveOnEdit {
			return fmt.Errorf("unknown state policy %d", p)
		}
		d.policy = p
		return nil
	}
}

// WithMaxExpansionDepth bounds nested component expansion. Default is 64.
// Valid range is 1-4096.
func WithMaxExpansionDepth(n int) Option {
	return func(d *Driver) error {
		if n < 1 {
			return fmt.Errorf("expansion depth must be at least 1")
		}
		if n > maxExpansionDepth {
			return fmt.Errorf("expansion depth cannot exceed %d", maxExpansionDepth)
		}
		d.maxDepth = n
		return nil
	}
}

// WithFilename sets the name reported in diagnostic positions.
func WithFilename(name string) Option {
	return func(d *Driver) error {
		d.filename = name
		return nil
	}
}
