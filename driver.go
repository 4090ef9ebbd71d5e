package livedsl

import (
	"errors"

	"github.com/grindlemire/go-livedsl/internal/debug"
	"github.com/grindlemire/go-livedsl/internal/dsl"
	"github.com/grindlemire/go-livedsl/internal/markup"
)

// ErrBusy is returned when a trigger arrives while a compile cycle is
// running, e.g. from inside a Sink callback.
var ErrBusy = errors.New("livedsl: trigger received during a compile cycle")

// Sink receives the outcome of every compile cycle.
type Sink interface {
	// Publish is called after a successful cycle.
	Publish(r *Result)
	// Fail is called after a failed cycle. last is the most recent
	// successful result (nil if there is none) so the sink can keep
	// showing it next to the diagnostic.
	Fail(d *Diagnostic, last *Result)
}

// ViewportFunc reports the current viewport width in pixels.
type ViewportFunc func() int

type nopSink struct{}

func (nopSink) Publish(*Result)           {}
func (nopSink) Fail(*Diagnostic, *Result) {}

// Driver recompiles a source document on every edit, resize or click and
// publishes the outcome to a Sink.
//
// Each trigger runs the pipeline synchronously to completion. A Driver is
// not safe for concurrent use; the caller's event loop must deliver
// triggers one at a time.
//
//	d, _ := livedsl.NewDriver(livedsl.WithSink(sink), livedsl.WithViewport(width))
//	d.SetSource(src)      // reparse, reseed state
//	d.Resize()            // re-filter with a fresh viewport sample
//	d.Click("count", 1)   // increment, then recompile
type Driver struct {
	filename string
	source   string
	store    *Store
	viewport ViewportFunc
	sink     Sink
	policy   StatePolicy
	maxDepth int

	// Artifacts of the current source; tree is nil while it fails to compile.
	prog *dsl.Program
	tree dsl.Node

	loaded  bool
	running bool
	last    *Result
	lastErr *Diagnostic

	// Outcome of the most recent cycle, for triggers that run via bindings.
	outcome    *Result
	outcomeErr error

	unbind Unbind
}

// NewDriver creates a driver. No compile happens until SetSource.
func NewDriver(opts ...Option) (*Driver, error) {
	d := &Driver{
		store:    NewStore(),
		viewport: func() int { return DefaultViewportWidth },
		sink:     nopSink{},
		policy:   ResetOnEdit,
		maxDepth: dsl.DefaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	d.unbind = d.store.Bind(func(name string, value int) {
		if d.running {
			debug.Log("Driver: %s changed during a cycle; not recompiling", name)
			return
		}
		d.run(TriggerClick)
	})
	return d, nil
}

// Close detaches the driver from its store.
func (d *Driver) Close() {
	if d.unbind != nil {
		d.unbind()
		d.unbind = nil
	}
}

// Store returns the driver's state store.
func (d *Driver) Store() *Store {
	return d.store
}

// Source returns the current source text.
func (d *Driver) Source() string {
	return d.source
}

// Last returns the most recent successful result, or nil.
func (d *Driver) Last() *Result {
	return d.last
}

// LastError returns the diagnostic of the most recent cycle if it failed.
func (d *Driver) LastError() *Diagnostic {
	return d.lastErr
}

// SetSource replaces the source text, reparses it and reseeds state
// according to the driver's StatePolicy.
func (d *Driver) SetSource(source string) (*Result, error) {
	if d.running {
		return nil, ErrBusy
	}
	d.source = source
	d.loaded = true
	d.run(TriggerEdit)
	return d.outcome, d.outcomeErr
}

// Resize recompiles with a fresh viewport sample. State is kept and the
// source is not reparsed.
func (d *Driver) Resize() (*Result, error) {
	if d.running {
		return nil, ErrBusy
	}
	d.run(TriggerResize)
	return d.outcome, d.outcomeErr
}

// Click increments target by step and recompiles. State is kept and the
// source is not reparsed. While the source fails to compile, Click changes
// nothing and returns the current diagnostic.
func (d *Driver) Click(target string, step int) (*Result, error) {
	if d.running {
		return nil, ErrBusy
	}
	if d.prog == nil && d.lastErr != nil {
		// The source does not compile, so the click cannot complete a
		// cycle. State is left untouched and the diagnostic is replayed.
		d.run(TriggerClick)
		return nil, d.outcomeErr
	}
	if err := d.store.Increment(target, step); err != nil {
		d.fail(err, TriggerClick)
		return nil, d.outcomeErr
	}
	return d.outcome, d.outcomeErr
}

// Activate performs a rendered button's action.
func (d *Driver) Activate(a *markup.Action) (*Result, error) {
	if a == nil {
		return d.last, nil
	}
	return d.Click(a.Target, a.Step)
}

// run executes one compile cycle. The viewport is sampled once up front.
func (d *Driver) run(trigger Trigger) {
	d.running = true
	defer func() { d.running = false }()

	width := d.viewport()
	debug.Log("Driver.run: trigger=%s width=%d", trigger, width)

	if trigger == TriggerEdit || !d.loaded {
		d.loaded = true
		d.recompile(trigger, width)
		return
	}

	if d.tree == nil {
		// The current source does not compile; nothing new to show.
		if d.lastErr != nil {
			diag := *d.lastErr
			diag.Trigger = trigger
			d.publishFailure(&diag)
		}
		return
	}

	doc, err := dsl.Render(dsl.Filter(d.tree, width), d.store)
	if err != nil {
		d.fail(err, trigger)
		return
	}
	d.succeed(doc, trigger, width, d.store.Snapshot())
}

// recompile parses and expands the source, then renders with state seeded
// per policy. Nothing is committed unless every stage succeeds.
func (d *Driver) recompile(trigger Trigger, width int) {
	prog, err := dsl.Parse(d.filename, d.source)
	if err != nil {
		d.prog, d.tree = nil, nil
		d.fail(err, trigger)
		return
	}
	if debug.Enabled() {
		for _, w := range prog.Warnings {
			debug.Log("Driver.run: warning: %v", w)
		}
	}

	tree, err := dsl.Expand(prog, d.maxDepth)
	if err != nil {
		d.prog, d.tree = nil, nil
		d.fail(err, trigger)
		return
	}

	values := d.store.seed(prog.StateDecls, d.policy)
	doc, err := dsl.Render(dsl.Filter(tree, width), valueReader(values))
	if err != nil {
		d.prog, d.tree = nil, nil
		d.fail(err, trigger)
		return
	}

	d.prog, d.tree = prog, tree
	d.store.replace(values)
	d.succeed(doc, trigger, width, d.store.Snapshot())
}

func (d *Driver) succeed(doc *markup.Document, trigger Trigger, width int, state map[string]int) {
	r := &Result{Document: doc, Trigger: trigger, Width: width, State: state}
	if d.prog != nil {
		r.Warnings = d.prog.Warnings
	}
	d.last = r
	d.lastErr = nil
	d.outcome, d.outcomeErr = r, nil
	debug.Log("Driver.run: %s ok", trigger)
	d.sink.Publish(r)
}

func (d *Driver) fail(err error, trigger Trigger) {
	d.publishFailure(NewDiagnostic(err, trigger))
}

func (d *Driver) publishFailure(diag *Diagnostic) {
	d.lastErr = diag
	d.outcome, d.outcomeErr = nil, diag
	debug.Log("Driver.run: %s failed: %v", diag.Trigger, diag)
	d.sink.Fail(diag, d.last)
}
