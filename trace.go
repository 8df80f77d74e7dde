// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// TraceEvent represents a single parser invocation in a traced run.
//
// Each event captures the parser's name, where in the root input it
// ran, how much it consumed, how long it took, and the error message
// if it failed.
type TraceEvent struct {
	// Name is the label given to the parser when it was wrapped.
	Name string `json:"name"`

	// Offset is the element offset from the start of the root input
	// at which the parser was applied.
	Offset int `json:"offset"`

	// Depth is the nesting level of the invocation: 0 for an outermost
	// traced parser, one more for each traced parser it runs inside.
	Depth int `json:"depth"`

	// Consumed is the number of elements the parser consumed. Failed
	// parsers consume nothing.
	Consumed int `json:"consumed"`

	// Start is when the invocation began.
	Start time.Time `json:"start"`

	// Duration is how long the invocation took.
	Duration time.Duration `json:"duration"`

	// Error is the error message if the invocation failed, empty
	// otherwise.
	Error string `json:"error,omitempty"`
}

// TraceOption configures trace behavior.
type TraceOption func(*traceOptions)

// traceOptions holds configuration for tracing.
type traceOptions struct {
	// StreamTo specifies where to write events as JSON Lines while
	// parsing. If nil, events are only stored in memory.
	StreamTo io.Writer
}

// WithStreamTo configures the tracer to stream events as JSON Lines to
// the given writer.
//
// Events are written one JSON object per line as they complete, which
// keeps a record on disk even if the process dies mid-parse. This is
// different from [Trace.WriteTo], which renders a pretty-printed JSON
// array after the run. All events are retained in memory either way.
//
// Write failures are best-effort and never fail the parse.
//
// Example:
//
//	f, _ := os.Create("trace.jsonl")
//	defer f.Close()
//	tracer := nibble.NewTracer(input, nibble.WithStreamTo(f))
func WithStreamTo(w io.Writer) TraceOption {
	return func(opts *traceOptions) {
		opts.StreamTo = w
	}
}

// Trace is the result of a traced run: every recorded event plus
// aggregate counts. All fields are directly accessible for querying
// and analysis.
type Trace struct {
	// Events is the list of all recorded trace events.
	Events []TraceEvent

	// Start is when the tracer was created.
	Start time.Time

	// Duration is the wall-clock time covered by the trace. For
	// filtered traces (from Filter), this is the sum of event
	// durations.
	Duration time.Duration

	// TotalParses is the number of traced parser invocations. Only
	// parsers wrapped with Traced are counted. For filtered traces
	// this equals len(Events).
	TotalParses int

	// TotalErrors is the number of invocations that failed. For
	// filtered traces this is the count of events with errors.
	TotalErrors int
}

// eventIdx is a type-safe index into the trace's event array.
type eventIdx int

// Tracer records the execution of parsers wrapped with [Traced].
//
// A Tracer is safe for concurrent use, but Depth is only meaningful
// while one parse runs at a time; give each concurrent parse its own
// Tracer and merge afterwards if needed.
type Tracer[I Input[I]] struct {
	mu       sync.Mutex
	rootLen  int
	depth    int
	streamTo io.Writer
	encoder  *json.Encoder
	result   *Trace
}

// NewTracer creates a tracer for a parse of root. The root input
// anchors every event's Offset.
//
// Example:
//
//	input := nibble.Text("#2F14DF")
//	tracer := nibble.NewTracer(input)
//	color := nibble.Traced(tracer, "color", hexColor)
//	_, _, _ = color(input)
//	tracer.Result().WriteText(os.Stdout)
func NewTracer[I Input[I]](root I, opts ...TraceOption) *Tracer[I] {
	options := traceOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	t := &Tracer[I]{
		rootLen:  root.Length(),
		streamTo: options.StreamTo,
		result: &Trace{
			Start:  time.Now(),
			Events: make([]TraceEvent, 0),
		},
	}
	if t.streamTo != nil {
		t.encoder = json.NewEncoder(t.streamTo)
	}
	return t
}

// Traced wraps a parser so every invocation records a [TraceEvent] on
// the tracer. The wrapped parser behaves identically otherwise; trace
// recording never alters results.
//
// Nested traced parsers record increasing Depth, so the event list
// reconstructs the call tree of a grammar.
func Traced[I Input[I], O any](t *Tracer[I], name string, p Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		idx := t.newEvent(name, t.rootLen-input.Length())
		rest, out, err := p(input)
		t.recordFinish(idx, input.Length()-rest.Length(), err)
		return rest, out, err
	}
}

// Result returns the trace collected so far. Duration covers tracer
// creation up to this call. If streaming is enabled, buffered output
// is flushed best-effort.
func (t *Tracer[I]) Result() *Trace {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.result.Duration = time.Since(t.result.Start)

	if t.streamTo != nil {
		if flusher, ok := t.streamTo.(interface{ Flush() error }); ok {
			_ = flusher.Flush()
		}
	}
	return t.result
}

// newEvent appends a started event and returns its index. The index
// must be passed to recordFinish when the invocation completes.
func (t *Tracer[I]) newEvent(name string, offset int) eventIdx {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := len(t.result.Events)
	t.result.Events = append(t.result.Events, TraceEvent{
		Name:   name,
		Offset: offset,
		Depth:  t.depth,
		Start:  time.Now(),
	})
	t.result.TotalParses++
	t.depth++

	return eventIdx(idx)
}

// recordFinish updates an event with its consumed count, duration, and
// error, then streams it if streaming is enabled.
func (t *Tracer[I]) recordFinish(idx eventIdx, consumed int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.depth--
	event := &t.result.Events[idx]
	event.Duration = time.Since(event.Start)
	event.Consumed = consumed
	if err != nil {
		event.Error = err.Error()
		t.result.TotalErrors++
	}

	if t.streamTo != nil {
		_ = t.encoder.Encode(event)
	}
}
