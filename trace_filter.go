// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"path/filepath"
	"strings"
	"time"
)

// TraceFilter is a predicate function for filtering trace events.
type TraceFilter func(TraceEvent) bool

// FindEvent returns the first event matching all provided filters, or
// nil if none match.
//
// Multiple filters are AND'd together.
//
// Example:
//
//	// Find the first failing parser past the header
//	event := trace.FindEvent(
//	    nibble.HasError(),
//	    nibble.OffsetRange(8, 128),
//	)
//	if event != nil {
//	    log.Printf("%s failed at offset %d: %s", event.Name, event.Offset, event.Error)
//	}
func (t *Trace) FindEvent(filters ...TraceFilter) *TraceEvent {
	for i := range t.Events {
		event := &t.Events[i]
		match := true
		for _, filter := range filters {
			if !filter(*event) {
				match = false
				break
			}
		}
		if match {
			return event
		}
	}
	return nil
}

// Filter returns a new Trace containing only events matching all
// provided filters.
//
// Multiple filters are AND'd together. The original trace is not
// modified.
//
// The returned trace's TotalParses equals the number of filtered
// events, and TotalErrors equals the number of filtered events with
// errors. The Duration field is the sum of durations of the filtered
// events. The Start field is the earliest start time of the filtered
// events, or the original trace's Start when nothing matches.
//
// Example:
//
//	// Find slow parsers that still failed
//	filtered := trace.Filter(
//	    nibble.MinDuration(time.Millisecond),
//	    nibble.HasError(),
//	)
func (t *Trace) Filter(filters ...TraceFilter) *Trace {
	filtered := make([]TraceEvent, 0, len(t.Events))
	errorCount := 0
	var totalDuration time.Duration
	var earliestStart time.Time

	for _, event := range t.Events {
		match := true
		for _, filter := range filters {
			if !filter(event) {
				match = false
				break
			}
		}
		if match {
			filtered = append(filtered, event)
			totalDuration += event.Duration
			if event.Error != "" {
				errorCount++
			}
			if earliestStart.IsZero() || event.Start.Before(earliestStart) {
				earliestStart = event.Start
			}
		}
	}

	startTime := t.Start
	if !earliestStart.IsZero() {
		startTime = earliestStart
	}

	return &Trace{
		Events:      filtered,
		Start:       startTime,
		Duration:    totalDuration,
		TotalParses: len(filtered),
		TotalErrors: errorCount,
	}
}

// MinDuration returns a filter that matches events with duration >= d.
func MinDuration(d time.Duration) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Duration >= d
	}
}

// MaxDuration returns a filter that matches events with duration <= d.
func MaxDuration(d time.Duration) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Duration <= d
	}
}

// HasError returns a filter that matches events with errors.
func HasError() TraceFilter {
	return func(event TraceEvent) bool {
		return event.Error != ""
	}
}

// NoError returns a filter that matches events without errors.
func NoError() TraceFilter {
	return func(event TraceEvent) bool {
		return event.Error == ""
	}
}

// NameMatches returns a filter that matches events whose parser name
// matches the glob pattern.
//
// Patterns use filepath.Match semantics; see its documentation for the
// full matching behavior (e.g., *, ?, and [...] for character sets).
//
// If the pattern is malformed, no events will match (returns false).
func NameMatches(pattern string) TraceFilter {
	return func(event TraceEvent) bool {
		matched, err := filepath.Match(pattern, event.Name)
		if err != nil {
			// Invalid pattern - fail closed (no matches)
			return false
		}
		return matched
	}
}

// NamePrefix returns a filter that matches events whose parser name
// has the given prefix.
func NamePrefix(prefix string) TraceFilter {
	return func(event TraceEvent) bool {
		return strings.HasPrefix(event.Name, prefix)
	}
}

// DepthEquals returns a filter that matches events at the given
// nesting depth. Outermost traced parsers run at depth 0.
func DepthEquals(depth int) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Depth == depth
	}
}

// DepthAtMost returns a filter that matches events at or above the
// given depth.
//
// For example, DepthAtMost(1) matches the outermost parsers and their
// immediate children.
func DepthAtMost(depth int) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Depth <= depth
	}
}

// OffsetRange returns a filter that matches events applied within the
// given element range of the root input. Both bounds are inclusive.
func OffsetRange(start, end int) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Offset >= start && event.Offset <= end
	}
}

// ConsumedAtLeast returns a filter that matches events that consumed
// at least n elements.
func ConsumedAtLeast(n int) TraceFilter {
	return func(event TraceEvent) bool {
		return event.Consumed >= n
	}
}

// TimeRange returns a filter that matches events that started within
// the given time range.
//
// Both start and end times are inclusive. Events are matched if their
// Start time falls between start and end.
func TimeRange(start, end time.Time) TraceFilter {
	return func(event TraceEvent) bool {
		return !event.Start.Before(start) && !event.Start.After(end)
	}
}

// ErrorMatches returns a filter that matches events whose error
// message matches the glob pattern.
//
// If the pattern is malformed, no events will match (returns false).
//
// Example patterns:
//   - "*Tag*" matches errors mentioning a tag mismatch
//   - "fatal: *" matches escalated errors
func ErrorMatches(pattern string) TraceFilter {
	return func(event TraceEvent) bool {
		if event.Error == "" {
			return false
		}
		matched, err := filepath.Match(pattern, event.Error)
		if err != nil {
			// Invalid pattern - fail closed (no matches)
			return false
		}
		return matched
	}
}
