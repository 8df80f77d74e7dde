// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteTo serializes the trace as JSON to the given writer.
//
// Returns the number of bytes written and any error.
// The JSON is formatted as a pretty-printed array of events.
//
// This is different from streaming (via WithStreamTo) which outputs
// JSON Lines format (one event per line) during the parse. WriteTo
// outputs a single JSON array after the run completes.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(t.Events, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal trace: %w", err)
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write trace: %w", err)
	}

	// Add newline for better terminal output
	if nn, err := w.Write([]byte("\n")); err != nil {
		return int64(n + nn), fmt.Errorf("failed to write newline: %w", err)
	} else {
		n += nn
	}

	return int64(n), nil
}

// WriteText outputs a human-readable tree view of the trace.
//
// Each line shows a parser's name, the offset it ran at, and its
// duration; indentation reflects nesting depth. Failed invocations
// carry the error message.
//
// Example output:
//
//	color @0 (21µs)
//	  hash @0 (2µs)
//	  red @1 (4µs)
//	  green @3 (3µs) [ERROR: TakeWhileMN at "G4DF"]
//
// Events appear in the order they were recorded, which for a single
// parse is call order. Concurrent parses sharing a tracer interleave;
// give each its own tracer for readable trees.
func (t *Trace) WriteText(w io.Writer) (int64, error) {
	var totalBytes int64
	for _, event := range t.Events {
		indent := strings.Repeat("  ", event.Depth)

		line := fmt.Sprintf("%s%s @%d (%s)", indent, event.Name, event.Offset, event.Duration)
		if event.Error != "" {
			line += fmt.Sprintf(" [ERROR: %s]", event.Error)
		}
		line += "\n"

		n, err := w.Write([]byte(line))
		totalBytes += int64(n)
		if err != nil {
			return totalBytes, fmt.Errorf("failed to write text: %w", err)
		}
	}

	return totalBytes, nil
}
