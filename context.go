// SPDX-License-Identifier: Apache-2.0

package nibble

import "errors"

// Context attaches a label to a parser and escalates its failures.
//
// On failure the label is recorded on the error with AddContext and
// the result is wrapped in [Fatal], so failures inside a labeled
// region stop enclosing choice combinators from wandering into other
// branches and reporting a misleading error. Success and [Incomplete]
// pass through untouched. Errors that do not implement [ParseError]
// are escalated without annotation.
//
// Example:
//
//	color := nibble.Context("hex color", c.Tag("#"))
//	_, _, err := color("red")
//	// nibble.IsFatal(err) == true
func Context[I, O any](label string, p Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		rest, out, err := p(input)
		if err == nil || IsIncomplete(err) {
			return rest, out, err
		}
		inner := err
		var f *Fatal
		if errors.As(err, &f) {
			inner = f.Err
		}
		if pe, ok := inner.(ParseError[I]); ok {
			inner = pe.AddContext(input, label)
		}
		return rest, out, NewFatal(inner)
	}
}
