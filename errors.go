// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"errors"
	"fmt"
	"strconv"
)

// ParseError is the contract between parsers and error values. Parsers
// create errors through an error strategy (see [Combinators]) and
// enrich them through this interface as failures propagate outward, so
// callers choose how much failure detail to pay for: [SimpleError]
// keeps only the deepest failure, [VerboseError] accumulates the whole
// path.
//
// Every method returns the error to use from now on. Implementations
// may mutate and return the receiver or return something new; callers
// must use the returned value either way.
type ParseError[I any] interface {
	error

	// Append records that an enclosing parser of the given kind also
	// failed at input.
	Append(input I, kind Kind) ParseError[I]

	// AddContext records a human-readable label for the region being
	// parsed when the failure happened.
	AddContext(input I, context string) ParseError[I]

	// AddRune records that a specific character was expected at input.
	AddRune(input I, r rune) ParseError[I]

	// Or merges this error with the error of a later alternative.
	Or(other ParseError[I]) ParseError[I]
}

// SimpleError is the minimal [ParseError]: the deepest failing input
// and the kind of the parser that failed there. Annotations from
// enclosing parsers are discarded, which keeps the error path to a
// single allocation.
type SimpleError[I any] struct {
	Input I
	Kind  Kind
}

// NewSimpleError builds a [SimpleError]. Its signature matches the
// [Combinators] error strategy field.
func NewSimpleError[I any](input I, kind Kind) ParseError[I] {
	return &SimpleError[I]{Input: input, Kind: kind}
}

func (e *SimpleError[I]) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, clip(e.Input))
}

// Append discards the outer kind and keeps the original error.
func (e *SimpleError[I]) Append(I, Kind) ParseError[I] { return e }

// AddContext discards the label and keeps the original error.
func (e *SimpleError[I]) AddContext(I, string) ParseError[I] { return e }

// AddRune discards the character and keeps the original error.
func (e *SimpleError[I]) AddRune(I, rune) ParseError[I] { return e }

// Or prefers the later alternative's error.
func (e *SimpleError[I]) Or(other ParseError[I]) ParseError[I] { return other }

// AppendError records an enclosing parser's kind on an existing error.
func AppendError[I any](input I, kind Kind, err ParseError[I]) ParseError[I] {
	return err.Append(input, kind)
}

// Fatal marks a parse error as unrecoverable. Choice and repetition
// combinators stop at a fatal error and surface it instead of trying
// further alternatives; everything else about the wrapped error stays
// reachable through errors.As.
type Fatal struct {
	Err error
}

// NewFatal wraps err so that no other branch is attempted after it.
func NewFatal(err error) error {
	return &Fatal{Err: err}
}

func (f *Fatal) Error() string {
	return "fatal: " + f.Err.Error()
}

func (f *Fatal) Unwrap() error {
	return f.Err
}

// IsFatal reports whether err is marked unrecoverable.
func IsFatal(err error) bool {
	var f *Fatal
	return errors.As(err, &f)
}

// NeededUnknown is the Needed value of an [Incomplete] whose required
// size cannot be computed.
const NeededUnknown = 0

// Incomplete reports that the input ended before the parser could
// decide. Parsers in this package treat their input as complete and
// never return it themselves, but every combinator passes it through
// untouched so a streaming layer can be built on top.
type Incomplete struct {
	// Needed is the minimum number of additional elements required to
	// make progress, or NeededUnknown.
	Needed int
}

func (e Incomplete) Error() string {
	if e.Needed == NeededUnknown {
		return "incomplete input"
	}
	return fmt.Sprintf("incomplete input: need %d more", e.Needed)
}

// IsIncomplete reports whether err signals truncated input.
func IsIncomplete(err error) bool {
	var inc Incomplete
	return errors.As(err, &inc)
}

// clipLen bounds how much input an error message reproduces.
const clipLen = 24

// clip renders a short quoted prefix of an input for error messages.
func clip(input any) string {
	var s string
	switch v := input.(type) {
	case Text:
		s = string(v)
	case Bytes:
		s = string(v)
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
	if len(s) > clipLen {
		return strconv.Quote(s[:clipLen]) + "..."
	}
	return strconv.Quote(s)
}
