// SPDX-License-Identifier: Apache-2.0

package nibble

// A Parser consumes a prefix of its input and produces a value.
//
// I is the input type, which for every parser in this package satisfies
// [Input]. O is the produced value; the primitive parsers produce a view
// of the input itself, so for them O and I coincide.
//
// On success err is nil, output holds the produced value, and rest is the
// unconsumed remainder: the consumed prefix followed by rest reconstructs
// the original input exactly. On failure rest is the original input
// unchanged and output is the zero value.
//
// Three classes of failure are distinguished by the error value:
//
//   - recoverable: the error is a [ParseError] such as [SimpleError] or
//     [VerboseError]. An enclosing alternation may try another branch.
//
//   - unrecoverable: the error is wrapped in [Fatal]. Enclosing
//     combinators must propagate it instead of trying alternatives.
//     See [IsFatal].
//
//   - incomplete: the error is an [Incomplete]. A streaming parser ran
//     out of input before it could decide. The parsers in this package
//     never produce it, but wrappers such as [Context] forward it
//     untouched. See [IsIncomplete].
//
// Parsers are pure functions over immutable views: they hold no mutable
// state and are safe to call from any number of goroutines.
type Parser[I, O any] = func(I) (rest I, output O, err error)
