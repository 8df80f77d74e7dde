// SPDX-License-Identifier: Apache-2.0

// Package nibble provides a parser-combinator core for building
// recognizers over text and binary input out of small, composable
// functions, with pluggable error accumulation and built-in
// observability.
//
// # The Problem
//
// Hand-written parsers start simple and rot fast. Index arithmetic,
// bounds checks, error reporting, and backtracking mix with the
// grammar until the format being recognized is invisible in the code.
// Each new field means another round of off-by-one hunting, and the
// error messages are bolted on after the fact.
//
// Nibble addresses these problems by letting you compose parsers from
// primitive recognizers that each consume a prefix of the input and
// hand the rest to the next, while the library handles position
// tracking and failure reporting.
//
// # Core Concepts
//
// [Parser] is the fundamental building block. A parser is a function
// that consumes a prefix of its input, returning the rest, the parsed
// output, and an error:
//
//	type Parser[I, O any] = func(I) (rest I, output O, err error)
//
// Parsers are built from a [Combinators] value, which fixes the input
// type and the error representation once:
//
//	c := nibble.Combinators[nibble.Text]{}
//	hex := c.TakeWhile1(nibble.IsHexDigit)
//	rest, digits, err := hex("BADBABEsomething")
//
// Two input types ship with the package: [Text], whose elements are
// runes, and [Bytes], whose elements are raw bytes. Anything
// implementing [Input] can be parsed. The primitives never copy input;
// they only narrow the view.
//
// # Errors
//
// Failures are ordinary error values in one of three classes.
// Recoverable failures implement [ParseError] and mean "this branch
// did not match": callers may try something else. [Fatal] failures
// mean the input is unmistakably in this branch and malformed, so
// trying other branches would only produce misleading diagnostics; see
// [Context]. [Incomplete] means the input ended too soon. The
// primitives here treat input as complete and never produce it, but
// every wrapper passes it through for streaming front ends layered on
// top.
//
// The error representation is pluggable. [SimpleError] records the
// deepest failure in a single allocation; [VerboseError] records the
// whole failure path and renders reports with [Explain]:
//
//	c := nibble.Combinators[nibble.Text]{
//	    NewError: nibble.NewVerboseError[nibble.Text],
//	}
//
// # Observability
//
// [Logged] and [LoggedWith] wrap any parser with slog records around
// each invocation. A [Tracer] records a [TraceEvent] for every parser
// wrapped with [Traced], optionally streaming them as JSON Lines via
// [WithStreamTo]; the collected [Trace] renders call trees with
// [Trace.WriteText] and answers queries via [Trace.Filter] and
// [Trace.FindEvent].
//
// # Batch Parsing
//
// [ParseEach] applies one parser to a slice of independent inputs and
// collects the outputs; [ParseEachParallel] does the same across
// goroutines with an optional concurrency limit. Parsers are pure
// closures, so sharing one across goroutines is safe.
//
// # Additional Resources
//
// Runnable examples live at
// https://github.com/sam-fredrickson/nibble/tree/main/examples
//
// # Requirements
//
// Nibble requires Go 1.24 or later and has minimal external dependencies.
package nibble
