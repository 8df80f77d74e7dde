// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// IndexedError is an error from parsing one input of a batch.
// It wraps the underlying error with the index of the input that failed.
// Users can use [errors.As] to detect and inspect IndexedErrors.
type IndexedError struct {
	// Index is the position of the failing input in the batch.
	Index int
	// Err is the underlying error from the parser.
	Err error
}

// Error returns the formatted error message.
func (e IndexedError) Error() string {
	return fmt.Sprintf("input %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e IndexedError) Unwrap() error {
	return e.Err
}

// Options specifies how a batch is parsed serially.
type Options struct {
	// JoinErrors controls error handling.
	//
	// By default, when false, the first input that fails stops the
	// batch and that error is returned immediately.
	//
	// If enabled, every input is parsed regardless of failures, and a
	// combined `errors.Join` error of all non-nil errors is returned.
	JoinErrors bool
}

// ParseEach applies a parser to every input in order and collects the
// outputs.
//
// ParseEach is the same as [ParseEachWith] with the default [Options]:
// the first failure stops the batch and is returned as an
// [IndexedError], with no outputs.
//
// Example:
//
//	c := nibble.Combinators[nibble.Text]{}
//	number := c.TakeWhile1(nibble.IsDigit)
//	outs, err := nibble.ParseEach(number, []nibble.Text{"12", "34", "56"})
func ParseEach[I, O any](p Parser[I, O], inputs []I) ([]O, error) {
	return ParseEachWith(Options{}, p, inputs)
}

// ParseEachWith applies a parser to every input in order, with custom
// options.
//
// With JoinErrors enabled, all inputs are parsed and the outputs slice
// is returned with the zero value at every failed index, alongside a
// joined error of [IndexedError] values.
func ParseEachWith[I, O any](opts Options, p Parser[I, O], inputs []I) ([]O, error) {
	outs := make([]O, len(inputs))
	var errs []error
	for i, input := range inputs {
		_, out, err := p(input)
		if err != nil {
			if !opts.JoinErrors {
				return nil, IndexedError{Index: i, Err: err}
			}
			errs = append(errs, IndexedError{Index: i, Err: err})
			continue
		}
		outs[i] = out
	}
	return outs, errors.Join(errs...)
}

// ParallelOptions specifies how a batch is parsed concurrently.
type ParallelOptions struct {
	// Limit controls how many goroutines may run.
	//
	// Numbers less than or equal to zero indicate no limit.
	Limit int

	// JoinErrors controls error handling.
	//
	// By default, when false, the first input that fails cancels the
	// rest, and this first error is returned. (This is the behavior of
	// the `errgroup` package.)
	//
	// If enabled, all inputs are parsed regardless of failures, and a
	// combined `errors.Join` error of all non-nil errors is returned.
	JoinErrors bool
}

// ParseEachParallel applies a parser to every input concurrently and
// collects the outputs in input order.
//
// Parsers built by this package are stateless closures, so one parser
// value is safely shared by all goroutines; custom parsers that close
// over mutable state need their own synchronization.
//
// Cancellation is checked between inputs, not inside a running parser:
// parsers are non-blocking functions, so a cancelled ctx stops inputs
// that have not started yet and group.Wait returns the cause.
//
// Example:
//
//	outs, err := nibble.ParseEachParallel(ctx,
//	    nibble.ParallelOptions{Limit: 8},
//	    logLine, lines)
func ParseEachParallel[I, O any](
	ctx context.Context,
	opts ParallelOptions,
	p Parser[I, O],
	inputs []I,
) ([]O, error) {
	outs := make([]O, len(inputs))

	// set up group
	group, subCtx := errgroup.WithContext(ctx)
	if opts.Limit > 0 {
		group.SetLimit(opts.Limit)
	}

	// handle error joining if enabled
	var errs chan error
	var joinedErr chan error
	if opts.JoinErrors {
		errs = make(chan error)
		joinedErr = make(chan error)
		go func() {
			var parseErrs []error
			for err := range errs {
				if err == nil {
					continue
				}
				parseErrs = append(parseErrs, err)
			}
			joinedErr <- errors.Join(parseErrs...)
		}()
	}

	// parse inputs
	for i, input := range inputs {
		group.Go(func() error {
			var err error
			if err = subCtx.Err(); err == nil {
				var out O
				if _, out, err = p(input); err != nil {
					err = IndexedError{Index: i, Err: err}
				} else {
					outs[i] = out
				}
			}
			if opts.JoinErrors {
				errs <- err
				return nil
			}
			return err
		})
	}

	// wait for any error(s)
	err := group.Wait()
	if opts.JoinErrors {
		close(errs)
		err = <-joinedErr
	}
	if err != nil && !opts.JoinErrors {
		return nil, err
	}
	return outs, err
}
