// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"context"
	"log/slog"
	"time"
)

// Logged wraps a parser with structured logging at debug level using
// [slog.Default]. See [LoggedWith].
func Logged[I Input[I], O any](name string, p Parser[I, O]) Parser[I, O] {
	return LoggedWith(slog.Default(), slog.LevelDebug, name, p)
}

// LoggedWith wraps a parser with structured logging that emits a
// record when the parser starts and one when it finishes, including
// the remaining input length, elements consumed, execution duration,
// and the error if any.
//
// Parsers run many orders of magnitude more often than humans read
// logs, so keep logging wrappers on outer grammar rules rather than on
// every primitive.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	digits := nibble.LoggedWith(logger, slog.LevelDebug, "digits",
//	    c.TakeWhile1(nibble.IsDigit))
//
// This would emit records similar to:
//
//	{"level":"DEBUG","msg":"starting parser","name":"digits","input_len":6}
//	{"level":"DEBUG","msg":"finished parser","name":"digits","duration_us":2,"consumed":3}
func LoggedWith[I Input[I], O any](logger *slog.Logger, level slog.Level, name string, p Parser[I, O]) Parser[I, O] {
	return func(input I) (I, O, error) {
		ctx := context.Background()
		logger.Log(ctx, level, "starting parser",
			"name", name,
			"input_len", input.Length())
		start := time.Now()
		rest, out, err := p(input)
		duration := time.Since(start)
		attrs := []any{
			"name", name,
			"duration_us", duration.Microseconds(),
			"consumed", input.Length() - rest.Length(),
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}
		logger.Log(ctx, level, "finished parser", attrs...)
		return rest, out, err
	}
}
