// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// ==== Test Helpers: Test Runners ====

// runTextTest runs a parser over text input, validating the rest, the
// output, and the error.
func runTextTest(t *testing.T, p Parser[Text, Text], input, wantRest, wantOut Text, validator func(error) error) {
	t.Helper()
	rest, out, err := p(input)
	if err := validator(err); err != nil {
		t.Error(err)
	}
	if rest != wantRest {
		t.Errorf("got rest %q, want %q", rest, wantRest)
	}
	if out != wantOut {
		t.Errorf("got output %q, want %q", out, wantOut)
	}
}

// runBytesTest runs a parser over binary input, validating the rest,
// the output, and the error.
func runBytesTest(t *testing.T, p Parser[Bytes, Bytes], input, wantRest, wantOut Bytes, validator func(error) error) {
	t.Helper()
	rest, out, err := p(input)
	if err := validator(err); err != nil {
		t.Error(err)
	}
	if !bytes.Equal(rest, wantRest) {
		t.Errorf("got rest %q, want %q", rest, wantRest)
	}
	if !bytes.Equal(out, wantOut) {
		t.Errorf("got output %q, want %q", out, wantOut)
	}
}

// ==== Test Helpers: Error Validators ====

// isNil validates that the error is nil.
func isNil(testErr error) error {
	if testErr != nil {
		return fmt.Errorf("unexpected error: %w", testErr)
	}
	return nil
}

// isNotNil validates that the error is not nil.
func isNotNil(testErr error) error {
	if testErr == nil {
		return fmt.Errorf("expected error but got nil")
	}
	return nil
}

// all returns a validator that passes only if all the given validators pass.
func all(validators ...func(error) error) func(error) error {
	return func(testErr error) error {
		for _, validator := range validators {
			if err := validator(testErr); err != nil {
				return err
			}
		}
		return nil
	}
}

// matches returns a validator that checks if the error matches the target error using errors.Is.
func matches(targetErr error) func(error) error {
	return func(testError error) error {
		m := errors.Is(testError, targetErr)
		if !m {
			return fmt.Errorf("expected error %v to match error %v", testError, targetErr)
		}

		return nil
	}
}

// contains returns a validator that checks if the error message contains the given substring.
func contains(substring string) func(error) error {
	return func(testErr error) error {
		if !strings.Contains(testErr.Error(), substring) {
			return fmt.Errorf("expected error to contain %q, got %q", substring, testErr)
		}
		return nil
	}
}

// isKind returns a validator that checks that the error is a
// SimpleError over I with the given kind.
func isKind[I any](kind Kind) func(error) error {
	return func(testErr error) error {
		var se *SimpleError[I]
		if !errors.As(testErr, &se) {
			return fmt.Errorf("expected SimpleError, got %v", testErr)
		}
		if se.Kind != kind {
			return fmt.Errorf("expected kind %v, got %v", kind, se.Kind)
		}
		return nil
	}
}

// isFatal validates that the error is marked unrecoverable.
func isFatal(testErr error) error {
	if !IsFatal(testErr) {
		return fmt.Errorf("expected fatal error, got %v", testErr)
	}
	return nil
}

// isRecoverable validates that the error is present but not fatal.
func isRecoverable(testErr error) error {
	if testErr == nil {
		return fmt.Errorf("expected error but got nil")
	}
	if IsFatal(testErr) {
		return fmt.Errorf("expected recoverable error, got fatal: %v", testErr)
	}
	return nil
}
