// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSimpleError(t *testing.T) {
	t.Parallel()

	t.Run("ReportsKindAndPosition", func(t *testing.T) {
		t.Parallel()
		err := NewSimpleError(Text("world"), KindTag)
		want := `Tag at "world"`
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})

	t.Run("ClipsLongInput", func(t *testing.T) {
		t.Parallel()
		err := NewSimpleError(Text(strings.Repeat("a", 100)), KindTag)
		if !strings.Contains(err.Error(), "...") {
			t.Errorf("expected clipped message, got %q", err.Error())
		}
		if len(err.Error()) > 60 {
			t.Errorf("message too long: %q", err.Error())
		}
	})

	t.Run("AnnotationsKeepDeepestFailure", func(t *testing.T) {
		t.Parallel()
		orig := NewSimpleError(Text("abc"), KindIsA)
		err := orig.Append(Text("xabc"), KindTag)
		err = err.AddContext(Text("yxabc"), "outer")
		err = err.AddRune(Text("zyxabc"), '#')
		se, ok := err.(*SimpleError[Text])
		if !ok {
			t.Fatalf("expected SimpleError, got %T", err)
		}
		if se.Kind != KindIsA || se.Input != "abc" {
			t.Errorf("got (%v, %q), want (IsA, abc)", se.Kind, se.Input)
		}
	})

	t.Run("OrPrefersAlternative", func(t *testing.T) {
		t.Parallel()
		first := NewSimpleError(Text("a"), KindTag)
		second := NewSimpleError(Text("b"), KindIsA)
		if got := first.Or(second); got != second {
			t.Errorf("got %v, want %v", got, second)
		}
	})

	t.Run("AppendErrorDelegates", func(t *testing.T) {
		t.Parallel()
		orig := NewSimpleError(Text("abc"), KindIsA)
		if got := AppendError(Text("xabc"), KindTag, orig); got != orig {
			t.Errorf("got %v, want %v", got, orig)
		}
	})
}

func TestFatal(t *testing.T) {
	t.Parallel()

	t.Run("WrapsAndUnwraps", func(t *testing.T) {
		t.Parallel()
		inner := NewSimpleError(Text("x"), KindTag)
		err := NewFatal(inner)
		if got := err.Error(); got != "fatal: "+inner.Error() {
			t.Errorf("got %q", got)
		}
		var se *SimpleError[Text]
		if !errors.As(err, &se) {
			t.Error("expected wrapped SimpleError to be reachable")
		}
	})

	t.Run("Classification", func(t *testing.T) {
		t.Parallel()
		if err := isFatal(NewFatal(errors.New("boom"))); err != nil {
			t.Error(err)
		}
		if IsFatal(errors.New("boom")) {
			t.Error("plain error misclassified as fatal")
		}
		if IsFatal(nil) {
			t.Error("nil misclassified as fatal")
		}
	})

	t.Run("DetectedThroughWrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("while parsing header: %w", NewFatal(errors.New("boom")))
		if !IsFatal(err) {
			t.Error("expected fatal through wrap")
		}
	})
}

func TestIncomplete(t *testing.T) {
	t.Parallel()

	t.Run("UnknownSize", func(t *testing.T) {
		t.Parallel()
		err := Incomplete{}
		if err.Error() != "incomplete input" {
			t.Errorf("got %q", err.Error())
		}
		if err.Needed != NeededUnknown {
			t.Errorf("zero value should be NeededUnknown, got %d", err.Needed)
		}
		if !IsIncomplete(err) {
			t.Error("expected incomplete classification")
		}
	})

	t.Run("KnownSize", func(t *testing.T) {
		t.Parallel()
		err := Incomplete{Needed: 4}
		if err.Error() != "incomplete input: need 4 more" {
			t.Errorf("got %q", err.Error())
		}
	})

	t.Run("DetectedThroughWrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("read frame: %w", Incomplete{Needed: 2})
		if !IsIncomplete(err) {
			t.Error("expected incomplete through wrap")
		}
		if IsIncomplete(errors.New("other")) {
			t.Error("plain error misclassified as incomplete")
		}
		if IsIncomplete(nil) {
			t.Error("nil misclassified as incomplete")
		}
	})
}
