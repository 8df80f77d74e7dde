// SPDX-License-Identifier: Apache-2.0

package nibble

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryFlavor says what a [VerboseEntry] records.
type EntryFlavor uint8

const (
	// EntryKind records the kind of a failing parser.
	EntryKind EntryFlavor = iota
	// EntryContext records a label attached with [Context].
	EntryContext
	// EntryRune records a character the parser expected.
	EntryRune
)

// VerboseEntry is one recorded failure annotation. Exactly one of
// Kind, Context, and Rune is meaningful, selected by Flavor; Input is
// the remaining input at the point the annotation was added.
type VerboseEntry[I any] struct {
	Flavor  EntryFlavor
	Input   I
	Kind    Kind
	Context string
	Rune    rune
}

// VerboseError is the accumulating [ParseError]: every annotation
// added while a failure propagates outward is kept, innermost first.
// It costs an allocation per annotation, so reach for it when
// diagnosing grammars or reporting errors to humans, and keep
// [SimpleError] on hot paths.
type VerboseError[I any] struct {
	Entries []VerboseEntry[I]
}

// NewVerboseError builds a [VerboseError] with a single entry. Its
// signature matches the [Combinators] error strategy field.
func NewVerboseError[I any](input I, kind Kind) ParseError[I] {
	return &VerboseError[I]{
		Entries: []VerboseEntry[I]{{Flavor: EntryKind, Input: input, Kind: kind}},
	}
}

// Error renders the annotation chain outermost first, ending with the
// innermost failing input. Use [Explain] for a multi-line report with
// offsets.
func (e *VerboseError[I]) Error() string {
	if len(e.Entries) == 0 {
		return "parse error"
	}
	var b strings.Builder
	for i := len(e.Entries) - 1; i >= 0; i-- {
		entry := e.Entries[i]
		switch entry.Flavor {
		case EntryContext:
			b.WriteString(entry.Context)
		case EntryRune:
			b.WriteString("char " + strconv.QuoteRune(entry.Rune))
		default:
			b.WriteString(entry.Kind.String())
		}
		b.WriteString(": ")
	}
	b.WriteString("at " + clip(e.Entries[0].Input))
	return b.String()
}

// Append records an enclosing parser's kind.
func (e *VerboseError[I]) Append(input I, kind Kind) ParseError[I] {
	e.Entries = append(e.Entries, VerboseEntry[I]{Flavor: EntryKind, Input: input, Kind: kind})
	return e
}

// AddContext records a label attached with [Context].
func (e *VerboseError[I]) AddContext(input I, context string) ParseError[I] {
	e.Entries = append(e.Entries, VerboseEntry[I]{Flavor: EntryContext, Input: input, Context: context})
	return e
}

// AddRune records a character the parser expected.
func (e *VerboseError[I]) AddRune(input I, r rune) ParseError[I] {
	e.Entries = append(e.Entries, VerboseEntry[I]{Flavor: EntryRune, Input: input, Rune: r})
	return e
}

// Or prefers the later alternative's error.
func (e *VerboseError[I]) Or(other ParseError[I]) ParseError[I] { return other }

// Explain renders a verbose error as a numbered report, one line per
// annotation, innermost failure first. Offsets count elements from the
// start of root, the input the parse began with.
//
// Example:
//
//	_, _, err := c.Tag("#")(input)
//	var verr *nibble.VerboseError[nibble.Text]
//	if errors.As(err, &verr) {
//	    fmt.Print(nibble.Explain(input, verr))
//	}
func Explain[I Input[I]](root I, e *VerboseError[I]) string {
	var b strings.Builder
	for i, entry := range e.Entries {
		offset := root.Length() - entry.Input.Length()
		switch entry.Flavor {
		case EntryContext:
			fmt.Fprintf(&b, "%d: at offset %d, in %s: %s\n", i, offset, entry.Context, clip(entry.Input))
		case EntryRune:
			fmt.Fprintf(&b, "%d: at offset %d, expected %q: %s\n", i, offset, entry.Rune, clip(entry.Input))
		default:
			fmt.Fprintf(&b, "%d: at offset %d, in %s: %s\n", i, offset, entry.Kind, clip(entry.Input))
		}
	}
	return b.String()
}
