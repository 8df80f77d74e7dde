// SPDX-License-Identifier: Apache-2.0

package nibble

// A Comparison is the three-way result of matching an input against a
// pattern prefix.
type Comparison int

const (
	// CompareOK means the input begins with the complete pattern.
	CompareOK Comparison = iota
	// CompareIncomplete means the input ran out before the pattern did:
	// the input is a proper prefix of the pattern.
	CompareIncomplete
	// CompareMismatch means the input diverges from the pattern.
	CompareMismatch
)

// Input is the capability surface parsers require of an input type.
//
// Implementations are immutable views over a shared backing buffer.
// Every returned sub-view aliases the original storage; no operation
// copies or mutates it, so splitting an input is an O(1) re-slice.
// [Text] and [Bytes] are the two provided implementations.
//
// Offsets are always byte offsets. Counts are element counts: decoded
// runes for [Text], raw bytes for [Bytes]. Predicates receive one
// element at a time, widened to a rune.
//
// The self-referential type parameter lets operations return sub-views
// of the concrete implementing type rather than an interface value.
type Input[I any] interface {
	// Length returns the number of bytes remaining in the input.
	Length() int

	// SliceIndex returns the byte offset just past the first count
	// elements, or -1 if the input has fewer than count elements.
	// SliceIndex(0) is always 0.
	SliceIndex(count int) int

	// TakeSplit splits the input at a byte offset previously obtained
	// from this input, returning the remainder and the consumed prefix.
	// taken followed by rest reconstructs the input exactly.
	TakeSplit(offset int) (rest, taken I)

	// Compare matches the beginning of the input against prefix, byte
	// for byte.
	Compare(prefix I) Comparison

	// CompareNoCase is Compare with ASCII case folding: 'A' through 'Z'
	// match their lowercase forms. Non-ASCII content must match
	// exactly, which keeps a match the same byte length as the prefix.
	CompareNoCase(prefix I) Comparison

	// FindSubstring returns the byte offset of the first occurrence of
	// needle, or -1 if it does not occur.
	FindSubstring(needle I) int

	// FindToken reports whether the input, viewed as a set of
	// elements, contains the element r.
	FindToken(r rune) bool

	// Position returns the byte offset of the first element satisfying
	// pred, or -1 if no element does.
	Position(pred func(rune) bool) int

	// SplitAtPosition splits the input before the first element
	// satisfying pred. If no element satisfies it, the entire input is
	// the taken prefix.
	SplitAtPosition(pred func(rune) bool) (rest, taken I)

	// SplitAtPosition1 is SplitAtPosition, except ok is false when the
	// taken prefix would be empty.
	SplitAtPosition1(pred func(rune) bool) (rest, taken I, ok bool)
}

// foldASCII lowercases a single ASCII byte.
func foldASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
