// SPDX-License-Identifier: Apache-2.0

package nibble

import "bytes"

// Bytes is binary input: a zero-copy view over a byte slice.
//
// Elements are the raw bytes. Predicates receive each byte widened to
// a rune with no UTF-8 decoding, so multi-byte encodings are invisible
// at this level; use [Text] for rune-aware parsing. The view aliases
// the caller's slice and must not be mutated while parsing.
type Bytes []byte

// Length returns the remaining length in bytes.
func (b Bytes) Length() int {
	return len(b)
}

// SliceIndex returns count when the input has at least count bytes, or
// -1 otherwise.
func (b Bytes) SliceIndex(count int) int {
	if count >= 0 && count <= len(b) {
		return count
	}
	return -1
}

// TakeSplit splits the view at a byte offset.
func (b Bytes) TakeSplit(offset int) (rest, taken Bytes) {
	return b[offset:], b[:offset]
}

// Compare matches the beginning of the slice against prefix.
func (b Bytes) Compare(prefix Bytes) Comparison {
	n := min(len(b), len(prefix))
	if !bytes.Equal(b[:n], prefix[:n]) {
		return CompareMismatch
	}
	if len(b) < len(prefix) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareNoCase is Compare with ASCII case folding.
func (b Bytes) CompareNoCase(prefix Bytes) Comparison {
	n := min(len(b), len(prefix))
	for i := 0; i < n; i++ {
		if foldASCII(b[i]) != foldASCII(prefix[i]) {
			return CompareMismatch
		}
	}
	if len(b) < len(prefix) {
		return CompareIncomplete
	}
	return CompareOK
}

// FindSubstring returns the byte offset of the first occurrence of
// needle, or -1.
func (b Bytes) FindSubstring(needle Bytes) int {
	return bytes.Index(b, needle)
}

// FindToken reports whether the slice contains the byte r. Runes
// outside the byte range never match.
func (b Bytes) FindToken(r rune) bool {
	if r < 0 || r > 0xFF {
		return false
	}
	return bytes.IndexByte(b, byte(r)) >= 0
}

// Position returns the offset of the first byte satisfying pred, or -1.
func (b Bytes) Position(pred func(rune) bool) int {
	for i, c := range b {
		if pred(rune(c)) {
			return i
		}
	}
	return -1
}

// SplitAtPosition splits before the first byte satisfying pred.
func (b Bytes) SplitAtPosition(pred func(rune) bool) (rest, taken Bytes) {
	if i := b.Position(pred); i >= 0 {
		return b[i:], b[:i]
	}
	return b[len(b):], b
}

// SplitAtPosition1 is SplitAtPosition, except ok is false when taken
// would be empty.
func (b Bytes) SplitAtPosition1(pred func(rune) bool) (rest, taken Bytes, ok bool) {
	rest, taken = b.SplitAtPosition(pred)
	return rest, taken, len(taken) > 0
}
