// SPDX-License-Identifier: Apache-2.0

package nibble

import "strings"

// Text is UTF-8 text input: a zero-copy view over a string.
//
// Elements are decoded runes, so counting operations such as
// [Input.SliceIndex] advance one rune at a time while offsets stay in
// bytes. Invalid UTF-8 is surfaced the way the standard library
// surfaces it: each invalid byte decodes as utf8.RuneError and counts
// as one element.
type Text string

// Length returns the remaining length in bytes.
func (t Text) Length() int {
	return len(t)
}

// SliceIndex returns the byte offset just past the first count runes,
// or -1 if the input has fewer than count runes.
func (t Text) SliceIndex(count int) int {
	n := 0
	for i := range t {
		if n == count {
			return i
		}
		n++
	}
	if n == count {
		return len(t)
	}
	return -1
}

// TakeSplit splits the view at a byte offset.
func (t Text) TakeSplit(offset int) (rest, taken Text) {
	return t[offset:], t[:offset]
}

// Compare matches the beginning of the text against prefix.
func (t Text) Compare(prefix Text) Comparison {
	n := min(len(t), len(prefix))
	if t[:n] != prefix[:n] {
		return CompareMismatch
	}
	if len(t) < len(prefix) {
		return CompareIncomplete
	}
	return CompareOK
}

// CompareNoCase is Compare with ASCII case folding.
func (t Text) CompareNoCase(prefix Text) Comparison {
	n := min(len(t), len(prefix))
	for i := 0; i < n; i++ {
		if foldASCII(t[i]) != foldASCII(prefix[i]) {
			return CompareMismatch
		}
	}
	if len(t) < len(prefix) {
		return CompareIncomplete
	}
	return CompareOK
}

// FindSubstring returns the byte offset of the first occurrence of
// needle, or -1.
func (t Text) FindSubstring(needle Text) int {
	return strings.Index(string(t), string(needle))
}

// FindToken reports whether the text contains the rune r.
func (t Text) FindToken(r rune) bool {
	return strings.ContainsRune(string(t), r)
}

// Position returns the byte offset of the first rune satisfying pred,
// or -1.
func (t Text) Position(pred func(rune) bool) int {
	return strings.IndexFunc(string(t), pred)
}

// SplitAtPosition splits before the first rune satisfying pred.
func (t Text) SplitAtPosition(pred func(rune) bool) (rest, taken Text) {
	if i := strings.IndexFunc(string(t), pred); i >= 0 {
		return t[i:], t[:i]
	}
	return t[len(t):], t
}

// SplitAtPosition1 is SplitAtPosition, except ok is false when taken
// would be empty.
func (t Text) SplitAtPosition1(pred func(rune) bool) (rest, taken Text, ok bool) {
	rest, taken = t.SplitAtPosition(pred)
	return rest, taken, len(taken) > 0
}
