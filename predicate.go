// SPDX-License-Identifier: Apache-2.0

package nibble

// A Predicate decides whether a single input element matches.
//
// Elements arrive as runes: decoded runes for [Text], raw bytes
// widened to runes for [Bytes]. Predicates must be pure; the
// predicate-driven combinators may call them any number of times.
type Predicate = func(rune) bool

// IsDigit matches ASCII decimal digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit matches ASCII hexadecimal digits of either case.
func IsHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// IsOctDigit matches ASCII octal digits.
func IsOctDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsAlphabetic matches ASCII letters.
func IsAlphabetic(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// IsAlphanumeric matches ASCII letters and decimal digits.
func IsAlphanumeric(r rune) bool {
	return IsAlphabetic(r) || IsDigit(r)
}

// IsSpace matches the space and horizontal tab characters.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// Not negates a predicate.
//
// Example:
//
//	line := c.TakeWhile(nibble.Not(nibble.IsSpace))
func Not(pred Predicate) Predicate {
	return func(r rune) bool {
		return !pred(r)
	}
}

// And combines predicates with logical AND, short-circuiting on the
// first miss.
func And(preds ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with logical OR, short-circuiting on the
// first match.
//
// Example:
//
//	word := c.TakeWhile1(nibble.Or(nibble.IsAlphabetic, nibble.IsDigit))
func Or(preds ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}
