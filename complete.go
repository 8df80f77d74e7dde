// SPDX-License-Identifier: Apache-2.0

package nibble

// Combinators builds the primitive parsers for one input type. The
// zero value parses with [SimpleError]; set NewError to choose a
// different error representation for every parser built from the set.
//
// Example:
//
//	c := nibble.Combinators[nibble.Text]{}
//	digits := c.TakeWhile1(nibble.IsDigit)
//	rest, out, err := digits("123abc")
//	// out == "123", rest == "abc", err == nil
type Combinators[I Input[I]] struct {
	// NewError builds the error value for a failure at input. Nil
	// means [NewSimpleError].
	NewError func(input I, kind Kind) ParseError[I]
}

// MakeError builds a recoverable error using the set's strategy. It is
// exported for authors of custom combinators that want to fail the
// same way the primitives do.
func (c Combinators[I]) MakeError(input I, kind Kind) ParseError[I] {
	if c.NewError != nil {
		return c.NewError(input, kind)
	}
	return NewSimpleError(input, kind)
}

// Tag recognizes a literal prefix and consumes exactly it.
//
// The whole literal must be present; input that ends partway through
// the literal fails like any other mismatch.
//
// Example:
//
//	hello := c.Tag("hello")
//	rest, out, err := hello("hello world")
//	// out == "hello", rest == " world"
func (c Combinators[I]) Tag(tag I) Parser[I, I] {
	return func(input I) (I, I, error) {
		if input.Compare(tag) != CompareOK {
			var zero I
			return input, zero, c.MakeError(input, KindTag)
		}
		rest, taken := input.TakeSplit(tag.Length())
		return rest, taken, nil
	}
}

// TagNoCase is [Combinators.Tag] with ASCII case folding. The output
// preserves the input's original casing.
func (c Combinators[I]) TagNoCase(tag I) Parser[I, I] {
	return func(input I) (I, I, error) {
		if input.CompareNoCase(tag) != CompareOK {
			var zero I
			return input, zero, c.MakeError(input, KindTag)
		}
		rest, taken := input.TakeSplit(tag.Length())
		return rest, taken, nil
	}
}

// IsA consumes the longest non-empty run of elements drawn from set.
// It fails when the input is empty or starts with an element outside
// the set.
//
// Example:
//
//	hex := c.IsA("0123456789ABCDEF")
//	rest, out, err := hex("BADBABEsomething")
//	// out == "BADBABE", rest == "something"
func (c Combinators[I]) IsA(set I) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, taken, ok := input.SplitAtPosition1(func(r rune) bool {
			return !set.FindToken(r)
		})
		if !ok {
			var zero I
			return input, zero, c.MakeError(input, KindIsA)
		}
		return rest, taken, nil
	}
}

// IsNot consumes the longest non-empty run of elements absent from
// set. It fails when the input is empty or starts with an element of
// the set.
func (c Combinators[I]) IsNot(set I) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, taken, ok := input.SplitAtPosition1(set.FindToken)
		if !ok {
			var zero I
			return input, zero, c.MakeError(input, KindIsNot)
		}
		return rest, taken, nil
	}
}

// TakeWhile consumes the longest run, possibly empty, of elements
// satisfying pred. It never fails.
func (c Combinators[I]) TakeWhile(pred Predicate) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, taken := input.SplitAtPosition(func(r rune) bool { return !pred(r) })
		return rest, taken, nil
	}
}

// TakeWhile1 is [Combinators.TakeWhile], except an empty run fails.
func (c Combinators[I]) TakeWhile1(pred Predicate) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, taken, ok := input.SplitAtPosition1(func(r rune) bool { return !pred(r) })
		if !ok {
			var zero I
			return input, zero, c.MakeError(input, KindTakeWhile1)
		}
		return rest, taken, nil
	}
}

// TakeWhileMN consumes between m and n elements satisfying pred,
// greedily up to n. Fewer than m satisfying elements is a failure,
// whether the run ends at a non-matching element or at the end of the
// input. TakeWhileMN panics unless 0 <= m <= n.
//
// Example:
//
//	channel := c.TakeWhileMN(2, 2, nibble.IsHexDigit)
//	rest, out, err := channel("2F462F")
//	// out == "2F", rest == "462F"
func (c Combinators[I]) TakeWhileMN(m, n int, pred Predicate) Parser[I, I] {
	if m < 0 || n < m {
		panic("nibble: TakeWhileMN requires 0 <= m <= n")
	}
	return func(input I) (I, I, error) {
		end := input.Position(func(r rune) bool { return !pred(r) })
		if end < 0 {
			end = input.Length()
		}
		offM := input.SliceIndex(m)
		if offM < 0 || offM > end {
			var zero I
			return input, zero, c.MakeError(input, KindTakeWhileMN)
		}
		take := end
		if offN := input.SliceIndex(n); offN >= 0 && offN < take {
			take = offN
		}
		rest, taken := input.TakeSplit(take)
		return rest, taken, nil
	}
}

// TakeTill consumes elements, possibly none, up to but not including
// the first element satisfying pred. It never fails; when no element
// satisfies pred it consumes the whole input.
func (c Combinators[I]) TakeTill(pred Predicate) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, taken := input.SplitAtPosition(pred)
		return rest, taken, nil
	}
}

// TakeTill1 is [Combinators.TakeTill], except it fails when the input
// is empty or its first element already satisfies pred.
func (c Combinators[I]) TakeTill1(pred Predicate) Parser[I, I] {
	return func(input I) (I, I, error) {
		rest, taken, ok := input.SplitAtPosition1(pred)
		if !ok {
			var zero I
			return input, zero, c.MakeError(input, KindTakeTill1)
		}
		return rest, taken, nil
	}
}

// Take consumes exactly count elements. Shorter input fails. Take
// panics when count is negative.
//
// Take(0) always succeeds with empty output, even at the end of the
// input.
func (c Combinators[I]) Take(count int) Parser[I, I] {
	if count < 0 {
		panic("nibble: Take requires count >= 0")
	}
	return func(input I) (I, I, error) {
		offset := input.SliceIndex(count)
		if offset < 0 {
			var zero I
			return input, zero, c.MakeError(input, KindEof)
		}
		rest, taken := input.TakeSplit(offset)
		return rest, taken, nil
	}
}

// TakeUntil consumes everything up to but not including the first
// occurrence of tag. The tag itself is left in the rest. Input that
// never contains the tag fails.
//
// Example:
//
//	until := c.TakeUntil("world")
//	rest, out, err := until("hello world")
//	// out == "hello ", rest == "world"
func (c Combinators[I]) TakeUntil(tag I) Parser[I, I] {
	return func(input I) (I, I, error) {
		offset := input.FindSubstring(tag)
		if offset < 0 {
			var zero I
			return input, zero, c.MakeError(input, KindTakeUntil)
		}
		rest, taken := input.TakeSplit(offset)
		return rest, taken, nil
	}
}
